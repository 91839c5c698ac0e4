package mapping

import (
	"github.com/aerodoc/backend/internal/core/domain"
	"github.com/aerodoc/backend/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelAction converts a domain Action to its model shape.
func ToModelAction(d domain.Action) models.Action {
	m := models.Action{
		ActionID:         d.ActionID,
		Title:            d.Title,
		Description:      d.Description,
		AssignedTo:       d.AssignedTo,
		DueDate:          d.DueDate,
		Status:           string(d.Status),
		Priority:         string(d.Priority),
		Progress:         d.Progress,
		ParentDocumentID: d.ParentDocumentID,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
	if d.EstimatedHours != nil {
		m.EstimatedHours = decimal.NullDecimal{Decimal: *d.EstimatedHours, Valid: true}
	}
	if d.ActualHours != nil {
		m.ActualHours = decimal.NullDecimal{Decimal: *d.ActualHours, Valid: true}
	}
	return m
}

// ToDomainAction converts a model Action to its domain shape.
func ToDomainAction(m models.Action) domain.Action {
	d := domain.Action{
		ActionID:         m.ActionID,
		Title:            m.Title,
		Description:      m.Description,
		AssignedTo:       m.AssignedTo,
		DueDate:          m.DueDate,
		Status:           domain.ActionStatus(m.Status),
		Priority:         domain.Priority(m.Priority),
		Progress:         m.Progress,
		ParentDocumentID: m.ParentDocumentID,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
	if m.EstimatedHours.Valid {
		v := m.EstimatedHours.Decimal
		d.EstimatedHours = &v
	}
	if m.ActualHours.Valid {
		v := m.ActualHours.Decimal
		d.ActualHours = &v
	}
	return d
}

// ToDomainActionSlice converts model Actions to domain ones.
func ToDomainActionSlice(ms []models.Action) []domain.Action {
	ds := make([]domain.Action, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAction(m)
	}
	return ds
}
