package mapping

import (
	"database/sql"

	"github.com/aerodoc/backend/internal/core/domain"
	"github.com/aerodoc/backend/internal/models"
)

// ToModelProcesVerbal converts a domain ProcesVerbal to its model shape.
func ToModelProcesVerbal(d domain.ProcesVerbal) models.ProcesVerbal {
	m := models.ProcesVerbal{
		ProcesVerbalID: d.ProcesVerbalID,
		DocumentID:     d.DocumentID,
		MeetingDate:    d.MeetingDate,
		Participants:   d.Participants,
		Agenda:         d.Agenda,
		Decisions:      d.Decisions,
		Location:       d.Location,
		MeetingType:    d.MeetingType,
		DecidedActions: d.DecidedActions,
		AuthorID:       d.AuthorID,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
	if d.NextMeetingDate != nil {
		m.NextMeetingDate = sql.NullTime{Time: *d.NextMeetingDate, Valid: true}
	}
	return m
}

// ToDomainProcesVerbal converts a model ProcesVerbal to its domain shape.
func ToDomainProcesVerbal(m models.ProcesVerbal) domain.ProcesVerbal {
	d := domain.ProcesVerbal{
		ProcesVerbalID: m.ProcesVerbalID,
		DocumentID:     m.DocumentID,
		MeetingDate:    m.MeetingDate,
		Participants:   m.Participants,
		Agenda:         m.Agenda,
		Decisions:      m.Decisions,
		Location:       m.Location,
		MeetingType:    m.MeetingType,
		DecidedActions: m.DecidedActions,
		AuthorID:       m.AuthorID,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
	if m.NextMeetingDate.Valid {
		v := m.NextMeetingDate.Time
		d.NextMeetingDate = &v
	}
	return d
}

// ToDomainProcesVerbalSlice converts model ProcesVerbals to domain ones.
func ToDomainProcesVerbalSlice(ms []models.ProcesVerbal) []domain.ProcesVerbal {
	ds := make([]domain.ProcesVerbal, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProcesVerbal(m)
	}
	return ds
}
