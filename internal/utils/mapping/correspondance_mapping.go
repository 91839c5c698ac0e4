package mapping

import (
	"github.com/aerodoc/backend/internal/core/domain"
	"github.com/aerodoc/backend/internal/models"
)

// ToModelCorrespondance converts a domain Correspondance to its model shape.
func ToModelCorrespondance(d domain.Correspondance) models.Correspondance {
	return models.Correspondance{
		CorrespondanceID:  d.CorrespondanceID,
		QRCode:            d.QRCode,
		Direction:         string(d.Direction),
		FromAddress:       d.FromAddress,
		ToAddress:         d.ToAddress,
		Subject:           d.Subject,
		Content:           d.Content,
		Priority:          string(d.Priority),
		Status:            string(d.Status),
		Airport:           d.Airport,
		Code:              d.Code,
		CompanyCode:       d.CompanyCode,
		ScopeCode:         d.ScopeCode,
		DepartmentCode:    d.DepartmentCode,
		SubDepartmentCode: d.SubDepartmentCode,
		DocumentTypeCode:  d.DocumentTypeCode,
		LanguageCode:      d.LanguageCode,
		SequenceNumber:    d.SequenceNumber,
		Attachments:       d.Attachments,
		Tags:              d.Tags,
		DecidedActions:    d.DecidedActions,
		AuthorID:          d.AuthorID,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCorrespondance converts a model Correspondance to its domain shape.
func ToDomainCorrespondance(m models.Correspondance) domain.Correspondance {
	return domain.Correspondance{
		CorrespondanceID: m.CorrespondanceID,
		QRCode:           m.QRCode,
		Direction:        domain.CorrespondanceDirection(m.Direction),
		FromAddress:      m.FromAddress,
		ToAddress:        m.ToAddress,
		Subject:          m.Subject,
		Content:          m.Content,
		Priority:         domain.Priority(m.Priority),
		Status:           domain.DocumentStatus(m.Status),
		Airport:          m.Airport,
		Code:             m.Code,
		CodeSegments: domain.CodeSegments{
			CompanyCode:       m.CompanyCode,
			ScopeCode:         m.ScopeCode,
			DepartmentCode:    m.DepartmentCode,
			SubDepartmentCode: m.SubDepartmentCode,
			DocumentTypeCode:  m.DocumentTypeCode,
			LanguageCode:      m.LanguageCode,
			SequenceNumber:    m.SequenceNumber,
		},
		Attachments:    m.Attachments,
		Tags:           m.Tags,
		DecidedActions: m.DecidedActions,
		AuthorID:       m.AuthorID,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCorrespondanceSlice converts model Correspondances to domain ones.
func ToDomainCorrespondanceSlice(ms []models.Correspondance) []domain.Correspondance {
	ds := make([]domain.Correspondance, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCorrespondance(m)
	}
	return ds
}
