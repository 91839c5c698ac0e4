package mapping

import (
	"database/sql"

	"github.com/aerodoc/backend/internal/core/domain"
	"github.com/aerodoc/backend/internal/models"
)

// ToModelDocument converts a domain Document to a model Document.
func ToModelDocument(d domain.Document) models.Document {
	m := models.Document{
		DocumentID:        d.DocumentID,
		QRCode:            d.QRCode,
		Title:             d.Title,
		Type:              string(d.Type),
		Content:           d.Content,
		Status:            string(d.Status),
		Version:           d.Version,
		FilePath:          d.FilePath,
		FileType:          d.FileType,
		ViewsCount:        d.ViewsCount,
		DownloadsCount:    d.DownloadsCount,
		Code:              d.Code,
		CompanyCode:       d.CompanyCode,
		ScopeCode:         d.ScopeCode,
		DepartmentCode:    d.DepartmentCode,
		SubDepartmentCode: d.SubDepartmentCode,
		DocumentTypeCode:  d.DocumentTypeCode,
		LanguageCode:      d.LanguageCode,
		SequenceNumber:    d.SequenceNumber,
		Tags:              d.Tags,
		Airport:           d.Airport,
		AuthorID:          d.AuthorID,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
	if d.ApprovedBy != nil {
		m.ApprovedBy = sql.NullString{String: *d.ApprovedBy, Valid: true}
	}
	if d.ApprovedAt != nil {
		m.ApprovedAt = sql.NullTime{Time: *d.ApprovedAt, Valid: true}
	}
	return m
}

// ToDomainDocument converts a model Document to a domain Document.
func ToDomainDocument(m models.Document) domain.Document {
	d := domain.Document{
		DocumentID:     m.DocumentID,
		QRCode:         m.QRCode,
		Title:          m.Title,
		Type:           domain.DocumentType(m.Type),
		Content:        m.Content,
		Status:         domain.DocumentStatus(m.Status),
		Version:        m.Version,
		FilePath:       m.FilePath,
		FileType:       m.FileType,
		ViewsCount:     m.ViewsCount,
		DownloadsCount: m.DownloadsCount,
		Code:           m.Code,
		CodeSegments: domain.CodeSegments{
			CompanyCode:       m.CompanyCode,
			ScopeCode:         m.ScopeCode,
			DepartmentCode:    m.DepartmentCode,
			SubDepartmentCode: m.SubDepartmentCode,
			DocumentTypeCode:  m.DocumentTypeCode,
			LanguageCode:      m.LanguageCode,
			SequenceNumber:    m.SequenceNumber,
		},
		Tags:        m.Tags,
		Airport:     m.Airport,
		AuthorID:    m.AuthorID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.ApprovedBy.Valid {
		v := m.ApprovedBy.String
		d.ApprovedBy = &v
	}
	if m.ApprovedAt.Valid {
		v := m.ApprovedAt.Time
		d.ApprovedAt = &v
	}
	return d
}

// ToDomainDocumentSlice converts a slice of model Documents to domain Documents.
func ToDomainDocumentSlice(ms []models.Document) []domain.Document {
	ds := make([]domain.Document, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDocument(m)
	}
	return ds
}
