package mapping

import (
	"github.com/aerodoc/backend/internal/core/domain"
	"github.com/aerodoc/backend/internal/models"
)

func toModelCodeOptions(ds []domain.CodeOption) []models.CodeOption {
	ms := make([]models.CodeOption, len(ds))
	for i, d := range ds {
		ms[i] = models.CodeOption{Code: d.Code, Label: d.Label}
	}
	return ms
}

func toDomainCodeOptions(ms []models.CodeOption) []domain.CodeOption {
	ds := make([]domain.CodeOption, len(ms))
	for i, m := range ms {
		ds[i] = domain.CodeOption{Code: m.Code, Label: m.Label}
	}
	return ds
}

// ToModelDocumentCodeConfig converts a domain code config to its model shape.
func ToModelDocumentCodeConfig(d domain.DocumentCodeConfig) models.DocumentCodeConfig {
	return models.DocumentCodeConfig{
		ConfigID:       d.ConfigID,
		CompanyCode:    d.CompanyCode,
		Scopes:         toModelCodeOptions(d.Scopes),
		DocumentTypes:  toModelCodeOptions(d.DocumentTypes),
		Departments:    toModelCodeOptions(d.Departments),
		SubDepartments: toModelCodeOptions(d.SubDepartments),
		Languages:      toModelCodeOptions(d.Languages),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDocumentCodeConfig converts a model code config to its domain shape.
func ToDomainDocumentCodeConfig(m models.DocumentCodeConfig) domain.DocumentCodeConfig {
	return domain.DocumentCodeConfig{
		ConfigID:       m.ConfigID,
		CompanyCode:    m.CompanyCode,
		Scopes:         toDomainCodeOptions(m.Scopes),
		DocumentTypes:  toDomainCodeOptions(m.DocumentTypes),
		Departments:    toDomainCodeOptions(m.Departments),
		SubDepartments: toDomainCodeOptions(m.SubDepartments),
		Languages:      toDomainCodeOptions(m.Languages),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
