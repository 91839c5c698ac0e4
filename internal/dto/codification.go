package dto

import (
	"time"

	"github.com/aerodoc/backend/internal/core/domain"
)

// CodeSegmentsRequest carries the configurable segments of a document code.
// SubDepartmentCode is the only optional segment.
type CodeSegmentsRequest struct {
	CompanyCode       string `json:"companyCode" binding:"required,uppercase"`
	ScopeCode         string `json:"scopeCode" binding:"required,uppercase"`
	DepartmentCode    string `json:"departmentCode" binding:"required,uppercase"`
	SubDepartmentCode string `json:"subDepartmentCode" binding:"omitempty,uppercase"`
	DocumentTypeCode  string `json:"documentTypeCode" binding:"required,uppercase"`
	LanguageCode      string `json:"languageCode" binding:"required,uppercase"`
}

// ToDomainSegments converts the request to domain segments (sequence unset).
func (r CodeSegmentsRequest) ToDomainSegments() domain.CodeSegments {
	return domain.CodeSegments{
		CompanyCode:       r.CompanyCode,
		ScopeCode:         r.ScopeCode,
		DepartmentCode:    r.DepartmentCode,
		SubDepartmentCode: r.SubDepartmentCode,
		DocumentTypeCode:  r.DocumentTypeCode,
		LanguageCode:      r.LanguageCode,
	}
}

// CodeResponse is the result of generating or previewing a code.
type CodeResponse struct {
	Code           string `json:"code"`
	SequenceNumber int    `json:"sequenceNumber"`
}

// CodeOptionDTO is one allowed segment value.
type CodeOptionDTO struct {
	Code  string `json:"code" binding:"required,uppercase"`
	Label string `json:"label" binding:"required"`
}

// UpdateCodeConfigRequest replaces the configured option lists.
type UpdateCodeConfigRequest struct {
	CompanyCode    string          `json:"companyCode" binding:"required,uppercase"`
	Scopes         []CodeOptionDTO `json:"scopes" binding:"required,min=1,dive"`
	DocumentTypes  []CodeOptionDTO `json:"documentTypes" binding:"required,min=1,dive"`
	Departments    []CodeOptionDTO `json:"departments" binding:"required,min=1,dive"`
	SubDepartments []CodeOptionDTO `json:"subDepartments" binding:"omitempty,dive"`
	Languages      []CodeOptionDTO `json:"languages" binding:"required,min=1,dive"`
}

// CodeConfigResponse is the stored codification configuration.
type CodeConfigResponse struct {
	ConfigID       string          `json:"configID"`
	CompanyCode    string          `json:"companyCode"`
	Scopes         []CodeOptionDTO `json:"scopes"`
	DocumentTypes  []CodeOptionDTO `json:"documentTypes"`
	Departments    []CodeOptionDTO `json:"departments"`
	SubDepartments []CodeOptionDTO `json:"subDepartments"`
	Languages      []CodeOptionDTO `json:"languages"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy  string          `json:"lastUpdatedBy"`
}

func toCodeOptionDTOs(opts []domain.CodeOption) []CodeOptionDTO {
	res := make([]CodeOptionDTO, len(opts))
	for i, o := range opts {
		res[i] = CodeOptionDTO{Code: o.Code, Label: o.Label}
	}
	return res
}

// ToDomainCodeOptions converts request options to domain options.
func ToDomainCodeOptions(opts []CodeOptionDTO) []domain.CodeOption {
	res := make([]domain.CodeOption, len(opts))
	for i, o := range opts {
		res[i] = domain.CodeOption{Code: o.Code, Label: o.Label}
	}
	return res
}

// ToCodeConfigResponse converts a domain config to its response DTO.
func ToCodeConfigResponse(cfg *domain.DocumentCodeConfig) CodeConfigResponse {
	return CodeConfigResponse{
		ConfigID:       cfg.ConfigID,
		CompanyCode:    cfg.CompanyCode,
		Scopes:         toCodeOptionDTOs(cfg.Scopes),
		DocumentTypes:  toCodeOptionDTOs(cfg.DocumentTypes),
		Departments:    toCodeOptionDTOs(cfg.Departments),
		SubDepartments: toCodeOptionDTOs(cfg.SubDepartments),
		Languages:      toCodeOptionDTOs(cfg.Languages),
		LastUpdatedAt:  cfg.LastUpdatedAt,
		LastUpdatedBy:  cfg.LastUpdatedBy,
	}
}
