package domain

import (
	"fmt"
	"strings"
)

// CodeSegments holds the configurable parts of a document code.
// SubDepartmentCode is the only optional segment.
type CodeSegments struct {
	CompanyCode       string `json:"companyCode"`
	ScopeCode         string `json:"scopeCode"`
	DepartmentCode    string `json:"departmentCode"`
	SubDepartmentCode string `json:"subDepartmentCode,omitempty"`
	DocumentTypeCode  string `json:"documentTypeCode"`
	LanguageCode      string `json:"languageCode"`
	SequenceNumber    int    `json:"sequenceNumber"`
}

// SequenceTuple returns the segment values that key a sequence counter.
// The optional sub-department is excluded so both variants share one counter.
func (s CodeSegments) SequenceTuple() [5]string {
	return [5]string{s.CompanyCode, s.ScopeCode, s.DepartmentCode, s.DocumentTypeCode, s.LanguageCode}
}

// CodeWith renders the full code string for the given sequence number.
// Segments are joined by "-", the sub-department is included only when
// present and the sequence is zero-padded to four digits.
func (s CodeSegments) CodeWith(seq int) string {
	parts := []string{s.CompanyCode, s.ScopeCode, s.DepartmentCode}
	if s.SubDepartmentCode != "" {
		parts = append(parts, s.SubDepartmentCode)
	}
	parts = append(parts, s.DocumentTypeCode, s.LanguageCode, fmt.Sprintf("%04d", seq))
	return strings.Join(parts, "-")
}

// CodeOption is one allowed value for a code segment, with a display label.
type CodeOption struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// DocumentCodeConfig is the source of truth for valid code segments.
// A single active record drives the codification engine.
type DocumentCodeConfig struct {
	ConfigID       string       `json:"configID"` // Primary Key (UUID)
	CompanyCode    string       `json:"companyCode"`
	Scopes         []CodeOption `json:"scopes"`
	DocumentTypes  []CodeOption `json:"documentTypes"`
	Departments    []CodeOption `json:"departments"`
	SubDepartments []CodeOption `json:"subDepartments"`
	Languages      []CodeOption `json:"languages"`
	AuditFields
}

func containsCode(options []CodeOption, code string) bool {
	for _, o := range options {
		if o.Code == code {
			return true
		}
	}
	return false
}

// HasScope reports whether the given scope code is configured.
func (c *DocumentCodeConfig) HasScope(code string) bool { return containsCode(c.Scopes, code) }

// HasDocumentType reports whether the given document type code is configured.
func (c *DocumentCodeConfig) HasDocumentType(code string) bool {
	return containsCode(c.DocumentTypes, code)
}

// HasDepartment reports whether the given department code is configured.
func (c *DocumentCodeConfig) HasDepartment(code string) bool {
	return containsCode(c.Departments, code)
}

// HasSubDepartment reports whether the given sub-department code is configured.
func (c *DocumentCodeConfig) HasSubDepartment(code string) bool {
	return containsCode(c.SubDepartments, code)
}

// HasLanguage reports whether the given language code is configured.
func (c *DocumentCodeConfig) HasLanguage(code string) bool { return containsCode(c.Languages, code) }
