package models

import (
	"database/sql"
	"time"
)

// Document is the database shape of a document row.
type Document struct {
	DocumentID string `json:"documentID" db:"document_id"`
	QRCode     string `json:"qrCode" db:"qr_code"`
	Title      string `json:"title" db:"title"`
	Type       string `json:"type" db:"doc_type"`
	Content    string `json:"content" db:"content"`
	Status     string `json:"status" db:"status"`
	Version    int    `json:"version" db:"version"`

	FilePath string `json:"filePath" db:"file_path"`
	FileType string `json:"fileType" db:"file_type"`

	ViewsCount     int64 `json:"viewsCount" db:"views_count"`
	DownloadsCount int64 `json:"downloadsCount" db:"downloads_count"`

	Code              string `json:"code" db:"code"`
	CompanyCode       string `json:"companyCode" db:"company_code"`
	ScopeCode         string `json:"scopeCode" db:"scope_code"`
	DepartmentCode    string `json:"departmentCode" db:"department_code"`
	SubDepartmentCode string `json:"subDepartmentCode" db:"sub_department_code"`
	DocumentTypeCode  string `json:"documentTypeCode" db:"document_type_code"`
	LanguageCode      string `json:"languageCode" db:"language_code"`
	SequenceNumber    int    `json:"sequenceNumber" db:"sequence_number"`

	Tags    []string `json:"tags" db:"tags"`
	Airport string   `json:"airport" db:"airport"`

	AuthorID   string       `json:"authorID" db:"author_id"`
	ApprovedBy sql.NullString `json:"approvedBy" db:"approved_by"`
	ApprovedAt sql.NullTime   `json:"approvedAt" db:"approved_at"`
	AuditFields
}

// DocumentSequence is one allocator row per codification tuple.
type DocumentSequence struct {
	CompanyCode       string    `db:"company_code"`
	ScopeCode         string    `db:"scope_code"`
	DepartmentCode    string    `db:"department_code"`
	SubDepartmentCode string    `db:"sub_department_code"`
	DocumentTypeCode  string    `db:"document_type_code"`
	LanguageCode      string    `db:"language_code"`
	NextSeq           int       `db:"next_seq"`
	LastUpdatedAt     time.Time `db:"last_updated_at"`
}
