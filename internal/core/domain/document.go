package domain

import "time"

// DocumentType enumerates the kinds of documents the registry stores.
type DocumentType string

const (
	DocTypeFormulaire DocumentType = "FORMULAIRE_DOC"
	DocTypeQualite    DocumentType = "QUALITE_DOC"
	DocTypeNouveau    DocumentType = "NOUVEAU_DOC"
	DocTypeGeneral    DocumentType = "GENERAL"
	DocTypeTemplate   DocumentType = "TEMPLATE"
)

// IsValid reports whether t is one of the known document types.
func (t DocumentType) IsValid() bool {
	switch t {
	case DocTypeFormulaire, DocTypeQualite, DocTypeNouveau, DocTypeGeneral, DocTypeTemplate:
		return true
	}
	return false
}

// DocumentStatus is the lifecycle state of a document.
// Transitions are monotonic: DRAFT -> ACTIVE -> ARCHIVED. ARCHIVED is terminal.
type DocumentStatus string

const (
	StatusDraft    DocumentStatus = "DRAFT"
	StatusActive   DocumentStatus = "ACTIVE"
	StatusArchived DocumentStatus = "ARCHIVED"
)

// IsValid reports whether s is one of the known statuses.
func (s DocumentStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusArchived:
		return true
	}
	return false
}

func (s DocumentStatus) rank() int {
	switch s {
	case StatusDraft:
		return 0
	case StatusActive:
		return 1
	case StatusArchived:
		return 2
	}
	return -1
}

// CanTransitionTo reports whether moving from s to next is allowed.
// Staying on the same status is a no-op and always allowed.
func (s DocumentStatus) CanTransitionTo(next DocumentStatus) bool {
	if !s.IsValid() || !next.IsValid() {
		return false
	}
	return next.rank() >= s.rank()
}

// Document represents a registered document with its generated code and QR token.
type Document struct {
	DocumentID string         `json:"documentID"` // Primary Key (UUID)
	QRCode     string         `json:"qrCode"`     // Unique immutable token, not the rendered image
	Title      string         `json:"title"`
	Type       DocumentType   `json:"type"`
	Content    string         `json:"content,omitempty"`
	Status     DocumentStatus `json:"status"`
	Version    int            `json:"version"` // Starts at 1, bumped on file replacement

	FilePath string `json:"filePath,omitempty"` // Relative to the uploads root
	FileType string `json:"fileType,omitempty"`

	ViewsCount     int64 `json:"viewsCount"`
	DownloadsCount int64 `json:"downloadsCount"`

	Code string `json:"code"` // Full generated codification string
	CodeSegments

	Tags    []string `json:"tags,omitempty"`
	Airport string   `json:"airport"`

	AuthorID   string     `json:"authorID"`
	ApprovedBy *string    `json:"approvedBy,omitempty"`
	ApprovedAt *time.Time `json:"approvedAt,omitempty"`
	AuditFields
}

// DocumentFilter narrows document listings. Zero values mean "no filter".
type DocumentFilter struct {
	Status   DocumentStatus
	Type     DocumentType
	Airport  string
	AuthorID string
	Tag      string
	Search   string // Free-text query over title and content

	// IDs restricts the listing to the given document IDs. Set by the search
	// index when it resolves a free-text query; takes precedence over Search.
	IDs []string
}
