package dto

import (
	"time"

	"github.com/aerodoc/backend/internal/core/domain"
)

// CreateDocumentRequest defines the data needed to register a new document.
type CreateDocumentRequest struct {
	Title    string              `json:"title" binding:"required"`
	Type     string              `json:"type" binding:"required"`
	Content  string              `json:"content"`
	Airport  string              `json:"airport" binding:"required"`
	Status   string              `json:"status" binding:"omitempty,oneof=DRAFT ACTIVE"`
	FilePath string              `json:"filePath"`
	FileType string              `json:"fileType"`
	Tags     []string            `json:"tags"`
	Segments CodeSegmentsRequest `json:"segments" binding:"required"`
}

// UpdateDocumentRequest defines the data allowed for updating a document.
// Pointers differentiate omitted fields from zero values.
type UpdateDocumentRequest struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	Status   *string   `json:"status" binding:"omitempty,oneof=DRAFT ACTIVE ARCHIVED"`
	FilePath *string   `json:"filePath"`
	FileType *string   `json:"fileType"`
	Tags     *[]string `json:"tags"`

	// Supplying segments is a regeneration request through the codification
	// engine, never a direct overwrite of the stored code.
	Segments *CodeSegmentsRequest `json:"segments"`
}

// CreateFromTemplateRequest creates a document from a stored template.
type CreateFromTemplateRequest struct {
	TemplateID string              `json:"templateID" binding:"required"`
	Title      string              `json:"title" binding:"required"`
	Airport    string              `json:"airport" binding:"required"`
	Segments   CodeSegmentsRequest `json:"segments" binding:"required"`
}

// ListDocumentsParams defines query parameters for listing documents.
type ListDocumentsParams struct {
	Status    string `form:"status" binding:"omitempty,oneof=DRAFT ACTIVE ARCHIVED"`
	Type      string `form:"type"`
	Airport   string `form:"airport"`
	AuthorID  string `form:"authorId"`
	Tag       string `form:"tag"`
	Search    string `form:"search"`
	Limit     int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	PageToken string `form:"pageToken"`
}

// DocumentResponse defines the data returned for a document.
type DocumentResponse struct {
	DocumentID     string     `json:"documentID"`
	QRCode         string     `json:"qrCode"`
	Title          string     `json:"title"`
	Type           string     `json:"type"`
	Content        string     `json:"content,omitempty"`
	Status         string     `json:"status"`
	Version        int        `json:"version"`
	FilePath       string     `json:"filePath,omitempty"`
	FileType       string     `json:"fileType,omitempty"`
	ViewsCount     int64      `json:"viewsCount"`
	DownloadsCount int64      `json:"downloadsCount"`
	Code           string     `json:"code"`
	SequenceNumber int        `json:"sequenceNumber"`
	Tags           []string   `json:"tags,omitempty"`
	Airport        string     `json:"airport"`
	AuthorID       string     `json:"authorID"`
	ApprovedBy     *string    `json:"approvedBy,omitempty"`
	ApprovedAt     *time.Time `json:"approvedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	LastUpdatedAt  time.Time  `json:"lastUpdatedAt"`
}

// ListDocumentsResponse wraps a page of documents.
type ListDocumentsResponse struct {
	Documents     []DocumentResponse `json:"documents"`
	NextPageToken string             `json:"nextPageToken,omitempty"`
}

// ToDocumentResponse converts a domain.Document to its response DTO.
func ToDocumentResponse(doc *domain.Document) DocumentResponse {
	return DocumentResponse{
		DocumentID:     doc.DocumentID,
		QRCode:         doc.QRCode,
		Title:          doc.Title,
		Type:           string(doc.Type),
		Content:        doc.Content,
		Status:         string(doc.Status),
		Version:        doc.Version,
		FilePath:       doc.FilePath,
		FileType:       doc.FileType,
		ViewsCount:     doc.ViewsCount,
		DownloadsCount: doc.DownloadsCount,
		Code:           doc.Code,
		SequenceNumber: doc.SequenceNumber,
		Tags:           doc.Tags,
		Airport:        doc.Airport,
		AuthorID:       doc.AuthorID,
		ApprovedBy:     doc.ApprovedBy,
		ApprovedAt:     doc.ApprovedAt,
		CreatedAt:      doc.CreatedAt,
		LastUpdatedAt:  doc.LastUpdatedAt,
	}
}

// ToListDocumentsResponse converts a page of domain documents to the DTO.
func ToListDocumentsResponse(docs []domain.Document, nextToken string) ListDocumentsResponse {
	res := make([]DocumentResponse, len(docs))
	for i, d := range docs {
		res[i] = ToDocumentResponse(&d)
	}
	return ListDocumentsResponse{Documents: res, NextPageToken: nextToken}
}
