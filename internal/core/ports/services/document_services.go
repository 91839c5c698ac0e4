package services

import (
	"context"

	"github.com/aerodoc/backend/internal/core/domain"
	"github.com/aerodoc/backend/internal/dto"
)

// DocumentReaderSvc defines read operations for document data
type DocumentReaderSvc interface {
	// GetDocumentByID retrieves a document by ID.
	GetDocumentByID(ctx context.Context, documentID string) (*domain.Document, error)

	// GetDocumentByQRCode retrieves a document by its QR token.
	GetDocumentByQRCode(ctx context.Context, qrCode string) (*domain.Document, error)

	// ListDocuments retrieves a page of documents matching the filter, newest first.
	ListDocuments(ctx context.Context, filter domain.DocumentFilter, limit int, pageToken string) ([]domain.Document, string, error)
}

// DocumentWriterSvc defines write operations for document data
type DocumentWriterSvc interface {
	// CreateDocument registers a new document, generating its code through the
	// codification engine.
	CreateDocument(ctx context.Context, req dto.CreateDocumentRequest, creatorUserID string) (*domain.Document, error)

	// UpdateDocument applies a partial update. A new file path bumps the
	// stored version; new segments regenerate the code.
	UpdateDocument(ctx context.Context, documentID string, req dto.UpdateDocumentRequest, requestingUserID string) (*domain.Document, error)

	// CreateFromTemplate instantiates a new DRAFT document from a TEMPLATE one.
	CreateFromTemplate(ctx context.Context, req dto.CreateFromTemplateRequest, creatorUserID string) (*domain.Document, error)

	// DeleteDocument removes a document permanently. Admin only.
	DeleteDocument(ctx context.Context, documentID string, requestingUserID string) error
}

// DocumentLifecycleSvc defines status transitions requiring privilege checks.
type DocumentLifecycleSvc interface {
	// ApproveDocument moves a DRAFT document to ACTIVE and records the approver.
	ApproveDocument(ctx context.Context, documentID string, approverUserID string) (*domain.Document, error)

	// ArchiveDocument moves a document to its terminal ARCHIVED status.
	ArchiveDocument(ctx context.Context, documentID string, requestingUserID string) (*domain.Document, error)
}

// DocumentUsageSvc records consultation metrics.
type DocumentUsageSvc interface {
	// RecordView bumps the document's view counter.
	RecordView(ctx context.Context, documentID string) error

	// RecordDownload bumps the document's download counter.
	RecordDownload(ctx context.Context, documentID string) error
}

// DocumentSvcFacade combines all document-related service interfaces
type DocumentSvcFacade interface {
	DocumentReaderSvc
	DocumentWriterSvc
	DocumentLifecycleSvc
	DocumentUsageSvc
}
