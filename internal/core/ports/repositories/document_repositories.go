package repositories

import (
	"context"
	"time"

	"github.com/aerodoc/backend/internal/core/domain"
)

// DocumentReader defines read operations for document data
type DocumentReader interface {
	// FindDocumentByID retrieves a specific document by its ID.
	FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error)

	// FindDocumentByQRCode retrieves a document by its QR token.
	FindDocumentByQRCode(ctx context.Context, qrCode string) (*domain.Document, error)

	// ListDocuments retrieves documents matching the filter, newest first.
	// pageToken is opaque; the returned token is empty when no more pages exist.
	ListDocuments(ctx context.Context, filter domain.DocumentFilter, limit int, pageToken string) ([]domain.Document, string, error)
}

// DocumentWriter defines write operations for document data
type DocumentWriter interface {
	// SaveDocument persists a new document.
	SaveDocument(ctx context.Context, doc domain.Document) error

	// UpdateDocument updates an existing document. bumpVersion increments the
	// stored version by one atomically (file replacement).
	UpdateDocument(ctx context.Context, doc domain.Document, bumpVersion bool) error

	// DeleteDocument removes a document row permanently.
	DeleteDocument(ctx context.Context, documentID string) error

	// MarkApproved records the approver and approval time, and moves DRAFT
	// documents to ACTIVE.
	MarkApproved(ctx context.Context, documentID, approverID string, approvedAt time.Time) error
}

// DocumentCounterWriter defines the atomic view/download counters.
type DocumentCounterWriter interface {
	// IncrementViews bumps views_count by one.
	IncrementViews(ctx context.Context, documentID string) error

	// IncrementDownloads bumps downloads_count by one.
	IncrementDownloads(ctx context.Context, documentID string) error
}

// DocumentRepositoryFacade combines all document-related repository interfaces
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
	DocumentCounterWriter
}
