package services

import (
	"context"

	"github.com/aerodoc/backend/internal/core/domain"
)

// SearchIndexerSvc pushes documents into the full-text search index.
// Indexing is best effort: implementations log and swallow failures so the
// primary write path never depends on the index being reachable.
type SearchIndexerSvc interface {
	// Enabled reports whether a search backend is configured.
	Enabled() bool

	// IndexDocument inserts or replaces a document in the index.
	IndexDocument(ctx context.Context, doc domain.Document)

	// RemoveDocument deletes a document from the index.
	RemoveDocument(ctx context.Context, documentID string)

	// SearchDocumentIDs resolves a free-text query to matching document IDs,
	// best matches first.
	SearchDocumentIDs(ctx context.Context, query string, limit int) ([]string, error)
}
