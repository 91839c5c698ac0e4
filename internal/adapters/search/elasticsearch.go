package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/aerodoc/backend/internal/core/domain"
	portssvc "github.com/aerodoc/backend/internal/core/ports/services"
	"github.com/aerodoc/backend/internal/middleware"
	"github.com/elastic/go-elasticsearch/v8"
)

const documentsIndex = "documents"

// Indexer pushes documents into an Elasticsearch index for free-text search.
// When no ELASTICSEARCH_URL is configured the client is nil and every call is
// a no-op; the document service falls back to LIKE queries.
type Indexer struct {
	client *elasticsearch.Client
}

// NewIndexer creates the Elasticsearch indexer. An empty URL yields a
// disabled indexer, never an error.
func NewIndexer(esURL string) (*Indexer, error) {
	if esURL == "" {
		return &Indexer{}, nil
	}

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{esURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}
	return &Indexer{client: client}, nil
}

// Enabled reports whether a search backend is configured.
func (i *Indexer) Enabled() bool {
	return i != nil && i.client != nil
}

// IndexDocument inserts or replaces a document in the index. Best effort:
// failures are logged and swallowed.
func (i *Indexer) IndexDocument(ctx context.Context, doc domain.Document) {
	if !i.Enabled() {
		return
	}
	logger := middleware.GetLoggerFromCtx(ctx)

	body, err := json.Marshal(map[string]interface{}{
		"document_id": doc.DocumentID,
		"title":       doc.Title,
		"content":     doc.Content,
		"code":        doc.Code,
		"tags":        doc.Tags,
		"airport":     doc.Airport,
		"status":      string(doc.Status),
	})
	if err != nil {
		logger.Warn("Failed to marshal document for indexing", slog.String("document_id", doc.DocumentID), slog.String("error", err.Error()))
		return
	}

	res, err := i.client.Index(
		documentsIndex,
		bytes.NewReader(body),
		i.client.Index.WithDocumentID(doc.DocumentID),
		i.client.Index.WithContext(ctx),
	)
	if err != nil {
		logger.Warn("Elasticsearch indexing error", slog.String("document_id", doc.DocumentID), slog.String("error", err.Error()))
		return
	}
	defer res.Body.Close()

	if res.IsError() {
		logger.Warn("Elasticsearch indexing failed", slog.String("document_id", doc.DocumentID), slog.String("response", res.String()))
	}
}

// RemoveDocument deletes a document from the index. Best effort.
func (i *Indexer) RemoveDocument(ctx context.Context, documentID string) {
	if !i.Enabled() {
		return
	}
	logger := middleware.GetLoggerFromCtx(ctx)

	res, err := i.client.Delete(
		documentsIndex,
		documentID,
		i.client.Delete.WithContext(ctx),
	)
	if err != nil {
		logger.Warn("Elasticsearch delete error", slog.String("document_id", documentID), slog.String("error", err.Error()))
		return
	}
	defer res.Body.Close()

	if res.IsError() && res.StatusCode != 404 {
		logger.Warn("Elasticsearch delete failed", slog.String("document_id", documentID), slog.String("response", res.String()))
	}
}

// SearchDocumentIDs resolves a free-text query to matching document IDs,
// best matches first.
func (i *Indexer) SearchDocumentIDs(ctx context.Context, query string, limit int) ([]string, error) {
	if !i.Enabled() {
		return nil, fmt.Errorf("elasticsearch client is not initialized")
	}

	searchQuery := map[string]interface{}{
		"size": limit,
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"title", "content", "code", "tags"},
			},
		},
	}
	body, err := json.Marshal(searchQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search query: %w", err)
	}

	res, err := i.client.Search(
		i.client.Search.WithContext(ctx),
		i.client.Search.WithIndex(documentsIndex),
		i.client.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch search failed: %s", res.String())
	}

	var result struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	ids := make([]string, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		ids = append(ids, hit.ID)
	}
	return ids, nil
}

var _ portssvc.SearchIndexerSvc = (*Indexer)(nil)
