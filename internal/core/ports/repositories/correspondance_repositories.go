package repositories

import (
	"context"

	"github.com/aerodoc/backend/internal/core/domain"
)

// CorrespondanceReader defines read operations for correspondence data
type CorrespondanceReader interface {
	// FindCorrespondanceByID retrieves a specific correspondence by its ID.
	FindCorrespondanceByID(ctx context.Context, correspondanceID string) (*domain.Correspondance, error)

	// ListCorrespondances retrieves correspondences matching the filter, newest first.
	ListCorrespondances(ctx context.Context, filter domain.CorrespondanceFilter, limit int, pageToken string) ([]domain.Correspondance, string, error)
}

// CorrespondanceWriter defines write operations for correspondence data
type CorrespondanceWriter interface {
	// SaveCorrespondance persists a new correspondence.
	SaveCorrespondance(ctx context.Context, corr domain.Correspondance) error

	// UpdateCorrespondance updates an existing correspondence.
	UpdateCorrespondance(ctx context.Context, corr domain.Correspondance) error

	// DeleteCorrespondance removes a correspondence row permanently.
	DeleteCorrespondance(ctx context.Context, correspondanceID string) error
}

// CorrespondanceRepositoryFacade combines the correspondence repository interfaces.
type CorrespondanceRepositoryFacade interface {
	CorrespondanceReader
	CorrespondanceWriter
}
