package services

import (
	"context"

	"github.com/aerodoc/backend/internal/core/domain"
	"github.com/aerodoc/backend/internal/dto"
)

// CorrespondanceReaderSvc defines read operations for correspondence data
type CorrespondanceReaderSvc interface {
	// GetCorrespondanceByID retrieves a correspondence by ID.
	GetCorrespondanceByID(ctx context.Context, correspondanceID string) (*domain.Correspondance, error)

	// ListCorrespondances retrieves a page of correspondences matching the filter.
	ListCorrespondances(ctx context.Context, filter domain.CorrespondanceFilter, limit int, pageToken string) ([]domain.Correspondance, string, error)
}

// CorrespondanceWriterSvc defines write operations for correspondence data
type CorrespondanceWriterSvc interface {
	// CreateCorrespondance registers a new correspondence with a generated code.
	CreateCorrespondance(ctx context.Context, req dto.CreateCorrespondanceRequest, creatorUserID string) (*domain.Correspondance, error)

	// UpdateCorrespondance applies a partial update.
	UpdateCorrespondance(ctx context.Context, correspondanceID string, req dto.UpdateCorrespondanceRequest, requestingUserID string) (*domain.Correspondance, error)

	// DeleteCorrespondance removes a correspondence permanently. Admin only.
	DeleteCorrespondance(ctx context.Context, correspondanceID string, requestingUserID string) error
}

// CorrespondanceSvcFacade combines the correspondence service interfaces.
type CorrespondanceSvcFacade interface {
	CorrespondanceReaderSvc
	CorrespondanceWriterSvc
}
