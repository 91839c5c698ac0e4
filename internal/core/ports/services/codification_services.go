package services

import (
	"context"

	"github.com/aerodoc/backend/internal/core/domain"
	"github.com/aerodoc/backend/internal/dto"
)

// CodeGeneratorSvc produces document codes from validated segments.
type CodeGeneratorSvc interface {
	// GenerateCode validates the segments against the active configuration,
	// reserves the next sequence number for the tuple and returns the full code.
	GenerateCode(ctx context.Context, segments domain.CodeSegments) (string, int, error)

	// PreviewCode returns the code the next GenerateCode call would produce,
	// without reserving the sequence number.
	PreviewCode(ctx context.Context, segments domain.CodeSegments) (string, int, error)
}

// CodeConfigSvc manages the codification configuration.
type CodeConfigSvc interface {
	// GetCodeConfig retrieves the active codification configuration.
	GetCodeConfig(ctx context.Context) (*domain.DocumentCodeConfig, error)

	// UpdateCodeConfig replaces the configured option lists. Admin only.
	UpdateCodeConfig(ctx context.Context, req dto.UpdateCodeConfigRequest, requestingUserID string) (*domain.DocumentCodeConfig, error)
}

// CodificationSvcFacade combines the codification service interfaces.
type CodificationSvcFacade interface {
	CodeGeneratorSvc
	CodeConfigSvc
}
