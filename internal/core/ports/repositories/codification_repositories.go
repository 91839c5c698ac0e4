package repositories

import (
	"context"

	"github.com/aerodoc/backend/internal/core/domain"
)

// CodeConfigReader defines read operations for the codification configuration.
type CodeConfigReader interface {
	// GetActiveConfig retrieves the single active codification configuration.
	GetActiveConfig(ctx context.Context) (*domain.DocumentCodeConfig, error)
}

// CodeConfigWriter defines write operations for the codification configuration.
type CodeConfigWriter interface {
	// SaveConfig persists a new configuration record.
	SaveConfig(ctx context.Context, cfg domain.DocumentCodeConfig) error

	// UpdateConfig replaces the option lists of an existing configuration.
	UpdateConfig(ctx context.Context, cfg domain.DocumentCodeConfig) error
}

// SequenceAllocator owns the per-tuple sequence counters. Allocation must be
// atomic: concurrent calls on the same tuple never return the same number.
type SequenceAllocator interface {
	// AllocateSequence reserves and returns the next sequence number for the
	// given segment tuple, creating the counter at 1 on first use.
	AllocateSequence(ctx context.Context, segments domain.CodeSegments) (int, error)

	// PeekSequence returns the number AllocateSequence would return, without
	// reserving it.
	PeekSequence(ctx context.Context, segments domain.CodeSegments) (int, error)
}

// CodeConfigRepositoryFacade combines the codification repository interfaces.
type CodeConfigRepositoryFacade interface {
	CodeConfigReader
	CodeConfigWriter
	SequenceAllocator
}
