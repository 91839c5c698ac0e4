package repositories

import (
	"context"

	"github.com/aerodoc/backend/internal/core/domain"
)

// ProcesVerbalReader defines read operations for meeting-minutes data
type ProcesVerbalReader interface {
	// FindProcesVerbalByID retrieves a specific procès-verbal by its ID.
	FindProcesVerbalByID(ctx context.Context, procesVerbalID string) (*domain.ProcesVerbal, error)

	// ListProcesVerbaux retrieves procès-verbaux newest first.
	ListProcesVerbaux(ctx context.Context, limit int, pageToken string) ([]domain.ProcesVerbal, string, error)
}

// ProcesVerbalWriter defines write operations for meeting-minutes data
type ProcesVerbalWriter interface {
	// SaveProcesVerbal persists a new procès-verbal.
	SaveProcesVerbal(ctx context.Context, pv domain.ProcesVerbal) error

	// UpdateProcesVerbal updates an existing procès-verbal.
	UpdateProcesVerbal(ctx context.Context, pv domain.ProcesVerbal) error
}

// ProcesVerbalRepositoryFacade combines the procès-verbal repository interfaces.
type ProcesVerbalRepositoryFacade interface {
	ProcesVerbalReader
	ProcesVerbalWriter
}
