package services

import (
	"context"

	"github.com/aerodoc/backend/internal/core/domain"
	"github.com/aerodoc/backend/internal/dto"
)

// ProcesVerbalReaderSvc defines read operations for meeting minutes.
type ProcesVerbalReaderSvc interface {
	// GetProcesVerbalByID retrieves a procès-verbal by ID.
	GetProcesVerbalByID(ctx context.Context, procesVerbalID string) (*domain.ProcesVerbal, error)

	// ListProcesVerbaux retrieves a page of procès-verbaux, newest first.
	ListProcesVerbaux(ctx context.Context, limit int, pageToken string) ([]domain.ProcesVerbal, string, error)
}

// ProcesVerbalWriterSvc defines write operations for meeting minutes.
type ProcesVerbalWriterSvc interface {
	// CreateProcesVerbal registers new minutes and their backing document.
	CreateProcesVerbal(ctx context.Context, req dto.CreateProcesVerbalRequest, creatorUserID string) (*domain.ProcesVerbal, error)

	// UpdateProcesVerbal applies a partial update to existing minutes.
	UpdateProcesVerbal(ctx context.Context, procesVerbalID string, req dto.UpdateProcesVerbalRequest, requestingUserID string) (*domain.ProcesVerbal, error)
}

// ProcesVerbalSvcFacade combines the procès-verbal service interfaces.
type ProcesVerbalSvcFacade interface {
	ProcesVerbalReaderSvc
	ProcesVerbalWriterSvc
}
