package services

import (
	"context"

	"github.com/aerodoc/backend/internal/core/domain"
	"github.com/aerodoc/backend/internal/dto"
)

// ActionReaderSvc defines read operations for tracked actions.
type ActionReaderSvc interface {
	// GetActionByID retrieves an action by ID.
	GetActionByID(ctx context.Context, actionID string) (*domain.Action, error)

	// ListActions retrieves a page of actions matching the filter, newest first.
	ListActions(ctx context.Context, filter domain.ActionFilter, limit int, pageToken string) ([]domain.Action, string, error)
}

// ActionWriterSvc defines write operations for tracked actions.
type ActionWriterSvc interface {
	// CreateAction registers a new action in PENDING status.
	CreateAction(ctx context.Context, req dto.CreateActionRequest, creatorUserID string) (*domain.Action, error)

	// UpdateAction applies a partial update. Completing an action forces its
	// progress to 100.
	UpdateAction(ctx context.Context, actionID string, req dto.UpdateActionRequest, requestingUserID string) (*domain.Action, error)

	// DeleteAction removes an action permanently. Admin only.
	DeleteAction(ctx context.Context, actionID string, requestingUserID string) error
}

// ActionSvcFacade combines the action service interfaces.
type ActionSvcFacade interface {
	ActionReaderSvc
	ActionWriterSvc
}
