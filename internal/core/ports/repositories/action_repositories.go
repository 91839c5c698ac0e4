package repositories

import (
	"context"

	"github.com/aerodoc/backend/internal/core/domain"
)

// ActionReader defines read operations for action data
type ActionReader interface {
	// FindActionByID retrieves a specific action by its ID.
	FindActionByID(ctx context.Context, actionID string) (*domain.Action, error)

	// ListActions retrieves actions matching the filter, newest first.
	ListActions(ctx context.Context, filter domain.ActionFilter, limit int, pageToken string) ([]domain.Action, string, error)
}

// ActionWriter defines write operations for action data
type ActionWriter interface {
	// SaveAction persists a new action.
	SaveAction(ctx context.Context, action domain.Action) error

	// UpdateAction updates an existing action.
	UpdateAction(ctx context.Context, action domain.Action) error

	// DeleteAction removes an action row permanently.
	DeleteAction(ctx context.Context, actionID string) error
}

// ActionRepositoryFacade combines the action repository interfaces.
type ActionRepositoryFacade interface {
	ActionReader
	ActionWriter
}
