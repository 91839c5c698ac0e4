package services

import (
	"context"

	"github.com/aerodoc/backend/internal/core/domain"
	"github.com/aerodoc/backend/internal/dto"
)

// SettingsSvcFacade manages per-user settings.
type SettingsSvcFacade interface {
	// GetSettings retrieves a user's settings, falling back to defaults when
	// none are stored yet.
	GetSettings(ctx context.Context, userID string) (*domain.Settings, error)

	// UpdateSettings applies a partial update to a user's settings.
	UpdateSettings(ctx context.Context, userID string, req dto.UpdateSettingsRequest, requestingUserID string) (*domain.Settings, error)
}
