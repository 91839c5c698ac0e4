package repositories

import (
	"context"

	"github.com/aerodoc/backend/internal/core/domain"
)

// SettingsReader defines read operations for per-user settings.
type SettingsReader interface {
	// FindSettingsByUserID retrieves the settings record for a user.
	FindSettingsByUserID(ctx context.Context, userID string) (*domain.Settings, error)
}

// SettingsWriter defines write operations for per-user settings.
type SettingsWriter interface {
	// SaveSettings inserts or replaces a settings record.
	SaveSettings(ctx context.Context, settings domain.Settings) error
}

// SettingsRepositoryFacade combines the settings repository interfaces.
type SettingsRepositoryFacade interface {
	SettingsReader
	SettingsWriter
}
