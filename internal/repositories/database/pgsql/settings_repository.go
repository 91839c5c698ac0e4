package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/aerodoc/backend/internal/apperrors"
	"github.com/aerodoc/backend/internal/core/domain"
	portsrepo "github.com/aerodoc/backend/internal/core/ports/repositories"
	"github.com/aerodoc/backend/internal/models"
	"github.com/aerodoc/backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSettingsRepository struct {
	BaseRepository
}

func newPgxSettingsRepository(db *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

const settingsColumns = `user_id, retention_days, email_notifications, sms_notifications, session_timeout_minutes, password_expiry_days, two_factor_required,
	created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxSettingsRepository) FindSettingsByUserID(ctx context.Context, userID string) (*domain.Settings, error) {
	query := `SELECT ` + settingsColumns + ` FROM settings WHERE user_id = $1;`
	var m models.Settings
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&m.UserID, &m.RetentionDays, &m.EmailNotifications, &m.SMSNotifications, &m.SessionTimeoutMinutes, &m.PasswordExpiryDays, &m.TwoFactorRequired,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find settings for user %s: %w", userID, err)
	}
	settings := mapping.ToDomainSettings(m)
	return &settings, nil
}

// SaveSettings upserts the settings row keyed by user_id.
func (r *PgxSettingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	m := mapping.ToModelSettings(settings)
	query := `
        INSERT INTO settings (` + settingsColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        ON CONFLICT (user_id)
        DO UPDATE SET retention_days = EXCLUDED.retention_days,
                      email_notifications = EXCLUDED.email_notifications,
                      sms_notifications = EXCLUDED.sms_notifications,
                      session_timeout_minutes = EXCLUDED.session_timeout_minutes,
                      password_expiry_days = EXCLUDED.password_expiry_days,
                      two_factor_required = EXCLUDED.two_factor_required,
                      last_updated_at = EXCLUDED.last_updated_at,
                      last_updated_by = EXCLUDED.last_updated_by;
    `
	_, err := r.Pool.Exec(ctx, query,
		m.UserID, m.RetentionDays, m.EmailNotifications, m.SMSNotifications, m.SessionTimeoutMinutes, m.PasswordExpiryDays, m.TwoFactorRequired,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
