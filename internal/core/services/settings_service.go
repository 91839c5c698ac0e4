package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aerodoc/backend/internal/apperrors"
	"github.com/aerodoc/backend/internal/core/domain"
	portsrepo "github.com/aerodoc/backend/internal/core/ports/repositories"
	portssvc "github.com/aerodoc/backend/internal/core/ports/services"
	"github.com/aerodoc/backend/internal/dto"
)

type settingsService struct {
	BaseService
	repo     portsrepo.SettingsRepositoryFacade
	userSvc  portssvc.UserReaderSvc
	activity portssvc.ActivityRecorderSvc
}

// NewSettingsService creates the per-user settings service.
func NewSettingsService(repo portsrepo.SettingsRepositoryFacade, userSvc portssvc.UserReaderSvc, activity portssvc.ActivityRecorderSvc) portssvc.SettingsSvcFacade {
	return &settingsService{repo: repo, userSvc: userSvc, activity: activity}
}

// GetSettings retrieves a user's settings, creating the default record on
// first read.
func (s *settingsService) GetSettings(ctx context.Context, userID string) (*domain.Settings, error) {
	settings, err := s.repo.FindSettingsByUserID(ctx, userID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to load settings", "user_id", userID)
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	defaults := domain.DefaultSettings(userID)
	now := time.Now()
	defaults.CreatedAt = now
	defaults.CreatedBy = userID
	defaults.LastUpdatedAt = now
	defaults.LastUpdatedBy = userID

	if err := s.repo.SaveSettings(ctx, defaults); err != nil {
		s.LogError(ctx, err, "Failed to save default settings", "user_id", userID)
		return nil, fmt.Errorf("failed to save default settings: %w", err)
	}
	return &defaults, nil
}

// UpdateSettings applies a partial update. Users may only change their own
// settings unless they are administrators.
func (s *settingsService) UpdateSettings(ctx context.Context, userID string, req dto.UpdateSettingsRequest, requestingUserID string) (*domain.Settings, error) {
	if userID != requestingUserID {
		requester, err := s.userSvc.GetUserByID(ctx, requestingUserID)
		if err != nil {
			return nil, fmt.Errorf("failed to load requesting user: %w", err)
		}
		if !requester.Role.IsAdmin() {
			return nil, fmt.Errorf("users may only change their own settings: %w", apperrors.ErrForbidden)
		}
	}

	settings, err := s.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.RetentionDays != nil {
		settings.RetentionDays = *req.RetentionDays
	}
	if req.EmailNotifications != nil {
		settings.EmailNotifications = *req.EmailNotifications
	}
	if req.SMSNotifications != nil {
		settings.SMSNotifications = *req.SMSNotifications
	}
	if req.SessionTimeoutMinutes != nil {
		settings.SessionTimeoutMinutes = *req.SessionTimeoutMinutes
	}
	if req.PasswordExpiryDays != nil {
		settings.PasswordExpiryDays = *req.PasswordExpiryDays
	}
	if req.TwoFactorRequired != nil {
		settings.TwoFactorRequired = *req.TwoFactorRequired
	}

	settings.LastUpdatedAt = time.Now()
	settings.LastUpdatedBy = requestingUserID

	if err := s.repo.SaveSettings(ctx, *settings); err != nil {
		s.LogError(ctx, err, "Failed to save settings", "user_id", userID)
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	s.activity.Record(ctx, domain.ActivityLog{
		Action:     domain.ActivitySettingsUpdated,
		Details:    "User settings updated",
		EntityType: domain.EntitySettings,
		EntityID:   userID,
		UserID:     requestingUserID,
	})

	return settings, nil
}
