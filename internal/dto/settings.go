package dto

import (
	"time"

	"github.com/aerodoc/backend/internal/core/domain"
)

// UpdateSettingsRequest defines the data allowed for updating user settings.
type UpdateSettingsRequest struct {
	RetentionDays         *int  `json:"retentionDays" binding:"omitempty,min=1"`
	EmailNotifications    *bool `json:"emailNotifications"`
	SMSNotifications      *bool `json:"smsNotifications"`
	SessionTimeoutMinutes *int  `json:"sessionTimeoutMinutes" binding:"omitempty,min=1,max=480"`
	PasswordExpiryDays    *int  `json:"passwordExpiryDays" binding:"omitempty,min=1"`
	TwoFactorRequired     *bool `json:"twoFactorRequired"`
}

// SettingsResponse defines the data returned for user settings.
type SettingsResponse struct {
	UserID                string    `json:"userID"`
	RetentionDays         int       `json:"retentionDays"`
	EmailNotifications    bool      `json:"emailNotifications"`
	SMSNotifications      bool      `json:"smsNotifications"`
	SessionTimeoutMinutes int       `json:"sessionTimeoutMinutes"`
	PasswordExpiryDays    int       `json:"passwordExpiryDays"`
	TwoFactorRequired     bool      `json:"twoFactorRequired"`
	LastUpdatedAt         time.Time `json:"lastUpdatedAt"`
}

// ToSettingsResponse converts domain.Settings to its response DTO.
func ToSettingsResponse(s *domain.Settings) SettingsResponse {
	return SettingsResponse{
		UserID:                s.UserID,
		RetentionDays:         s.RetentionDays,
		EmailNotifications:    s.EmailNotifications,
		SMSNotifications:      s.SMSNotifications,
		SessionTimeoutMinutes: s.SessionTimeoutMinutes,
		PasswordExpiryDays:    s.PasswordExpiryDays,
		TwoFactorRequired:     s.TwoFactorRequired,
		LastUpdatedAt:         s.LastUpdatedAt,
	}
}
