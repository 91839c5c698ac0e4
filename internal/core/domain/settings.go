package domain

// Settings is the per-user configuration record consumed by the other
// components (retention, notifications, security).
type Settings struct {
	UserID                string `json:"userID"` // Primary Key, FK -> users.user_id
	RetentionDays         int    `json:"retentionDays"`
	EmailNotifications    bool   `json:"emailNotifications"`
	SMSNotifications      bool   `json:"smsNotifications"`
	SessionTimeoutMinutes int    `json:"sessionTimeoutMinutes"`
	PasswordExpiryDays    int    `json:"passwordExpiryDays"`
	TwoFactorRequired     bool   `json:"twoFactorRequired"`
	AuditFields
}

// DefaultSettings returns the settings record created on first read.
func DefaultSettings(userID string) Settings {
	return Settings{
		UserID:                userID,
		RetentionDays:         365,
		EmailNotifications:    true,
		SMSNotifications:      false,
		SessionTimeoutMinutes: 30,
		PasswordExpiryDays:    90,
		TwoFactorRequired:     false,
	}
}
