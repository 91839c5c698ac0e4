package models

// Settings is the database shape of a per-user settings row.
type Settings struct {
	UserID                string `json:"userID" db:"user_id"`
	RetentionDays         int    `json:"retentionDays" db:"retention_days"`
	EmailNotifications    bool   `json:"emailNotifications" db:"email_notifications"`
	SMSNotifications      bool   `json:"smsNotifications" db:"sms_notifications"`
	SessionTimeoutMinutes int    `json:"sessionTimeoutMinutes" db:"session_timeout_minutes"`
	PasswordExpiryDays    int    `json:"passwordExpiryDays" db:"password_expiry_days"`
	TwoFactorRequired     bool   `json:"twoFactorRequired" db:"two_factor_required"`
	AuditFields
}
