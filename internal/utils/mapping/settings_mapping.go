package mapping

import (
	"github.com/aerodoc/backend/internal/core/domain"
	"github.com/aerodoc/backend/internal/models"
)

// ToModelSettings converts domain Settings to the model shape.
func ToModelSettings(d domain.Settings) models.Settings {
	return models.Settings{
		UserID:                d.UserID,
		RetentionDays:         d.RetentionDays,
		EmailNotifications:    d.EmailNotifications,
		SMSNotifications:      d.SMSNotifications,
		SessionTimeoutMinutes: d.SessionTimeoutMinutes,
		PasswordExpiryDays:    d.PasswordExpiryDays,
		TwoFactorRequired:     d.TwoFactorRequired,
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSettings converts model Settings to the domain shape.
func ToDomainSettings(m models.Settings) domain.Settings {
	return domain.Settings{
		UserID:                m.UserID,
		RetentionDays:         m.RetentionDays,
		EmailNotifications:    m.EmailNotifications,
		SMSNotifications:      m.SMSNotifications,
		SessionTimeoutMinutes: m.SessionTimeoutMinutes,
		PasswordExpiryDays:    m.PasswordExpiryDays,
		TwoFactorRequired:     m.TwoFactorRequired,
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
}
