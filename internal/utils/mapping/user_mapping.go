package mapping

import (
	"database/sql"
	"time"

	"github.com/aerodoc/backend/internal/core/domain"
	"github.com/aerodoc/backend/internal/models"
)

// ToModelUser converts a domain User to a model User.
func ToModelUser(d domain.User) models.User {
	m := models.User{
		UserID:                d.UserID,
		Email:                 d.Email,
		FirstName:             d.FirstName,
		LastName:              d.LastName,
		PasswordHash:          d.PasswordHash,
		Role:                  string(d.Role),
		Airport:               d.Airport,
		IsActive:              d.IsActive,
		SessionTimeoutMinutes: d.SessionTimeoutMinutes,
		Department:            d.Department,
		Position:              d.Position,
		Phone:                 d.Phone,
		ProfilePhoto:          d.ProfilePhoto,
		AuditFields:           ToModelAuditFields(d.AuditFields),
		DeletedAt:             d.DeletedAt,
	}
	m.RefreshTokenHash = toNullString(d.RefreshTokenHash)
	m.RefreshTokenExpiryTime = toNullTime(d.RefreshTokenExpiryTime)
	m.PasswordResetTokenHash = toNullString(d.PasswordResetTokenHash)
	m.PasswordResetExpiryTime = toNullTime(d.PasswordResetExpiryTime)
	return m
}

// ToDomainUser converts a model User to a domain User.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:                  m.UserID,
		Email:                   m.Email,
		FirstName:               m.FirstName,
		LastName:                m.LastName,
		PasswordHash:            m.PasswordHash,
		Role:                    domain.UserRole(m.Role),
		Airport:                 m.Airport,
		IsActive:                m.IsActive,
		SessionTimeoutMinutes:   m.SessionTimeoutMinutes,
		Department:              m.Department,
		Position:                m.Position,
		Phone:                   m.Phone,
		ProfilePhoto:            m.ProfilePhoto,
		AuditFields:             ToDomainAuditFields(m.AuditFields),
		DeletedAt:               m.DeletedAt,
		RefreshTokenHash:        m.RefreshTokenHash.String,
		RefreshTokenExpiryTime:  fromNullTime(m.RefreshTokenExpiryTime),
		PasswordResetTokenHash:  m.PasswordResetTokenHash.String,
		PasswordResetExpiryTime: fromNullTime(m.PasswordResetExpiryTime),
	}
}

// ToDomainUserSlice converts a slice of model Users to domain Users.
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func fromNullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
