package models

import (
	"database/sql"
	"time"
)

// User is the database shape of a user row.
type User struct {
	UserID                string `json:"userID"`
	Email                 string `json:"email" db:"email"`
	FirstName             string `json:"firstName" db:"first_name"`
	LastName              string `json:"lastName" db:"last_name"`
	PasswordHash          string `json:"-" db:"password_hash"`
	Role                  string `json:"role" db:"role"`
	Airport               string `json:"airport" db:"airport"`
	IsActive              bool   `json:"isActive" db:"is_active"`
	SessionTimeoutMinutes int    `json:"sessionTimeoutMinutes" db:"session_timeout_minutes"`
	Department            string `json:"department" db:"department"`
	Position              string `json:"position" db:"position"`
	Phone                 string `json:"phone" db:"phone"`
	ProfilePhoto          string `json:"profilePhoto" db:"profile_photo"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`

	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`

	PasswordResetTokenHash  sql.NullString `db:"password_reset_token_hash"`
	PasswordResetExpiryTime sql.NullTime   `db:"password_reset_expiry_time"`
}
