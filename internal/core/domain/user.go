package domain

import "time"

// UserRole defines the application-wide role of a user.
type UserRole string

const (
	RoleSuperAdmin       UserRole = "SUPER_ADMIN"
	RoleAdministrator    UserRole = "ADMINISTRATOR"
	RoleApprover         UserRole = "APPROVER"
	RoleUser             UserRole = "USER"
	RoleVisitor          UserRole = "VISITOR"
	RoleAgentBureauOrdre UserRole = "AGENT_BUREAU_ORDRE"
)

// IsValid reports whether r is one of the known roles.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdministrator, RoleApprover, RoleUser, RoleVisitor, RoleAgentBureauOrdre:
		return true
	}
	return false
}

// CanApprove reports whether the role may approve documents.
func (r UserRole) CanApprove() bool {
	switch r {
	case RoleSuperAdmin, RoleAdministrator, RoleApprover:
		return true
	}
	return false
}

// IsAdmin reports whether the role carries administrative privileges.
func (r UserRole) IsAdmin() bool {
	return r == RoleSuperAdmin || r == RoleAdministrator
}

// User represents an AeroDoc user in the domain.
type User struct {
	UserID                string   `json:"userID"` // Primary Key (UUID)
	Email                 string   `json:"email"`  // Unique login identifier
	FirstName             string   `json:"firstName"`
	LastName              string   `json:"lastName"`
	PasswordHash          string   `json:"-"`
	Role                  UserRole `json:"role"`
	Airport               string   `json:"airport"` // Organizational scope, e.g. "ENF"
	IsActive              bool     `json:"isActive"`
	SessionTimeoutMinutes int      `json:"sessionTimeoutMinutes"`
	Department            string   `json:"department,omitempty"`
	Position              string   `json:"position,omitempty"`
	Phone                 string   `json:"phone,omitempty"`
	ProfilePhoto          string   `json:"profilePhoto,omitempty"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete

	// Refresh token fields (hash stored, never the raw token)
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`

	// Password reset fields
	PasswordResetTokenHash  string     `json:"-"`
	PasswordResetExpiryTime *time.Time `json:"-"`
}

// GoogleUserInfo holds the profile returned by Google's userinfo endpoint.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
}
