package dto

import (
	"time"

	"github.com/aerodoc/backend/internal/core/domain"
)

// CreateUserRequest defines the data needed to register a new user.
type CreateUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Role      string `json:"role" binding:"omitempty,oneof=SUPER_ADMIN ADMINISTRATOR APPROVER USER VISITOR AGENT_BUREAU_ORDRE"`
	Airport   string `json:"airport" binding:"required"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Pointers differentiate omitted fields from zero values.
type UpdateUserRequest struct {
	FirstName             *string `json:"firstName"`
	LastName              *string `json:"lastName"`
	Role                  *string `json:"role" binding:"omitempty,oneof=SUPER_ADMIN ADMINISTRATOR APPROVER USER VISITOR AGENT_BUREAU_ORDRE"`
	Airport               *string `json:"airport"`
	IsActive              *bool   `json:"isActive"`
	SessionTimeoutMinutes *int    `json:"sessionTimeoutMinutes" binding:"omitempty,min=1,max=480"`
	Department            *string `json:"department"`
	Position              *string `json:"position"`
	Phone                 *string `json:"phone"`
	ProfilePhoto          *string `json:"profilePhoto"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID                string    `json:"userID"`
	Email                 string    `json:"email"`
	FirstName             string    `json:"firstName"`
	LastName              string    `json:"lastName"`
	Role                  string    `json:"role"`
	Airport               string    `json:"airport"`
	IsActive              bool      `json:"isActive"`
	SessionTimeoutMinutes int       `json:"sessionTimeoutMinutes"`
	Department            string    `json:"department,omitempty"`
	Position              string    `json:"position,omitempty"`
	Phone                 string    `json:"phone,omitempty"`
	ProfilePhoto          string    `json:"profilePhoto,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:                u.UserID,
		Email:                 u.Email,
		FirstName:             u.FirstName,
		LastName:              u.LastName,
		Role:                  string(u.Role),
		Airport:               u.Airport,
		IsActive:              u.IsActive,
		SessionTimeoutMinutes: u.SessionTimeoutMinutes,
		Department:            u.Department,
		Position:              u.Position,
		Phone:                 u.Phone,
		ProfilePhoto:          u.ProfilePhoto,
		CreatedAt:             u.CreatedAt,
	}
}

// ToListUserResponse converts a slice of domain.User to ListUsersResponse.
func ToListUserResponse(users []domain.User) ListUsersResponse {
	res := make([]UserResponse, len(users))
	for i, u := range users {
		res[i] = ToUserResponse(&u)
	}
	return ListUsersResponse{Users: res}
}
