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
	"github.com/aerodoc/backend/internal/utils"
	"github.com/google/uuid"
)

const passwordResetTokenTTL = time.Hour

type userService struct {
	BaseService
	repo     portsrepo.UserRepositoryFacade
	activity portssvc.ActivityRecorderSvc
}

// NewUserService creates the user management and authentication service.
func NewUserService(repo portsrepo.UserRepositoryFacade, activity portssvc.ActivityRecorderSvc) portssvc.UserSvcFacade {
	return &userService{repo: repo, activity: activity}
}

// CreateUser registers a new user with a bcrypt password hash.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	role := domain.RoleUser
	if req.Role != "" {
		role = domain.UserRole(req.Role)
		if !role.IsValid() {
			return nil, fmt.Errorf("unknown role %q: %w", req.Role, apperrors.ErrValidation)
		}
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:                uuid.NewString(),
		Email:                 req.Email,
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		PasswordHash:          passwordHash,
		Role:                  role,
		Airport:               req.Airport,
		IsActive:              true,
		SessionTimeoutMinutes: 30,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.repo.SaveUser(ctx, user); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save user", "email", req.Email)
		}
		return nil, err
	}

	s.LogInfo(ctx, "User created", "user_id", user.UserID)
	return &user, nil
}

// UpdateUser applies a partial update. Role changes require an admin requester.
func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	user, err := s.repo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Role != nil || req.IsActive != nil || userID != requestingUserID {
		requester, err := s.repo.FindUserByID(ctx, requestingUserID)
		if err != nil {
			return nil, fmt.Errorf("failed to load requesting user: %w", err)
		}
		if !requester.Role.IsAdmin() {
			return nil, fmt.Errorf("only administrators may change other users: %w", apperrors.ErrForbidden)
		}
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Role != nil {
		role := domain.UserRole(*req.Role)
		if !role.IsValid() {
			return nil, fmt.Errorf("unknown role %q: %w", *req.Role, apperrors.ErrValidation)
		}
		user.Role = role
	}
	if req.Airport != nil {
		user.Airport = *req.Airport
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.SessionTimeoutMinutes != nil {
		user.SessionTimeoutMinutes = *req.SessionTimeoutMinutes
	}
	if req.Department != nil {
		user.Department = *req.Department
	}
	if req.Position != nil {
		user.Position = *req.Position
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.ProfilePhoto != nil {
		user.ProfilePhoto = *req.ProfilePhoto
	}

	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = requestingUserID

	if err := s.repo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", "user_id", userID)
		return nil, err
	}

	return user, nil
}

// DeleteUser marks a user as deleted (soft delete). Admin only.
func (s *userService) DeleteUser(ctx context.Context, userID string, requestingUserID string) error {
	requester, err := s.repo.FindUserByID(ctx, requestingUserID)
	if err != nil {
		return fmt.Errorf("failed to load requesting user: %w", err)
	}
	if !requester.Role.IsAdmin() {
		return fmt.Errorf("only administrators may delete users: %w", apperrors.ErrForbidden)
	}

	if err := s.repo.MarkUserDeleted(ctx, userID, time.Now(), requestingUserID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete user", "user_id", userID)
		}
		return err
	}

	s.LogInfo(ctx, "User deleted", "user_id", userID)
	return nil
}

// GetUserByID retrieves a user by ID.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user", "user_id", userID)
		}
		return nil, err
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email.
func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by email")
		}
		return nil, err
	}
	return user, nil
}

// ListUsers retrieves a paginated list of users.
func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	users, err := s.repo.FindUsers(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// AuthenticateUser verifies email and password. Inactive and deleted users
// are rejected the same way as bad credentials.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to load user for authentication: %w", err)
	}

	if !user.IsActive || user.DeletedAt != nil {
		return nil, apperrors.ErrUnauthorized
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	s.activity.Record(ctx, domain.ActivityLog{
		Action:     domain.ActivityUserLogin,
		Details:    "User logged in",
		EntityType: domain.EntityUser,
		EntityID:   user.UserID,
		UserID:     user.UserID,
	})

	return user, nil
}

// UpdateRefreshToken stores the hash and expiry of a user's refresh token.
func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	return s.repo.UpdateRefreshToken(ctx, userID, refreshTokenHash, &refreshTokenExpiryTime)
}

// ClearRefreshToken revokes a user's refresh token (logout).
func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	if err := s.repo.UpdateRefreshToken(ctx, userID, "", nil); err != nil {
		return err
	}

	s.activity.Record(ctx, domain.ActivityLog{
		Action:     domain.ActivityUserLogout,
		Details:    "User logged out",
		EntityType: domain.EntityUser,
		EntityID:   userID,
		UserID:     userID,
	})
	return nil
}

// RequestPasswordReset issues a reset token, storing only its hash. The raw
// token is returned to the caller for delivery; unknown emails succeed
// silently so the endpoint does not leak account existence.
func (s *userService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to load user for password reset: %w", err)
	}

	rawToken, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	expiry := time.Now().Add(passwordResetTokenTTL)

	if err := s.repo.UpdatePasswordResetToken(ctx, user.UserID, utils.HashToken(rawToken), &expiry); err != nil {
		s.LogError(ctx, err, "Failed to store password reset token", "user_id", user.UserID)
		return "", fmt.Errorf("failed to store password reset token: %w", err)
	}

	s.LogInfo(ctx, "Password reset token issued", "user_id", user.UserID)
	return rawToken, nil
}

// ResetPassword validates a reset token and replaces the user's password.
func (s *userService) ResetPassword(ctx context.Context, email, token, newPassword string) error {
	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrUnauthorized
		}
		return fmt.Errorf("failed to load user for password reset: %w", err)
	}

	if user.PasswordResetTokenHash == "" || user.PasswordResetExpiryTime == nil {
		return apperrors.ErrUnauthorized
	}
	if time.Now().After(*user.PasswordResetExpiryTime) {
		return apperrors.ErrUnauthorized
	}
	if !utils.CompareTokenHash(token, user.PasswordResetTokenHash) {
		return apperrors.ErrUnauthorized
	}

	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, user.UserID, passwordHash); err != nil {
		s.LogError(ctx, err, "Failed to update password", "user_id", user.UserID)
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.LogInfo(ctx, "Password reset completed", "user_id", user.UserID)
	return nil
}
