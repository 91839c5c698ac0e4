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
	"github.com/google/uuid"
)

type correspondanceService struct {
	BaseService
	repo         portsrepo.CorrespondanceRepositoryFacade
	codification portssvc.CodeGeneratorSvc
	userSvc      portssvc.UserReaderSvc
	activity     portssvc.ActivityRecorderSvc
}

// NewCorrespondanceService creates the correspondence registry service.
func NewCorrespondanceService(
	repo portsrepo.CorrespondanceRepositoryFacade,
	codification portssvc.CodeGeneratorSvc,
	userSvc portssvc.UserReaderSvc,
	activity portssvc.ActivityRecorderSvc,
) portssvc.CorrespondanceSvcFacade {
	return &correspondanceService{
		repo:         repo,
		codification: codification,
		userSvc:      userSvc,
		activity:     activity,
	}
}

// CreateCorrespondance registers a new correspondence with a generated code
// and QR token.
func (s *correspondanceService) CreateCorrespondance(ctx context.Context, req dto.CreateCorrespondanceRequest, creatorUserID string) (*domain.Correspondance, error) {
	direction := domain.CorrespondanceDirection(req.Direction)
	if !direction.IsValid() {
		return nil, fmt.Errorf("unknown direction %q: %w", req.Direction, apperrors.ErrValidation)
	}

	priority := domain.PriorityMedium
	if req.Priority != "" {
		priority = domain.Priority(req.Priority)
	}

	segments := req.Segments.ToDomainSegments()
	code, seq, err := s.codification.GenerateCode(ctx, segments)
	if err != nil {
		return nil, err
	}
	segments.SequenceNumber = seq

	now := time.Now()
	corr := domain.Correspondance{
		CorrespondanceID: uuid.NewString(),
		QRCode:           uuid.NewString(),
		Direction:        direction,
		FromAddress:      req.FromAddress,
		ToAddress:        req.ToAddress,
		Subject:          req.Subject,
		Content:          req.Content,
		Priority:         priority,
		Status:           domain.StatusActive,
		Airport:          req.Airport,
		Code:             code,
		CodeSegments:     segments,
		Attachments:      req.Attachments,
		Tags:             req.Tags,
		AuthorID:         creatorUserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.repo.SaveCorrespondance(ctx, corr); err != nil {
		s.LogError(ctx, err, "Failed to save correspondence", "correspondance_id", corr.CorrespondanceID)
		return nil, err
	}

	s.activity.Record(ctx, domain.ActivityLog{
		Action:     domain.ActivityCorrespondanceCreated,
		Details:    fmt.Sprintf("Correspondence %q registered with code %s", corr.Subject, corr.Code),
		EntityType: domain.EntityCorrespondance,
		EntityID:   corr.CorrespondanceID,
		UserID:     creatorUserID,
	})

	s.LogInfo(ctx, "Correspondence created", "correspondance_id", corr.CorrespondanceID, "code", corr.Code)
	return &corr, nil
}

// UpdateCorrespondance applies a partial update.
func (s *correspondanceService) UpdateCorrespondance(ctx context.Context, correspondanceID string, req dto.UpdateCorrespondanceRequest, requestingUserID string) (*domain.Correspondance, error) {
	corr, err := s.repo.FindCorrespondanceByID(ctx, correspondanceID)
	if err != nil {
		return nil, err
	}

	if req.Subject != nil {
		corr.Subject = *req.Subject
	}
	if req.Content != nil {
		corr.Content = *req.Content
	}
	if req.Priority != nil {
		corr.Priority = domain.Priority(*req.Priority)
	}
	if req.Status != nil {
		next := domain.DocumentStatus(*req.Status)
		if !corr.Status.CanTransitionTo(next) {
			return nil, fmt.Errorf("status transition %s -> %s not allowed: %w", corr.Status, next, apperrors.ErrValidation)
		}
		corr.Status = next
	}
	if req.Attachments != nil {
		corr.Attachments = *req.Attachments
	}
	if req.Tags != nil {
		corr.Tags = *req.Tags
	}
	if req.DecidedActions != nil {
		corr.DecidedActions = *req.DecidedActions
	}

	corr.LastUpdatedAt = time.Now()
	corr.LastUpdatedBy = requestingUserID

	if err := s.repo.UpdateCorrespondance(ctx, *corr); err != nil {
		s.LogError(ctx, err, "Failed to update correspondence", "correspondance_id", correspondanceID)
		return nil, err
	}

	s.activity.Record(ctx, domain.ActivityLog{
		Action:     domain.ActivityCorrespondanceUpdated,
		Details:    fmt.Sprintf("Correspondence %q updated", corr.Subject),
		EntityType: domain.EntityCorrespondance,
		EntityID:   corr.CorrespondanceID,
		UserID:     requestingUserID,
	})

	return corr, nil
}

// DeleteCorrespondance removes a correspondence permanently. Admin only.
func (s *correspondanceService) DeleteCorrespondance(ctx context.Context, correspondanceID string, requestingUserID string) error {
	requester, err := s.userSvc.GetUserByID(ctx, requestingUserID)
	if err != nil {
		return fmt.Errorf("failed to load requesting user: %w", err)
	}
	if !requester.Role.IsAdmin() {
		return fmt.Errorf("only administrators may delete correspondences: %w", apperrors.ErrForbidden)
	}

	corr, err := s.repo.FindCorrespondanceByID(ctx, correspondanceID)
	if err != nil {
		return err
	}

	s.activity.Record(ctx, domain.ActivityLog{
		Action:     domain.ActivityCorrespondanceDeleted,
		Details:    fmt.Sprintf("Correspondence %q deleted", corr.Subject),
		EntityType: domain.EntityCorrespondance,
		EntityID:   corr.CorrespondanceID,
		UserID:     requestingUserID,
	})

	if err := s.repo.DeleteCorrespondance(ctx, correspondanceID); err != nil {
		s.LogError(ctx, err, "Failed to delete correspondence", "correspondance_id", correspondanceID)
		return err
	}

	s.LogInfo(ctx, "Correspondence deleted", "correspondance_id", correspondanceID)
	return nil
}

// GetCorrespondanceByID retrieves a correspondence by ID.
func (s *correspondanceService) GetCorrespondanceByID(ctx context.Context, correspondanceID string) (*domain.Correspondance, error) {
	corr, err := s.repo.FindCorrespondanceByID(ctx, correspondanceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find correspondence", "correspondance_id", correspondanceID)
		}
		return nil, err
	}
	return corr, nil
}

// ListCorrespondances retrieves a page of correspondences.
func (s *correspondanceService) ListCorrespondances(ctx context.Context, filter domain.CorrespondanceFilter, limit int, pageToken string) ([]domain.Correspondance, string, error) {
	if limit <= 0 {
		limit = 20
	}
	corrs, nextToken, err := s.repo.ListCorrespondances(ctx, filter, limit, pageToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list correspondences")
		return nil, "", fmt.Errorf("failed to list correspondences: %w", err)
	}
	if corrs == nil {
		corrs = []domain.Correspondance{}
	}
	return corrs, nextToken, nil
}
