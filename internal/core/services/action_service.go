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

type actionService struct {
	BaseService
	repo     portsrepo.ActionRepositoryFacade
	userSvc  portssvc.UserReaderSvc
	activity portssvc.ActivityRecorderSvc
}

// NewActionService creates the action tracker service.
func NewActionService(repo portsrepo.ActionRepositoryFacade, userSvc portssvc.UserReaderSvc, activity portssvc.ActivityRecorderSvc) portssvc.ActionSvcFacade {
	return &actionService{repo: repo, userSvc: userSvc, activity: activity}
}

// CreateAction registers a new action in PENDING status with progress 0.
func (s *actionService) CreateAction(ctx context.Context, req dto.CreateActionRequest, creatorUserID string) (*domain.Action, error) {
	if len(req.AssignedTo) == 0 {
		return nil, fmt.Errorf("assigned_to cannot be empty: %w", apperrors.ErrValidation)
	}
	if req.DueDate.IsZero() {
		return nil, fmt.Errorf("due_date is required: %w", apperrors.ErrValidation)
	}

	priority := domain.PriorityMedium
	if req.Priority != "" {
		priority = domain.Priority(req.Priority)
	}

	now := time.Now()
	action := domain.Action{
		ActionID:         uuid.NewString(),
		Title:            req.Title,
		Description:      req.Description,
		AssignedTo:       req.AssignedTo,
		DueDate:          req.DueDate,
		Status:           domain.ActionPending,
		Priority:         priority,
		Progress:         0,
		ParentDocumentID: req.ParentDocumentID,
		EstimatedHours:   req.EstimatedHours,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.repo.SaveAction(ctx, action); err != nil {
		s.LogError(ctx, err, "Failed to save action", "action_id", action.ActionID)
		return nil, err
	}

	s.activity.Record(ctx, domain.ActivityLog{
		Action:     domain.ActivityActionCreated,
		Details:    fmt.Sprintf("Action %q created", action.Title),
		EntityType: domain.EntityAction,
		EntityID:   action.ActionID,
		UserID:     creatorUserID,
	})

	s.LogInfo(ctx, "Action created", "action_id", action.ActionID)
	return &action, nil
}

// UpdateAction applies a partial update. A resulting COMPLETED status forces
// progress to 100 and emits ACTION_COMPLETED instead of ACTION_UPDATED.
func (s *actionService) UpdateAction(ctx context.Context, actionID string, req dto.UpdateActionRequest, requestingUserID string) (*domain.Action, error) {
	action, err := s.repo.FindActionByID(ctx, actionID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		action.Title = *req.Title
	}
	if req.Description != nil {
		action.Description = *req.Description
	}
	if req.AssignedTo != nil {
		if len(*req.AssignedTo) == 0 {
			return nil, fmt.Errorf("assigned_to cannot be emptied: %w", apperrors.ErrValidation)
		}
		action.AssignedTo = *req.AssignedTo
	}
	if req.DueDate != nil {
		action.DueDate = *req.DueDate
	}
	if req.Status != nil {
		next := domain.ActionStatus(*req.Status)
		if !next.IsValid() {
			return nil, fmt.Errorf("unknown action status %q: %w", *req.Status, apperrors.ErrValidation)
		}
		action.Status = next
	}
	if req.Priority != nil {
		action.Priority = domain.Priority(*req.Priority)
	}
	if req.Progress != nil {
		action.Progress = *req.Progress
	}
	if req.EstimatedHours != nil {
		action.EstimatedHours = req.EstimatedHours
	}
	if req.ActualHours != nil {
		action.ActualHours = req.ActualHours
	}

	if action.Status == domain.ActionCompleted {
		action.Progress = 100
	}

	action.LastUpdatedAt = time.Now()
	action.LastUpdatedBy = requestingUserID

	if err := s.repo.UpdateAction(ctx, *action); err != nil {
		s.LogError(ctx, err, "Failed to update action", "action_id", actionID)
		return nil, err
	}

	activityAction := domain.ActivityActionUpdated
	details := fmt.Sprintf("Action %q updated", action.Title)
	if action.Status == domain.ActionCompleted {
		activityAction = domain.ActivityActionCompleted
		details = fmt.Sprintf("Action %q completed", action.Title)
	}
	s.activity.Record(ctx, domain.ActivityLog{
		Action:     activityAction,
		Details:    details,
		EntityType: domain.EntityAction,
		EntityID:   action.ActionID,
		UserID:     requestingUserID,
	})

	return action, nil
}

// DeleteAction removes an action permanently. Admin only.
func (s *actionService) DeleteAction(ctx context.Context, actionID string, requestingUserID string) error {
	requester, err := s.userSvc.GetUserByID(ctx, requestingUserID)
	if err != nil {
		return fmt.Errorf("failed to load requesting user: %w", err)
	}
	if !requester.Role.IsAdmin() {
		return fmt.Errorf("only administrators may delete actions: %w", apperrors.ErrForbidden)
	}

	action, err := s.repo.FindActionByID(ctx, actionID)
	if err != nil {
		return err
	}

	s.activity.Record(ctx, domain.ActivityLog{
		Action:     domain.ActivityActionDeleted,
		Details:    fmt.Sprintf("Action %q deleted", action.Title),
		EntityType: domain.EntityAction,
		EntityID:   action.ActionID,
		UserID:     requestingUserID,
	})

	if err := s.repo.DeleteAction(ctx, actionID); err != nil {
		s.LogError(ctx, err, "Failed to delete action", "action_id", actionID)
		return err
	}

	s.LogInfo(ctx, "Action deleted", "action_id", actionID)
	return nil
}

// GetActionByID retrieves an action by ID.
func (s *actionService) GetActionByID(ctx context.Context, actionID string) (*domain.Action, error) {
	action, err := s.repo.FindActionByID(ctx, actionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find action", "action_id", actionID)
		}
		return nil, err
	}
	return action, nil
}

// ListActions retrieves a page of actions, newest first.
func (s *actionService) ListActions(ctx context.Context, filter domain.ActionFilter, limit int, pageToken string) ([]domain.Action, string, error) {
	if limit <= 0 {
		limit = 20
	}
	actions, nextToken, err := s.repo.ListActions(ctx, filter, limit, pageToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list actions")
		return nil, "", fmt.Errorf("failed to list actions: %w", err)
	}
	if actions == nil {
		actions = []domain.Action{}
	}
	return actions, nextToken, nil
}
