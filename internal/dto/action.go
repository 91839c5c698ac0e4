package dto

import (
	"time"

	"github.com/aerodoc/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateActionRequest defines the data needed to create an action.
type CreateActionRequest struct {
	Title            string           `json:"title" binding:"required"`
	Description      string           `json:"description"`
	AssignedTo       []string         `json:"assignedTo" binding:"required,min=1"`
	DueDate          time.Time        `json:"dueDate" binding:"required"`
	Priority         string           `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	ParentDocumentID *string          `json:"parentDocumentID"`
	EstimatedHours   *decimal.Decimal `json:"estimatedHours"`
}

// UpdateActionRequest defines the data allowed for updating an action.
type UpdateActionRequest struct {
	Title          *string          `json:"title"`
	Description    *string          `json:"description"`
	AssignedTo     *[]string        `json:"assignedTo" binding:"omitempty,min=1"`
	DueDate        *time.Time       `json:"dueDate"`
	Status         *string          `json:"status" binding:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED CANCELLED"`
	Priority       *string          `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	Progress       *int             `json:"progress" binding:"omitempty,min=0,max=100"`
	EstimatedHours *decimal.Decimal `json:"estimatedHours"`
	ActualHours    *decimal.Decimal `json:"actualHours"`
}

// ListActionsParams defines query parameters for listing actions.
type ListActionsParams struct {
	AssigneeID       string `form:"assigneeId"`
	Status           string `form:"status" binding:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED CANCELLED"`
	Priority         string `form:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	ParentDocumentID string `form:"parentDocumentId"`
	Limit            int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	PageToken        string `form:"pageToken"`
}

// ActionResponse defines the data returned for an action.
type ActionResponse struct {
	ActionID         string           `json:"actionID"`
	Title            string           `json:"title"`
	Description      string           `json:"description,omitempty"`
	AssignedTo       []string         `json:"assignedTo"`
	DueDate          time.Time        `json:"dueDate"`
	Status           string           `json:"status"`
	Priority         string           `json:"priority"`
	Progress         int              `json:"progress"`
	ParentDocumentID *string          `json:"parentDocumentID,omitempty"`
	EstimatedHours   *decimal.Decimal `json:"estimatedHours,omitempty"`
	ActualHours      *decimal.Decimal `json:"actualHours,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	LastUpdatedAt    time.Time        `json:"lastUpdatedAt"`
}

// ListActionsResponse wraps a page of actions.
type ListActionsResponse struct {
	Actions       []ActionResponse `json:"actions"`
	NextPageToken string           `json:"nextPageToken,omitempty"`
}

// ToActionResponse converts a domain.Action to its response DTO.
func ToActionResponse(a *domain.Action) ActionResponse {
	return ActionResponse{
		ActionID:         a.ActionID,
		Title:            a.Title,
		Description:      a.Description,
		AssignedTo:       a.AssignedTo,
		DueDate:          a.DueDate,
		Status:           string(a.Status),
		Priority:         string(a.Priority),
		Progress:         a.Progress,
		ParentDocumentID: a.ParentDocumentID,
		EstimatedHours:   a.EstimatedHours,
		ActualHours:      a.ActualHours,
		CreatedAt:        a.CreatedAt,
		LastUpdatedAt:    a.LastUpdatedAt,
	}
}

// ToListActionsResponse converts a page of domain actions.
func ToListActionsResponse(actions []domain.Action, nextToken string) ListActionsResponse {
	res := make([]ActionResponse, len(actions))
	for i, a := range actions {
		res[i] = ToActionResponse(&a)
	}
	return ListActionsResponse{Actions: res, NextPageToken: nextToken}
}
