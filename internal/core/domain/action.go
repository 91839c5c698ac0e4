package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActionStatus is the lifecycle state of an action item.
type ActionStatus string

const (
	ActionPending    ActionStatus = "PENDING"
	ActionInProgress ActionStatus = "IN_PROGRESS"
	ActionCompleted  ActionStatus = "COMPLETED"
	ActionCancelled  ActionStatus = "CANCELLED"
)

// IsValid reports whether s is a known action status.
func (s ActionStatus) IsValid() bool {
	switch s {
	case ActionPending, ActionInProgress, ActionCompleted, ActionCancelled:
		return true
	}
	return false
}

// Action is a tracked task, optionally linked to a parent document.
// Its lifecycle is independent from the document lifecycle.
type Action struct {
	ActionID    string       `json:"actionID"` // Primary Key (UUID)
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	AssignedTo  []string     `json:"assignedTo"` // User IDs, non-empty
	DueDate     time.Time    `json:"dueDate"`
	Status      ActionStatus `json:"status"`
	Priority    Priority     `json:"priority"`
	Progress    int          `json:"progress"` // 0-100

	ParentDocumentID *string `json:"parentDocumentID,omitempty"`

	EstimatedHours *decimal.Decimal `json:"estimatedHours,omitempty"`
	ActualHours    *decimal.Decimal `json:"actualHours,omitempty"`

	AuditFields
}

// ActionFilter narrows action listings. Zero values mean "no filter".
type ActionFilter struct {
	AssigneeID       string
	Status           ActionStatus
	Priority         Priority
	ParentDocumentID string
}
