package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Action is the database shape of an action row.
type Action struct {
	ActionID    string    `json:"actionID" db:"action_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	AssignedTo  []string  `json:"assignedTo" db:"assigned_to"`
	DueDate     time.Time `json:"dueDate" db:"due_date"`
	Status      string    `json:"status" db:"status"`
	Priority    string    `json:"priority" db:"priority"`
	Progress    int       `json:"progress" db:"progress"`

	ParentDocumentID *string `json:"parentDocumentID" db:"parent_document_id"`

	EstimatedHours decimal.NullDecimal `json:"estimatedHours" db:"estimated_hours"`
	ActualHours    decimal.NullDecimal `json:"actualHours" db:"actual_hours"`

	AuditFields
}
