package dto

import (
	"time"

	"github.com/aerodoc/backend/internal/core/domain"
)

// ListActivityLogsParams defines query parameters for listing audit entries.
type ListActivityLogsParams struct {
	UserID     string `form:"userId"`
	EntityType string `form:"entityType"`
	EntityID   string `form:"entityId"`
	Action     string `form:"action"`
	Limit      int    `form:"limit,default=50" binding:"omitempty,min=1,max=200"`
	PageToken  string `form:"pageToken"`
}

// ActivityLogResponse defines the data returned for one audit entry.
type ActivityLogResponse struct {
	LogID      string    `json:"logID"`
	Action     string    `json:"action"`
	Details    string    `json:"details,omitempty"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityID"`
	UserID     string    `json:"userID"`
	Timestamp  time.Time `json:"timestamp"`
	IPAddress  string    `json:"ipAddress,omitempty"`
	UserAgent  string    `json:"userAgent,omitempty"`
}

// ListActivityLogsResponse wraps a page of audit entries.
type ListActivityLogsResponse struct {
	Logs          []ActivityLogResponse `json:"logs"`
	NextPageToken string                `json:"nextPageToken,omitempty"`
}

// ToActivityLogResponse converts a domain.ActivityLog to its response DTO.
func ToActivityLogResponse(l *domain.ActivityLog) ActivityLogResponse {
	return ActivityLogResponse{
		LogID:      l.LogID,
		Action:     l.Action,
		Details:    l.Details,
		EntityType: string(l.EntityType),
		EntityID:   l.EntityID,
		UserID:     l.UserID,
		Timestamp:  l.Timestamp,
		IPAddress:  l.IPAddress,
		UserAgent:  l.UserAgent,
	}
}

// ToListActivityLogsResponse converts a page of domain audit entries.
func ToListActivityLogsResponse(logs []domain.ActivityLog, nextToken string) ListActivityLogsResponse {
	res := make([]ActivityLogResponse, len(logs))
	for i, l := range logs {
		res[i] = ToActivityLogResponse(&l)
	}
	return ListActivityLogsResponse{Logs: res, NextPageToken: nextToken}
}
