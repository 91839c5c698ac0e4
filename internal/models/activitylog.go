package models

import "time"

// ActivityLog is the database shape of one audit entry. The table is
// insert-only; there are no update paths.
type ActivityLog struct {
	LogID      string    `json:"logID" db:"log_id"`
	Action     string    `json:"action" db:"action"`
	Details    string    `json:"details" db:"details"`
	EntityType string    `json:"entityType" db:"entity_type"`
	EntityID   string    `json:"entityID" db:"entity_id"`
	UserID     string    `json:"userID" db:"user_id"`
	Timestamp  time.Time `json:"timestamp" db:"timestamp"`
	IPAddress  string    `json:"ipAddress" db:"ip_address"`
	UserAgent  string    `json:"userAgent" db:"user_agent"`
}
