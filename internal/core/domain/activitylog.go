package domain

import "time"

// EntityType identifies the kind of record an activity entry refers to.
type EntityType string

const (
	EntityUser           EntityType = "USER"
	EntityDocument       EntityType = "DOCUMENT"
	EntityAction         EntityType = "ACTION"
	EntityTask           EntityType = "TASK"
	EntityCorrespondance EntityType = "CORRESPONDANCE"
	EntityProcesVerbal   EntityType = "PROCES_VERBAL"
	EntityReport         EntityType = "REPORT"
	EntitySettings       EntityType = "SETTINGS"
)

// Activity action codes written by the services.
const (
	ActivityDocumentCreated       = "DOCUMENT_CREATED"
	ActivityDocumentUpdated       = "DOCUMENT_UPDATED"
	ActivityDocumentApproved      = "DOCUMENT_APPROVED"
	ActivityDocumentArchived      = "DOCUMENT_ARCHIVED"
	ActivityDocumentDeleted       = "DOCUMENT_DELETED"
	ActivityCorrespondanceCreated = "CORRESPONDANCE_CREATED"
	ActivityCorrespondanceUpdated = "CORRESPONDANCE_UPDATED"
	ActivityCorrespondanceDeleted = "CORRESPONDANCE_DELETED"
	ActivityProcesVerbalCreated   = "PROCES_VERBAL_CREATED"
	ActivityProcesVerbalUpdated   = "PROCES_VERBAL_UPDATED"
	ActivityActionCreated         = "ACTION_CREATED"
	ActivityActionUpdated         = "ACTION_UPDATED"
	ActivityActionCompleted       = "ACTION_COMPLETED"
	ActivityActionDeleted         = "ACTION_DELETED"
	ActivityUserLogin             = "USER_LOGIN"
	ActivityUserLogout            = "USER_LOGOUT"
	ActivitySettingsUpdated       = "SETTINGS_UPDATED"
)

// ActivityLog is one immutable audit record. Entries are only ever appended;
// nothing in the application mutates or deletes them.
type ActivityLog struct {
	LogID      string     `json:"logID"` // Primary Key (UUID)
	Action     string     `json:"action"`
	Details    string     `json:"details,omitempty"`
	EntityType EntityType `json:"entityType"`
	EntityID   string     `json:"entityID"`
	UserID     string     `json:"userID"`
	Timestamp  time.Time  `json:"timestamp"`
	IPAddress  string     `json:"ipAddress,omitempty"`
	UserAgent  string     `json:"userAgent,omitempty"`
}

// ActivityLogFilter narrows audit listings. Zero values mean "no filter".
type ActivityLogFilter struct {
	UserID     string
	EntityType EntityType
	EntityID   string
	Action     string
}
