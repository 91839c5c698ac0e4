package domain

import "time"

// ProcesVerbal is a meeting-minutes record. Its textual body lives in the
// backing Document (1:1); this entity carries the structured meeting metadata.
type ProcesVerbal struct {
	ProcesVerbalID  string     `json:"procesVerbalID"` // Primary Key (UUID)
	DocumentID      string     `json:"documentID"`     // FK -> documents.document_id
	MeetingDate     time.Time  `json:"meetingDate"`
	Participants    []string   `json:"participants"` // User IDs
	Agenda          string     `json:"agenda"`
	Decisions       string     `json:"decisions,omitempty"`
	Location        string     `json:"location,omitempty"`
	MeetingType     string     `json:"meetingType,omitempty"`
	NextMeetingDate *time.Time `json:"nextMeetingDate,omitempty"`
	DecidedActions  []string   `json:"decidedActions,omitempty"`
	AuthorID        string     `json:"authorID"`
	AuditFields
}
