package models

import (
	"database/sql"
	"time"
)

// ProcesVerbal is the database shape of a meeting-minutes row.
type ProcesVerbal struct {
	ProcesVerbalID  string       `json:"procesVerbalID" db:"proces_verbal_id"`
	DocumentID      string       `json:"documentID" db:"document_id"`
	MeetingDate     time.Time    `json:"meetingDate" db:"meeting_date"`
	Participants    []string     `json:"participants" db:"participants"`
	Agenda          string       `json:"agenda" db:"agenda"`
	Decisions       string       `json:"decisions" db:"decisions"`
	Location        string       `json:"location" db:"location"`
	MeetingType     string       `json:"meetingType" db:"meeting_type"`
	NextMeetingDate sql.NullTime `json:"nextMeetingDate" db:"next_meeting_date"`
	DecidedActions  []string     `json:"decidedActions" db:"decided_actions"`
	AuthorID        string       `json:"authorID" db:"author_id"`
	AuditFields
}
