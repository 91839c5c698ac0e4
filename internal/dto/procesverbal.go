package dto

import (
	"time"

	"github.com/aerodoc/backend/internal/core/domain"
)

// CreateProcesVerbalRequest registers meeting minutes. A backing document is
// created through the document registry with the given title and segments.
type CreateProcesVerbalRequest struct {
	Title           string              `json:"title" binding:"required"`
	Airport         string              `json:"airport" binding:"required"`
	MeetingDate     time.Time           `json:"meetingDate" binding:"required"`
	Participants    []string            `json:"participants" binding:"required,min=1"`
	Agenda          string              `json:"agenda" binding:"required"`
	Decisions       string              `json:"decisions"`
	Location        string              `json:"location"`
	MeetingType     string              `json:"meetingType"`
	NextMeetingDate *time.Time          `json:"nextMeetingDate"`
	DecidedActions  []string            `json:"decidedActions"`
	Segments        CodeSegmentsRequest `json:"segments" binding:"required"`
}

// UpdateProcesVerbalRequest defines the data allowed for updating minutes.
type UpdateProcesVerbalRequest struct {
	MeetingDate     *time.Time `json:"meetingDate"`
	Participants    *[]string  `json:"participants"`
	Agenda          *string    `json:"agenda"`
	Decisions       *string    `json:"decisions"`
	Location        *string    `json:"location"`
	MeetingType     *string    `json:"meetingType"`
	NextMeetingDate *time.Time `json:"nextMeetingDate"`
	DecidedActions  *[]string  `json:"decidedActions"`
}

// ListProcesVerbauxParams defines query parameters for listing minutes.
type ListProcesVerbauxParams struct {
	Limit     int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	PageToken string `form:"pageToken"`
}

// ProcesVerbalResponse defines the data returned for meeting minutes.
type ProcesVerbalResponse struct {
	ProcesVerbalID  string     `json:"procesVerbalID"`
	DocumentID      string     `json:"documentID"`
	MeetingDate     time.Time  `json:"meetingDate"`
	Participants    []string   `json:"participants"`
	Agenda          string     `json:"agenda"`
	Decisions       string     `json:"decisions,omitempty"`
	Location        string     `json:"location,omitempty"`
	MeetingType     string     `json:"meetingType,omitempty"`
	NextMeetingDate *time.Time `json:"nextMeetingDate,omitempty"`
	DecidedActions  []string   `json:"decidedActions,omitempty"`
	AuthorID        string     `json:"authorID"`
	CreatedAt       time.Time  `json:"createdAt"`
	LastUpdatedAt   time.Time  `json:"lastUpdatedAt"`
}

// ListProcesVerbauxResponse wraps a page of meeting minutes.
type ListProcesVerbauxResponse struct {
	ProcesVerbaux []ProcesVerbalResponse `json:"procesVerbaux"`
	NextPageToken string                 `json:"nextPageToken,omitempty"`
}

// ToProcesVerbalResponse converts a domain.ProcesVerbal to its response DTO.
func ToProcesVerbalResponse(pv *domain.ProcesVerbal) ProcesVerbalResponse {
	return ProcesVerbalResponse{
		ProcesVerbalID:  pv.ProcesVerbalID,
		DocumentID:      pv.DocumentID,
		MeetingDate:     pv.MeetingDate,
		Participants:    pv.Participants,
		Agenda:          pv.Agenda,
		Decisions:       pv.Decisions,
		Location:        pv.Location,
		MeetingType:     pv.MeetingType,
		NextMeetingDate: pv.NextMeetingDate,
		DecidedActions:  pv.DecidedActions,
		AuthorID:        pv.AuthorID,
		CreatedAt:       pv.CreatedAt,
		LastUpdatedAt:   pv.LastUpdatedAt,
	}
}

// ToListProcesVerbauxResponse converts a page of domain minutes.
func ToListProcesVerbauxResponse(pvs []domain.ProcesVerbal, nextToken string) ListProcesVerbauxResponse {
	res := make([]ProcesVerbalResponse, len(pvs))
	for i, pv := range pvs {
		res[i] = ToProcesVerbalResponse(&pv)
	}
	return ListProcesVerbauxResponse{ProcesVerbaux: res, NextPageToken: nextToken}
}
