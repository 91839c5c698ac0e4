package dto

import (
	"time"

	"github.com/aerodoc/backend/internal/core/domain"
)

// CreateCorrespondanceRequest defines the data needed to register a correspondence.
type CreateCorrespondanceRequest struct {
	Direction   string              `json:"direction" binding:"required,oneof=INCOMING OUTGOING"`
	FromAddress string              `json:"fromAddress" binding:"required"`
	ToAddress   string              `json:"toAddress" binding:"required"`
	Subject     string              `json:"subject" binding:"required"`
	Content     string              `json:"content"`
	Priority    string              `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	Airport     string              `json:"airport" binding:"required"`
	Attachments []string            `json:"attachments"`
	Tags        []string            `json:"tags"`
	Segments    CodeSegmentsRequest `json:"segments" binding:"required"`
}

// UpdateCorrespondanceRequest defines the data allowed for updating a correspondence.
type UpdateCorrespondanceRequest struct {
	Subject        *string   `json:"subject"`
	Content        *string   `json:"content"`
	Priority       *string   `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	Status         *string   `json:"status" binding:"omitempty,oneof=DRAFT ACTIVE ARCHIVED"`
	Attachments    *[]string `json:"attachments"`
	Tags           *[]string `json:"tags"`
	DecidedActions *[]string `json:"decidedActions"`
}

// ListCorrespondancesParams defines query parameters for listing correspondences.
type ListCorrespondancesParams struct {
	Direction string `form:"direction" binding:"omitempty,oneof=INCOMING OUTGOING"`
	Status    string `form:"status" binding:"omitempty,oneof=DRAFT ACTIVE ARCHIVED"`
	Priority  string `form:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	Airport   string `form:"airport"`
	Search    string `form:"search"`
	Limit     int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	PageToken string `form:"pageToken"`
}

// CorrespondanceResponse defines the data returned for a correspondence.
type CorrespondanceResponse struct {
	CorrespondanceID string    `json:"correspondanceID"`
	QRCode           string    `json:"qrCode"`
	Direction        string    `json:"direction"`
	FromAddress      string    `json:"fromAddress"`
	ToAddress        string    `json:"toAddress"`
	Subject          string    `json:"subject"`
	Content          string    `json:"content,omitempty"`
	Priority         string    `json:"priority"`
	Status           string    `json:"status"`
	Airport          string    `json:"airport"`
	Code             string    `json:"code"`
	Attachments      []string  `json:"attachments,omitempty"`
	Tags             []string  `json:"tags,omitempty"`
	DecidedActions   []string  `json:"decidedActions,omitempty"`
	AuthorID         string    `json:"authorID"`
	CreatedAt        time.Time `json:"createdAt"`
	LastUpdatedAt    time.Time `json:"lastUpdatedAt"`
}

// ListCorrespondancesResponse wraps a page of correspondences.
type ListCorrespondancesResponse struct {
	Correspondances []CorrespondanceResponse `json:"correspondances"`
	NextPageToken   string                   `json:"nextPageToken,omitempty"`
}

// ToCorrespondanceResponse converts a domain.Correspondance to its response DTO.
func ToCorrespondanceResponse(c *domain.Correspondance) CorrespondanceResponse {
	return CorrespondanceResponse{
		CorrespondanceID: c.CorrespondanceID,
		QRCode:           c.QRCode,
		Direction:        string(c.Direction),
		FromAddress:      c.FromAddress,
		ToAddress:        c.ToAddress,
		Subject:          c.Subject,
		Content:          c.Content,
		Priority:         string(c.Priority),
		Status:           string(c.Status),
		Airport:          c.Airport,
		Code:             c.Code,
		Attachments:      c.Attachments,
		Tags:             c.Tags,
		DecidedActions:   c.DecidedActions,
		AuthorID:         c.AuthorID,
		CreatedAt:        c.CreatedAt,
		LastUpdatedAt:    c.LastUpdatedAt,
	}
}

// ToListCorrespondancesResponse converts a page of domain correspondences.
func ToListCorrespondancesResponse(cs []domain.Correspondance, nextToken string) ListCorrespondancesResponse {
	res := make([]CorrespondanceResponse, len(cs))
	for i, c := range cs {
		res[i] = ToCorrespondanceResponse(&c)
	}
	return ListCorrespondancesResponse{Correspondances: res, NextPageToken: nextToken}
}
