package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aerodoc/backend/internal/apperrors"
	"github.com/aerodoc/backend/internal/core/domain"
	portsrepo "github.com/aerodoc/backend/internal/core/ports/repositories"
	portssvc "github.com/aerodoc/backend/internal/core/ports/services"
	"github.com/aerodoc/backend/internal/dto"
	"github.com/google/uuid"
)

type procesVerbalService struct {
	BaseService
	repo     portsrepo.ProcesVerbalRepositoryFacade
	docSvc   portssvc.DocumentWriterSvc
	activity portssvc.ActivityRecorderSvc
}

// NewProcesVerbalService creates the meeting-minutes service.
func NewProcesVerbalService(
	repo portsrepo.ProcesVerbalRepositoryFacade,
	docSvc portssvc.DocumentWriterSvc,
	activity portssvc.ActivityRecorderSvc,
) portssvc.ProcesVerbalSvcFacade {
	return &procesVerbalService{repo: repo, docSvc: docSvc, activity: activity}
}

// CreateProcesVerbal registers new minutes. The textual body lives in a
// backing document created through the registry; this record carries the
// structured meeting metadata.
func (s *procesVerbalService) CreateProcesVerbal(ctx context.Context, req dto.CreateProcesVerbalRequest, creatorUserID string) (*domain.ProcesVerbal, error) {
	doc, err := s.docSvc.CreateDocument(ctx, dto.CreateDocumentRequest{
		Title:    req.Title,
		Type:     string(domain.DocTypeGeneral),
		Content:  req.Agenda,
		Airport:  req.Airport,
		Segments: req.Segments,
	}, creatorUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to create backing document: %w", err)
	}

	now := time.Now()
	pv := domain.ProcesVerbal{
		ProcesVerbalID:  uuid.NewString(),
		DocumentID:      doc.DocumentID,
		MeetingDate:     req.MeetingDate,
		Participants:    req.Participants,
		Agenda:          req.Agenda,
		Decisions:       req.Decisions,
		Location:        req.Location,
		MeetingType:     req.MeetingType,
		NextMeetingDate: req.NextMeetingDate,
		DecidedActions:  req.DecidedActions,
		AuthorID:        creatorUserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.repo.SaveProcesVerbal(ctx, pv); err != nil {
		s.LogError(ctx, err, "Failed to save proces verbal", "proces_verbal_id", pv.ProcesVerbalID)
		return nil, err
	}

	s.activity.Record(ctx, domain.ActivityLog{
		Action:     domain.ActivityProcesVerbalCreated,
		Details:    fmt.Sprintf("Proces verbal %q registered", req.Title),
		EntityType: domain.EntityProcesVerbal,
		EntityID:   pv.ProcesVerbalID,
		UserID:     creatorUserID,
	})

	s.LogInfo(ctx, "Proces verbal created", "proces_verbal_id", pv.ProcesVerbalID, "document_id", doc.DocumentID)
	return &pv, nil
}

// UpdateProcesVerbal applies a partial update to existing minutes.
func (s *procesVerbalService) UpdateProcesVerbal(ctx context.Context, procesVerbalID string, req dto.UpdateProcesVerbalRequest, requestingUserID string) (*domain.ProcesVerbal, error) {
	pv, err := s.repo.FindProcesVerbalByID(ctx, procesVerbalID)
	if err != nil {
		return nil, err
	}

	if req.MeetingDate != nil {
		pv.MeetingDate = *req.MeetingDate
	}
	if req.Participants != nil {
		if len(*req.Participants) == 0 {
			return nil, fmt.Errorf("participants cannot be emptied: %w", apperrors.ErrValidation)
		}
		pv.Participants = *req.Participants
	}
	if req.Agenda != nil {
		pv.Agenda = *req.Agenda
	}
	if req.Decisions != nil {
		pv.Decisions = *req.Decisions
	}
	if req.Location != nil {
		pv.Location = *req.Location
	}
	if req.MeetingType != nil {
		pv.MeetingType = *req.MeetingType
	}
	if req.NextMeetingDate != nil {
		pv.NextMeetingDate = req.NextMeetingDate
	}
	if req.DecidedActions != nil {
		pv.DecidedActions = *req.DecidedActions
	}

	pv.LastUpdatedAt = time.Now()
	pv.LastUpdatedBy = requestingUserID

	if err := s.repo.UpdateProcesVerbal(ctx, *pv); err != nil {
		s.LogError(ctx, err, "Failed to update proces verbal", "proces_verbal_id", procesVerbalID)
		return nil, err
	}

	s.activity.Record(ctx, domain.ActivityLog{
		Action:     domain.ActivityProcesVerbalUpdated,
		Details:    "Proces verbal updated",
		EntityType: domain.EntityProcesVerbal,
		EntityID:   pv.ProcesVerbalID,
		UserID:     requestingUserID,
	})

	return pv, nil
}

// GetProcesVerbalByID retrieves a procès-verbal by ID.
func (s *procesVerbalService) GetProcesVerbalByID(ctx context.Context, procesVerbalID string) (*domain.ProcesVerbal, error) {
	pv, err := s.repo.FindProcesVerbalByID(ctx, procesVerbalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find proces verbal", "proces_verbal_id", procesVerbalID)
		}
		return nil, err
	}
	return pv, nil
}

// ListProcesVerbaux retrieves a page of procès-verbaux, newest first.
func (s *procesVerbalService) ListProcesVerbaux(ctx context.Context, limit int, pageToken string) ([]domain.ProcesVerbal, string, error) {
	if limit <= 0 {
		limit = 20
	}
	pvs, nextToken, err := s.repo.ListProcesVerbaux(ctx, limit, pageToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list proces verbaux")
		return nil, "", fmt.Errorf("failed to list proces verbaux: %w", err)
	}
	if pvs == nil {
		pvs = []domain.ProcesVerbal{}
	}
	return pvs, nextToken, nil
}
