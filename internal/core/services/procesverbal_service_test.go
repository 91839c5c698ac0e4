package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/aerodoc/backend/internal/apperrors"
	"github.com/aerodoc/backend/internal/core/domain"
	portssvc "github.com/aerodoc/backend/internal/core/ports/services"
	"github.com/aerodoc/backend/internal/core/services"
	"github.com/aerodoc/backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ProcesVerbalServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockProcesVerbalRepository
	mockDocSvc   *MockDocumentWriterSvc
	mockActivity *MockActivityRecorder
	service      portssvc.ProcesVerbalSvcFacade
}

func (suite *ProcesVerbalServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockProcesVerbalRepository)
	suite.mockDocSvc = new(MockDocumentWriterSvc)
	suite.mockActivity = new(MockActivityRecorder)
	suite.service = services.NewProcesVerbalService(suite.mockRepo, suite.mockDocSvc, suite.mockActivity)
}

// --- Test Cases ---

func (suite *ProcesVerbalServiceTestSuite) TestCreateProcesVerbal_CreatesBackingDocument() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	req := dto.CreateProcesVerbalRequest{
		Title:        "Reunion surete mensuelle",
		Airport:      "ENF",
		MeetingDate:  time.Date(2026, 5, 12, 9, 0, 0, 0, time.UTC),
		Participants: []string{uuid.NewString(), uuid.NewString()},
		Agenda:       "Revue des incidents du mois",
		Segments:     testSegmentsRequest(),
	}
	backingDoc := &domain.Document{DocumentID: uuid.NewString(), Title: req.Title}

	suite.mockDocSvc.On("CreateDocument", ctx, mock.MatchedBy(func(d dto.CreateDocumentRequest) bool {
		return d.Title == req.Title && d.Type == string(domain.DocTypeGeneral) && d.Content == req.Agenda
	}), creatorID).Return(backingDoc, nil).Once()
	suite.mockRepo.On("SaveProcesVerbal", ctx, mock.MatchedBy(func(pv domain.ProcesVerbal) bool {
		return pv.DocumentID == backingDoc.DocumentID &&
			len(pv.Participants) == 2 &&
			pv.AuthorID == creatorID
	})).Return(nil).Once()
	suite.mockActivity.On("Record", ctx, mock.MatchedBy(func(entry domain.ActivityLog) bool {
		return entry.Action == domain.ActivityProcesVerbalCreated && entry.EntityType == domain.EntityProcesVerbal
	})).Return().Once()

	pv, err := suite.service.CreateProcesVerbal(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(pv)
	suite.Equal(backingDoc.DocumentID, pv.DocumentID)
	suite.mockDocSvc.AssertExpectations(suite.T())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProcesVerbalServiceTestSuite) TestCreateProcesVerbal_DocumentFailureAborts() {
	ctx := context.Background()
	req := dto.CreateProcesVerbalRequest{
		Title:        "Reunion surete mensuelle",
		Airport:      "ENF",
		MeetingDate:  time.Now(),
		Participants: []string{uuid.NewString()},
		Agenda:       "Revue des incidents du mois",
		Segments:     testSegmentsRequest(),
	}

	suite.mockDocSvc.On("CreateDocument", ctx, mock.AnythingOfType("dto.CreateDocumentRequest"), mock.AnythingOfType("string")).Return(nil, assert.AnError).Once()

	pv, err := suite.service.CreateProcesVerbal(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(pv)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveProcesVerbal", mock.Anything, mock.Anything)
	suite.mockActivity.AssertNotCalled(suite.T(), "Record", mock.Anything, mock.Anything)
}

func (suite *ProcesVerbalServiceTestSuite) TestUpdateProcesVerbal_CannotEmptyParticipants() {
	ctx := context.Background()
	existing := &domain.ProcesVerbal{
		ProcesVerbalID: uuid.NewString(),
		Participants:   []string{uuid.NewString()},
	}
	empty := []string{}

	suite.mockRepo.On("FindProcesVerbalByID", ctx, existing.ProcesVerbalID).Return(existing, nil).Once()

	pv, err := suite.service.UpdateProcesVerbal(ctx, existing.ProcesVerbalID, dto.UpdateProcesVerbalRequest{Participants: &empty}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(pv)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateProcesVerbal", mock.Anything, mock.Anything)
}

func (suite *ProcesVerbalServiceTestSuite) TestUpdateProcesVerbal_Success() {
	ctx := context.Background()
	existing := &domain.ProcesVerbal{
		ProcesVerbalID: uuid.NewString(),
		Participants:   []string{uuid.NewString()},
		Decisions:      "",
	}
	decisions := "Renouvellement du parc extincteurs valide"

	suite.mockRepo.On("FindProcesVerbalByID", ctx, existing.ProcesVerbalID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateProcesVerbal", ctx, mock.MatchedBy(func(pv domain.ProcesVerbal) bool {
		return pv.Decisions == decisions
	})).Return(nil).Once()
	suite.mockActivity.On("Record", ctx, mock.MatchedBy(func(entry domain.ActivityLog) bool {
		return entry.Action == domain.ActivityProcesVerbalUpdated
	})).Return().Once()

	pv, err := suite.service.UpdateProcesVerbal(ctx, existing.ProcesVerbalID, dto.UpdateProcesVerbalRequest{Decisions: &decisions}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(decisions, pv.Decisions)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProcesVerbalServiceTestSuite) TestGetProcesVerbalByID_NotFound() {
	ctx := context.Background()
	id := uuid.NewString()

	suite.mockRepo.On("FindProcesVerbalByID", ctx, id).Return(nil, apperrors.ErrNotFound).Once()

	pv, err := suite.service.GetProcesVerbalByID(ctx, id)

	suite.Require().Error(err)
	suite.Nil(pv)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Run Suite ---
func TestProcesVerbalService(t *testing.T) {
	suite.Run(t, new(ProcesVerbalServiceTestSuite))
}
