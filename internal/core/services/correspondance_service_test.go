package services_test

import (
	"context"
	"testing"

	"github.com/aerodoc/backend/internal/apperrors"
	"github.com/aerodoc/backend/internal/core/domain"
	portssvc "github.com/aerodoc/backend/internal/core/ports/services"
	"github.com/aerodoc/backend/internal/core/services"
	"github.com/aerodoc/backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type CorrespondanceServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockCorrespondanceRepository
	mockCodeGen  *MockCodeGenerator
	mockUserSvc  *MockUserReaderSvc
	mockActivity *MockActivityRecorder
	service      portssvc.CorrespondanceSvcFacade
}

func (suite *CorrespondanceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCorrespondanceRepository)
	suite.mockCodeGen = new(MockCodeGenerator)
	suite.mockUserSvc = new(MockUserReaderSvc)
	suite.mockActivity = new(MockActivityRecorder)
	suite.service = services.NewCorrespondanceService(suite.mockRepo, suite.mockCodeGen, suite.mockUserSvc, suite.mockActivity)
}

func testCorrespondance(status domain.DocumentStatus) *domain.Correspondance {
	return &domain.Correspondance{
		CorrespondanceID: uuid.NewString(),
		QRCode:           uuid.NewString(),
		Direction:        domain.DirectionIncoming,
		FromAddress:      "Prefecture de Nador",
		ToAddress:        "Aeroport Nador El Aroui",
		Subject:          "Convocation reunion surete",
		Priority:         domain.PriorityHigh,
		Status:           status,
		Airport:          "ENF",
		Code:             "ONDA-AER-DSP-COR-FR-0001",
		AuthorID:         uuid.NewString(),
	}
}

// --- Test Cases ---

func (suite *CorrespondanceServiceTestSuite) TestCreateCorrespondance_Success() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	req := dto.CreateCorrespondanceRequest{
		Direction:   "INCOMING",
		FromAddress: "Prefecture de Nador",
		ToAddress:   "Aeroport Nador El Aroui",
		Subject:     "Convocation reunion surete",
		Airport:     "ENF",
		Segments:    testSegmentsRequest(),
	}
	segments := req.Segments.ToDomainSegments()

	suite.mockCodeGen.On("GenerateCode", ctx, segments).Return("ONDA-AER-DSP-FOR-FR-0002", 2, nil).Once()
	suite.mockRepo.On("SaveCorrespondance", ctx, mock.MatchedBy(func(c domain.Correspondance) bool {
		return c.Subject == req.Subject &&
			c.Direction == domain.DirectionIncoming &&
			c.Status == domain.StatusActive &&
			c.Priority == domain.PriorityMedium &&
			c.SequenceNumber == 2 &&
			c.QRCode != "" &&
			c.AuthorID == creatorID
	})).Return(nil).Once()
	suite.mockActivity.On("Record", ctx, mock.MatchedBy(func(entry domain.ActivityLog) bool {
		return entry.Action == domain.ActivityCorrespondanceCreated && entry.EntityType == domain.EntityCorrespondance
	})).Return().Once()

	corr, err := suite.service.CreateCorrespondance(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(corr)
	suite.Equal(domain.StatusActive, corr.Status)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockActivity.AssertExpectations(suite.T())
}

func (suite *CorrespondanceServiceTestSuite) TestCreateCorrespondance_UnknownDirection() {
	ctx := context.Background()
	req := dto.CreateCorrespondanceRequest{
		Direction:   "SIDEWAYS",
		FromAddress: "a",
		ToAddress:   "b",
		Subject:     "s",
		Airport:     "ENF",
		Segments:    testSegmentsRequest(),
	}

	corr, err := suite.service.CreateCorrespondance(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(corr)
	suite.mockCodeGen.AssertNotCalled(suite.T(), "GenerateCode", mock.Anything, mock.Anything)
}

func (suite *CorrespondanceServiceTestSuite) TestUpdateCorrespondance_ArchivedIsTerminal() {
	ctx := context.Background()
	existing := testCorrespondance(domain.StatusArchived)
	backToActive := "ACTIVE"

	suite.mockRepo.On("FindCorrespondanceByID", ctx, existing.CorrespondanceID).Return(existing, nil).Once()

	corr, err := suite.service.UpdateCorrespondance(ctx, existing.CorrespondanceID, dto.UpdateCorrespondanceRequest{Status: &backToActive}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(corr)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateCorrespondance", mock.Anything, mock.Anything)
}

func (suite *CorrespondanceServiceTestSuite) TestUpdateCorrespondance_RecordsDecidedActions() {
	ctx := context.Background()
	existing := testCorrespondance(domain.StatusActive)
	decided := []string{uuid.NewString(), uuid.NewString()}

	suite.mockRepo.On("FindCorrespondanceByID", ctx, existing.CorrespondanceID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateCorrespondance", ctx, mock.MatchedBy(func(c domain.Correspondance) bool {
		return len(c.DecidedActions) == 2
	})).Return(nil).Once()
	suite.mockActivity.On("Record", ctx, mock.MatchedBy(func(entry domain.ActivityLog) bool {
		return entry.Action == domain.ActivityCorrespondanceUpdated
	})).Return().Once()

	corr, err := suite.service.UpdateCorrespondance(ctx, existing.CorrespondanceID, dto.UpdateCorrespondanceRequest{DecidedActions: &decided}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(decided, corr.DecidedActions)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CorrespondanceServiceTestSuite) TestDeleteCorrespondance_AdminOnly() {
	ctx := context.Background()
	requesterID := uuid.NewString()

	suite.mockUserSvc.On("GetUserByID", ctx, requesterID).Return(&domain.User{UserID: requesterID, Role: domain.RoleAgentBureauOrdre}, nil).Once()

	err := suite.service.DeleteCorrespondance(ctx, uuid.NewString(), requesterID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteCorrespondance", mock.Anything, mock.Anything)
}

func (suite *CorrespondanceServiceTestSuite) TestDeleteCorrespondance_Success() {
	ctx := context.Background()
	requesterID := uuid.NewString()
	existing := testCorrespondance(domain.StatusActive)

	suite.mockUserSvc.On("GetUserByID", ctx, requesterID).Return(&domain.User{UserID: requesterID, Role: domain.RoleAdministrator}, nil).Once()
	suite.mockRepo.On("FindCorrespondanceByID", ctx, existing.CorrespondanceID).Return(existing, nil).Once()
	suite.mockActivity.On("Record", ctx, mock.MatchedBy(func(entry domain.ActivityLog) bool {
		return entry.Action == domain.ActivityCorrespondanceDeleted && entry.EntityID == existing.CorrespondanceID
	})).Return().Once()
	suite.mockRepo.On("DeleteCorrespondance", ctx, existing.CorrespondanceID).Return(nil).Once()

	err := suite.service.DeleteCorrespondance(ctx, existing.CorrespondanceID, requesterID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CorrespondanceServiceTestSuite) TestListCorrespondances_DefaultLimit() {
	ctx := context.Background()
	filter := domain.CorrespondanceFilter{Direction: domain.DirectionOutgoing}

	suite.mockRepo.On("ListCorrespondances", ctx, filter, 20, "").Return([]domain.Correspondance{}, "", nil).Once()

	corrs, nextToken, err := suite.service.ListCorrespondances(ctx, filter, 0, "")

	suite.Require().NoError(err)
	suite.Empty(corrs)
	suite.NotNil(corrs)
	suite.Empty(nextToken)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestCorrespondanceService(t *testing.T) {
	suite.Run(t, new(CorrespondanceServiceTestSuite))
}
