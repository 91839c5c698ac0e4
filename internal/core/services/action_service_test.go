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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ActionServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockActionRepository
	mockUserSvc  *MockUserReaderSvc
	mockActivity *MockActivityRecorder
	service      portssvc.ActionSvcFacade
}

func (suite *ActionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockActionRepository)
	suite.mockUserSvc = new(MockUserReaderSvc)
	suite.mockActivity = new(MockActivityRecorder)
	suite.service = services.NewActionService(suite.mockRepo, suite.mockUserSvc, suite.mockActivity)
}

func testAction(status domain.ActionStatus) *domain.Action {
	return &domain.Action{
		ActionID:   uuid.NewString(),
		Title:      "Verifier les extincteurs",
		AssignedTo: []string{uuid.NewString()},
		DueDate:    time.Now().Add(72 * time.Hour),
		Status:     status,
		Priority:   domain.PriorityMedium,
		Progress:   25,
	}
}

// --- Test Cases ---

func (suite *ActionServiceTestSuite) TestCreateAction_Success() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	req := dto.CreateActionRequest{
		Title:      "Verifier les extincteurs",
		AssignedTo: []string{uuid.NewString()},
		DueDate:    time.Now().Add(72 * time.Hour),
	}

	suite.mockRepo.On("SaveAction", ctx, mock.MatchedBy(func(a domain.Action) bool {
		return a.Title == req.Title &&
			a.Status == domain.ActionPending &&
			a.Priority == domain.PriorityMedium &&
			a.Progress == 0 &&
			a.CreatedBy == creatorID
	})).Return(nil).Once()
	suite.mockActivity.On("Record", ctx, mock.MatchedBy(func(entry domain.ActivityLog) bool {
		return entry.Action == domain.ActivityActionCreated && entry.EntityType == domain.EntityAction
	})).Return().Once()

	action, err := suite.service.CreateAction(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(action)
	suite.Equal(domain.ActionPending, action.Status)
	suite.Equal(0, action.Progress)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockActivity.AssertExpectations(suite.T())
}

func (suite *ActionServiceTestSuite) TestCreateAction_EmptyAssignees() {
	ctx := context.Background()
	req := dto.CreateActionRequest{
		Title:   "Verifier les extincteurs",
		DueDate: time.Now().Add(72 * time.Hour),
	}

	action, err := suite.service.CreateAction(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(action)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAction", mock.Anything, mock.Anything)
}

func (suite *ActionServiceTestSuite) TestCreateAction_MissingDueDate() {
	ctx := context.Background()
	req := dto.CreateActionRequest{
		Title:      "Verifier les extincteurs",
		AssignedTo: []string{uuid.NewString()},
	}

	action, err := suite.service.CreateAction(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(action)
}

func (suite *ActionServiceTestSuite) TestUpdateAction_CompletionForcesFullProgress() {
	ctx := context.Background()
	existing := testAction(domain.ActionInProgress)
	completed := "COMPLETED"

	suite.mockRepo.On("FindActionByID", ctx, existing.ActionID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateAction", ctx, mock.MatchedBy(func(a domain.Action) bool {
		return a.Status == domain.ActionCompleted && a.Progress == 100
	})).Return(nil).Once()
	suite.mockActivity.On("Record", ctx, mock.MatchedBy(func(entry domain.ActivityLog) bool {
		return entry.Action == domain.ActivityActionCompleted
	})).Return().Once()

	action, err := suite.service.UpdateAction(ctx, existing.ActionID, dto.UpdateActionRequest{Status: &completed}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(100, action.Progress)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockActivity.AssertExpectations(suite.T())
}

func (suite *ActionServiceTestSuite) TestUpdateAction_UnknownStatus() {
	ctx := context.Background()
	existing := testAction(domain.ActionPending)
	bogus := "BOGUS"

	suite.mockRepo.On("FindActionByID", ctx, existing.ActionID).Return(existing, nil).Once()

	action, err := suite.service.UpdateAction(ctx, existing.ActionID, dto.UpdateActionRequest{Status: &bogus}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(action)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAction", mock.Anything, mock.Anything)
}

func (suite *ActionServiceTestSuite) TestUpdateAction_CannotEmptyAssignees() {
	ctx := context.Background()
	existing := testAction(domain.ActionPending)
	empty := []string{}

	suite.mockRepo.On("FindActionByID", ctx, existing.ActionID).Return(existing, nil).Once()

	action, err := suite.service.UpdateAction(ctx, existing.ActionID, dto.UpdateActionRequest{AssignedTo: &empty}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(action)
}

func (suite *ActionServiceTestSuite) TestUpdateAction_RegularUpdateEmitsUpdated() {
	ctx := context.Background()
	existing := testAction(domain.ActionInProgress)
	progress := 60

	suite.mockRepo.On("FindActionByID", ctx, existing.ActionID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateAction", ctx, mock.AnythingOfType("domain.Action")).Return(nil).Once()
	suite.mockActivity.On("Record", ctx, mock.MatchedBy(func(entry domain.ActivityLog) bool {
		return entry.Action == domain.ActivityActionUpdated
	})).Return().Once()

	action, err := suite.service.UpdateAction(ctx, existing.ActionID, dto.UpdateActionRequest{Progress: &progress}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(60, action.Progress)
	suite.mockActivity.AssertExpectations(suite.T())
}

func (suite *ActionServiceTestSuite) TestDeleteAction_AdminOnly() {
	ctx := context.Background()
	requesterID := uuid.NewString()

	suite.mockUserSvc.On("GetUserByID", ctx, requesterID).Return(&domain.User{UserID: requesterID, Role: domain.RoleUser}, nil).Once()

	err := suite.service.DeleteAction(ctx, uuid.NewString(), requesterID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteAction", mock.Anything, mock.Anything)
}

func (suite *ActionServiceTestSuite) TestDeleteAction_Success() {
	ctx := context.Background()
	requesterID := uuid.NewString()
	existing := testAction(domain.ActionCancelled)

	suite.mockUserSvc.On("GetUserByID", ctx, requesterID).Return(&domain.User{UserID: requesterID, Role: domain.RoleSuperAdmin}, nil).Once()
	suite.mockRepo.On("FindActionByID", ctx, existing.ActionID).Return(existing, nil).Once()
	suite.mockActivity.On("Record", ctx, mock.MatchedBy(func(entry domain.ActivityLog) bool {
		return entry.Action == domain.ActivityActionDeleted && entry.EntityID == existing.ActionID
	})).Return().Once()
	suite.mockRepo.On("DeleteAction", ctx, existing.ActionID).Return(nil).Once()

	err := suite.service.DeleteAction(ctx, existing.ActionID, requesterID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ActionServiceTestSuite) TestListActions_DefaultLimit() {
	ctx := context.Background()
	filter := domain.ActionFilter{Status: domain.ActionPending}

	suite.mockRepo.On("ListActions", ctx, filter, 20, "").Return([]domain.Action{}, "", nil).Once()

	actions, nextToken, err := suite.service.ListActions(ctx, filter, 0, "")

	suite.Require().NoError(err)
	suite.Empty(actions)
	suite.NotNil(actions)
	suite.Empty(nextToken)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestActionService(t *testing.T) {
	suite.Run(t, new(ActionServiceTestSuite))
}
