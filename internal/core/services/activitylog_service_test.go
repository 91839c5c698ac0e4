package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/aerodoc/backend/internal/core/domain"
	portssvc "github.com/aerodoc/backend/internal/core/ports/services"
	"github.com/aerodoc/backend/internal/core/services"
	"github.com/aerodoc/backend/internal/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ActivityLogServiceTestSuite struct {
	suite.Suite
	mockRepo *MockActivityLogRepository
	service  portssvc.ActivityLogSvcFacade
}

func (suite *ActivityLogServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockActivityLogRepository)
	suite.service = services.NewActivityLogService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *ActivityLogServiceTestSuite) TestRecord_FillsIdentityAndTimestamp() {
	ctx := context.Background()
	entry := domain.ActivityLog{
		Action:     domain.ActivityDocumentCreated,
		EntityType: domain.EntityDocument,
		EntityID:   uuid.NewString(),
		UserID:     uuid.NewString(),
	}

	suite.mockRepo.On("AppendActivityLog", ctx, mock.MatchedBy(func(e domain.ActivityLog) bool {
		return e.LogID != "" && !e.Timestamp.IsZero() && e.Action == entry.Action
	})).Return(nil).Once()

	suite.service.Record(ctx, entry)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ActivityLogServiceTestSuite) TestRecord_KeepsProvidedFields() {
	ctx := context.Background()
	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	entry := domain.ActivityLog{
		LogID:      uuid.NewString(),
		Action:     domain.ActivityUserLogin,
		EntityType: domain.EntityUser,
		EntityID:   uuid.NewString(),
		UserID:     uuid.NewString(),
		Timestamp:  ts,
	}

	suite.mockRepo.On("AppendActivityLog", ctx, mock.MatchedBy(func(e domain.ActivityLog) bool {
		return e.LogID == entry.LogID && e.Timestamp.Equal(ts)
	})).Return(nil).Once()

	suite.service.Record(ctx, entry)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ActivityLogServiceTestSuite) TestRecord_AttachesRequestMeta() {
	meta := middleware.RequestMeta{IPAddress: "10.0.0.7", UserAgent: "curl/8.0"}
	ctx := middleware.WithRequestMeta(context.Background(), meta)
	entry := domain.ActivityLog{
		Action:     domain.ActivityUserLogout,
		EntityType: domain.EntityUser,
		EntityID:   uuid.NewString(),
		UserID:     uuid.NewString(),
	}

	suite.mockRepo.On("AppendActivityLog", ctx, mock.MatchedBy(func(e domain.ActivityLog) bool {
		return e.IPAddress == meta.IPAddress && e.UserAgent == meta.UserAgent
	})).Return(nil).Once()

	suite.service.Record(ctx, entry)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ActivityLogServiceTestSuite) TestRecord_RepoFailureIsSwallowed() {
	ctx := context.Background()
	entry := domain.ActivityLog{
		Action:     domain.ActivityActionCreated,
		EntityType: domain.EntityAction,
		EntityID:   uuid.NewString(),
		UserID:     uuid.NewString(),
	}

	suite.mockRepo.On("AppendActivityLog", ctx, mock.AnythingOfType("domain.ActivityLog")).Return(assert.AnError).Once()

	suite.NotPanics(func() {
		suite.service.Record(ctx, entry)
	})
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ActivityLogServiceTestSuite) TestListActivityLogs_DefaultLimit() {
	ctx := context.Background()
	filter := domain.ActivityLogFilter{EntityType: domain.EntityDocument}

	suite.mockRepo.On("ListActivityLogs", ctx, filter, 50, "").Return([]domain.ActivityLog{}, "", nil).Once()

	logs, nextToken, err := suite.service.ListActivityLogs(ctx, filter, 0, "")

	suite.Require().NoError(err)
	suite.Empty(logs)
	suite.NotNil(logs)
	suite.Empty(nextToken)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ActivityLogServiceTestSuite) TestListActivityLogs_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("ListActivityLogs", ctx, domain.ActivityLogFilter{}, 50, "").Return(nil, "", expectedErr).Once()

	logs, _, err := suite.service.ListActivityLogs(ctx, domain.ActivityLogFilter{}, 0, "")

	suite.Require().Error(err)
	suite.Nil(logs)
	suite.ErrorIs(err, expectedErr)
}

// --- Run Suite ---
func TestActivityLogService(t *testing.T) {
	suite.Run(t, new(ActivityLogServiceTestSuite))
}
