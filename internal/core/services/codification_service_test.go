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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type CodificationServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockCodeConfigRepository
	mockUserSvc  *MockUserReaderSvc
	mockActivity *MockActivityRecorder
	service      portssvc.CodificationSvcFacade
}

func (suite *CodificationServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCodeConfigRepository)
	suite.mockUserSvc = new(MockUserReaderSvc)
	suite.mockActivity = new(MockActivityRecorder)
	suite.service = services.NewCodificationService(suite.mockRepo, suite.mockUserSvc, suite.mockActivity)
}

func testCodeConfig() *domain.DocumentCodeConfig {
	return &domain.DocumentCodeConfig{
		ConfigID:    uuid.NewString(),
		CompanyCode: "ONDA",
		Scopes:      []domain.CodeOption{{Code: "AER", Label: "Aeroport"}},
		DocumentTypes: []domain.CodeOption{
			{Code: "FOR", Label: "Formulaire"},
			{Code: "PV", Label: "Proces-verbal"},
		},
		Departments:    []domain.CodeOption{{Code: "DSP", Label: "Direction Securite"}},
		SubDepartments: []domain.CodeOption{{Code: "SSI", Label: "Securite Incendie"}},
		Languages:      []domain.CodeOption{{Code: "FR", Label: "Francais"}},
	}
}

func testSegments() domain.CodeSegments {
	return domain.CodeSegments{
		CompanyCode:      "ONDA",
		ScopeCode:        "AER",
		DepartmentCode:   "DSP",
		DocumentTypeCode: "FOR",
		LanguageCode:     "FR",
	}
}

// --- Test Cases ---

func (suite *CodificationServiceTestSuite) TestGenerateCode_Success() {
	ctx := context.Background()
	segments := testSegments()

	suite.mockRepo.On("GetActiveConfig", ctx).Return(testCodeConfig(), nil).Once()
	suite.mockRepo.On("AllocateSequence", ctx, segments).Return(7, nil).Once()

	code, seq, err := suite.service.GenerateCode(ctx, segments)

	suite.Require().NoError(err)
	suite.Equal("ONDA-AER-DSP-FOR-FR-0007", code)
	suite.Equal(7, seq)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CodificationServiceTestSuite) TestGenerateCode_WithSubDepartment() {
	ctx := context.Background()
	segments := testSegments()
	segments.SubDepartmentCode = "SSI"

	suite.mockRepo.On("GetActiveConfig", ctx).Return(testCodeConfig(), nil).Once()
	suite.mockRepo.On("AllocateSequence", ctx, segments).Return(12, nil).Once()

	code, seq, err := suite.service.GenerateCode(ctx, segments)

	suite.Require().NoError(err)
	suite.Equal("ONDA-AER-DSP-SSI-FOR-FR-0012", code)
	suite.Equal(12, seq)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CodificationServiceTestSuite) TestGenerateCode_UnknownDepartment() {
	ctx := context.Background()
	segments := testSegments()
	segments.DepartmentCode = "XXX"

	suite.mockRepo.On("GetActiveConfig", ctx).Return(testCodeConfig(), nil).Once()

	code, seq, err := suite.service.GenerateCode(ctx, segments)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Empty(code)
	suite.Zero(seq)
	suite.mockRepo.AssertNotCalled(suite.T(), "AllocateSequence", mock.Anything, mock.Anything)
}

func (suite *CodificationServiceTestSuite) TestGenerateCode_NoActiveConfig() {
	ctx := context.Background()

	suite.mockRepo.On("GetActiveConfig", ctx).Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.GenerateCode(ctx, testSegments())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "AllocateSequence", mock.Anything, mock.Anything)
}

func (suite *CodificationServiceTestSuite) TestPreviewCode_DoesNotAllocate() {
	ctx := context.Background()
	segments := testSegments()

	suite.mockRepo.On("GetActiveConfig", ctx).Return(testCodeConfig(), nil).Once()
	suite.mockRepo.On("PeekSequence", ctx, segments).Return(3, nil).Once()

	code, seq, err := suite.service.PreviewCode(ctx, segments)

	suite.Require().NoError(err)
	suite.Equal("ONDA-AER-DSP-FOR-FR-0003", code)
	suite.Equal(3, seq)
	suite.mockRepo.AssertNotCalled(suite.T(), "AllocateSequence", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CodificationServiceTestSuite) TestUpdateCodeConfig_Forbidden() {
	ctx := context.Background()
	requesterID := uuid.NewString()
	req := dto.UpdateCodeConfigRequest{CompanyCode: "ONDA"}

	suite.mockUserSvc.On("GetUserByID", ctx, requesterID).Return(&domain.User{UserID: requesterID, Role: domain.RoleUser}, nil).Once()

	cfg, err := suite.service.UpdateCodeConfig(ctx, req, requesterID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(cfg)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveConfig", mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateConfig", mock.Anything, mock.Anything)
}

func (suite *CodificationServiceTestSuite) TestUpdateCodeConfig_CreatesWhenMissing() {
	ctx := context.Background()
	requesterID := uuid.NewString()
	req := dto.UpdateCodeConfigRequest{
		CompanyCode:   "ONDA",
		Scopes:        []dto.CodeOptionDTO{{Code: "AER", Label: "Aeroport"}},
		DocumentTypes: []dto.CodeOptionDTO{{Code: "FOR", Label: "Formulaire"}},
		Departments:   []dto.CodeOptionDTO{{Code: "DSP", Label: "Direction Securite"}},
		Languages:     []dto.CodeOptionDTO{{Code: "FR", Label: "Francais"}},
	}

	suite.mockUserSvc.On("GetUserByID", ctx, requesterID).Return(&domain.User{UserID: requesterID, Role: domain.RoleAdministrator}, nil).Once()
	suite.mockRepo.On("GetActiveConfig", ctx).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveConfig", ctx, mock.MatchedBy(func(cfg domain.DocumentCodeConfig) bool {
		return cfg.CompanyCode == "ONDA" && cfg.ConfigID != "" && cfg.CreatedBy == requesterID
	})).Return(nil).Once()
	suite.mockActivity.On("Record", ctx, mock.MatchedBy(func(entry domain.ActivityLog) bool {
		return entry.Action == domain.ActivitySettingsUpdated && entry.UserID == requesterID
	})).Return().Once()

	cfg, err := suite.service.UpdateCodeConfig(ctx, req, requesterID)

	suite.Require().NoError(err)
	suite.Require().NotNil(cfg)
	suite.Equal("ONDA", cfg.CompanyCode)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockActivity.AssertExpectations(suite.T())
}

func (suite *CodificationServiceTestSuite) TestUpdateCodeConfig_ReplacesExisting() {
	ctx := context.Background()
	requesterID := uuid.NewString()
	existing := testCodeConfig()
	req := dto.UpdateCodeConfigRequest{
		CompanyCode:   "ONDA",
		Scopes:        []dto.CodeOptionDTO{{Code: "AER", Label: "Aeroport"}, {Code: "SIE", Label: "Siege"}},
		DocumentTypes: []dto.CodeOptionDTO{{Code: "FOR", Label: "Formulaire"}},
		Departments:   []dto.CodeOptionDTO{{Code: "DSP", Label: "Direction Securite"}},
		Languages:     []dto.CodeOptionDTO{{Code: "FR", Label: "Francais"}},
	}

	suite.mockUserSvc.On("GetUserByID", ctx, requesterID).Return(&domain.User{UserID: requesterID, Role: domain.RoleSuperAdmin}, nil).Once()
	suite.mockRepo.On("GetActiveConfig", ctx).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateConfig", ctx, mock.MatchedBy(func(cfg domain.DocumentCodeConfig) bool {
		return cfg.ConfigID == existing.ConfigID && len(cfg.Scopes) == 2
	})).Return(nil).Once()
	suite.mockActivity.On("Record", ctx, mock.AnythingOfType("domain.ActivityLog")).Return().Once()

	cfg, err := suite.service.UpdateCodeConfig(ctx, req, requesterID)

	suite.Require().NoError(err)
	suite.Equal(existing.ConfigID, cfg.ConfigID)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveConfig", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CodificationServiceTestSuite) TestGetCodeConfig_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("GetActiveConfig", ctx).Return(nil, expectedErr).Once()

	cfg, err := suite.service.GetCodeConfig(ctx)

	suite.Require().Error(err)
	suite.Nil(cfg)
	suite.ErrorIs(err, expectedErr)
}

// --- Run Suite ---
func TestCodificationService(t *testing.T) {
	suite.Run(t, new(CodificationServiceTestSuite))
}
