package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aerodoc/backend/internal/core/domain"
	portssvc "github.com/aerodoc/backend/internal/core/ports/services"
	"github.com/aerodoc/backend/internal/dto"
	"github.com/aerodoc/backend/internal/handlers"
	"github.com/aerodoc/backend/internal/middleware"
	"github.com/aerodoc/backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock DocumentService ---
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) GetDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) GetDocumentByQRCode(ctx context.Context, qrCode string) (*domain.Document, error) {
	args := m.Called(ctx, qrCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) ListDocuments(ctx context.Context, filter domain.DocumentFilter, limit int, pageToken string) ([]domain.Document, string, error) {
	args := m.Called(ctx, filter, limit, pageToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Document), args.String(1), args.Error(2)
}

func (m *MockDocumentService) CreateDocument(ctx context.Context, req dto.CreateDocumentRequest, creatorUserID string) (*domain.Document, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) UpdateDocument(ctx context.Context, documentID string, req dto.UpdateDocumentRequest, requestingUserID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) CreateFromTemplate(ctx context.Context, req dto.CreateFromTemplateRequest, creatorUserID string) (*domain.Document, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) DeleteDocument(ctx context.Context, documentID string, requestingUserID string) error {
	args := m.Called(ctx, documentID, requestingUserID)
	return args.Error(0)
}

func (m *MockDocumentService) ApproveDocument(ctx context.Context, documentID string, approverUserID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID, approverUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) ArchiveDocument(ctx context.Context, documentID string, requestingUserID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) RecordView(ctx context.Context, documentID string) error {
	args := m.Called(ctx, documentID)
	return args.Error(0)
}

func (m *MockDocumentService) RecordDownload(ctx context.Context, documentID string) error {
	args := m.Called(ctx, documentID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.DocumentSvcFacade = (*MockDocumentService)(nil)

// --- Test Suite ---
type DocumentHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockDocumentService *MockDocumentService
	jwtSecret           string
}

func (suite *DocumentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockDocumentService = new(MockDocumentService)

	suite.router = gin.New()
	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	handlers.RegisterDocumentRoutes(suite.router, v1, suite.mockDocumentService)
}

func (suite *DocumentHandlerTestSuite) generateTestToken(userID string) string {
	token, err := utils.GenerateJWT(userID, suite.jwtSecret, time.Hour, "test-issuer")
	suite.Require().NoError(err)
	return token
}

// --- Test Cases ---

func (suite *DocumentHandlerTestSuite) TestQRLookup_NoAuthenticationRequired() {
	qrCode := uuid.NewString()
	expected := &domain.Document{
		DocumentID: uuid.NewString(),
		Title:      "Consigne incendie",
		QRCode:     qrCode,
	}

	suite.mockDocumentService.On("GetDocumentByQRCode", mock.Anything, qrCode).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/qr/"+qrCode, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code, "QR lookup must succeed without an Authorization header")

	var body dto.DocumentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(expected.DocumentID, body.DocumentID)
	suite.mockDocumentService.AssertExpectations(suite.T())
}

func (suite *DocumentHandlerTestSuite) TestGetDocument_RequiresAuthentication() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/documents/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockDocumentService.AssertNotCalled(suite.T(), "GetDocumentByID", mock.Anything, mock.Anything)
}

func (suite *DocumentHandlerTestSuite) TestGetDocument_WithToken() {
	docID := uuid.NewString()
	expected := &domain.Document{DocumentID: docID, Title: "Plan de servitude"}

	suite.mockDocumentService.On("GetDocumentByID", mock.Anything, docID).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/documents/"+docID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.DocumentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(docID, body.DocumentID)
	suite.mockDocumentService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestDocumentHandler(t *testing.T) {
	suite.Run(t, new(DocumentHandlerTestSuite))
}
