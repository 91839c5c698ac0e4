package services_test

import (
	"context"
	"time"

	"github.com/aerodoc/backend/internal/core/domain"
	"github.com/aerodoc/backend/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock CodeConfigRepository ---
type MockCodeConfigRepository struct {
	mock.Mock
}

func (m *MockCodeConfigRepository) GetActiveConfig(ctx context.Context) (*domain.DocumentCodeConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentCodeConfig), args.Error(1)
}

func (m *MockCodeConfigRepository) SaveConfig(ctx context.Context, cfg domain.DocumentCodeConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

func (m *MockCodeConfigRepository) UpdateConfig(ctx context.Context, cfg domain.DocumentCodeConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

func (m *MockCodeConfigRepository) AllocateSequence(ctx context.Context, segments domain.CodeSegments) (int, error) {
	args := m.Called(ctx, segments)
	return args.Int(0), args.Error(1)
}

func (m *MockCodeConfigRepository) PeekSequence(ctx context.Context, segments domain.CodeSegments) (int, error) {
	args := m.Called(ctx, segments)
	return args.Int(0), args.Error(1)
}

// --- Mock DocumentRepository ---
type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) FindDocumentByQRCode(ctx context.Context, qrCode string) (*domain.Document, error) {
	args := m.Called(ctx, qrCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) ListDocuments(ctx context.Context, filter domain.DocumentFilter, limit int, pageToken string) ([]domain.Document, string, error) {
	args := m.Called(ctx, filter, limit, pageToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Document), args.String(1), args.Error(2)
}

func (m *MockDocumentRepository) SaveDocument(ctx context.Context, doc domain.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocumentRepository) UpdateDocument(ctx context.Context, doc domain.Document, bumpVersion bool) error {
	args := m.Called(ctx, doc, bumpVersion)
	return args.Error(0)
}

func (m *MockDocumentRepository) DeleteDocument(ctx context.Context, documentID string) error {
	args := m.Called(ctx, documentID)
	return args.Error(0)
}

func (m *MockDocumentRepository) MarkApproved(ctx context.Context, documentID, approverID string, approvedAt time.Time) error {
	args := m.Called(ctx, documentID, approverID, approvedAt)
	return args.Error(0)
}

func (m *MockDocumentRepository) IncrementViews(ctx context.Context, documentID string) error {
	args := m.Called(ctx, documentID)
	return args.Error(0)
}

func (m *MockDocumentRepository) IncrementDownloads(ctx context.Context, documentID string) error {
	args := m.Called(ctx, documentID)
	return args.Error(0)
}

// --- Mock ActionRepository ---
type MockActionRepository struct {
	mock.Mock
}

func (m *MockActionRepository) FindActionByID(ctx context.Context, actionID string) (*domain.Action, error) {
	args := m.Called(ctx, actionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Action), args.Error(1)
}

func (m *MockActionRepository) ListActions(ctx context.Context, filter domain.ActionFilter, limit int, pageToken string) ([]domain.Action, string, error) {
	args := m.Called(ctx, filter, limit, pageToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Action), args.String(1), args.Error(2)
}

func (m *MockActionRepository) SaveAction(ctx context.Context, action domain.Action) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func (m *MockActionRepository) UpdateAction(ctx context.Context, action domain.Action) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func (m *MockActionRepository) DeleteAction(ctx context.Context, actionID string) error {
	args := m.Called(ctx, actionID)
	return args.Error(0)
}

// --- Mock CorrespondanceRepository ---
type MockCorrespondanceRepository struct {
	mock.Mock
}

func (m *MockCorrespondanceRepository) FindCorrespondanceByID(ctx context.Context, correspondanceID string) (*domain.Correspondance, error) {
	args := m.Called(ctx, correspondanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Correspondance), args.Error(1)
}

func (m *MockCorrespondanceRepository) ListCorrespondances(ctx context.Context, filter domain.CorrespondanceFilter, limit int, pageToken string) ([]domain.Correspondance, string, error) {
	args := m.Called(ctx, filter, limit, pageToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Correspondance), args.String(1), args.Error(2)
}

func (m *MockCorrespondanceRepository) SaveCorrespondance(ctx context.Context, corr domain.Correspondance) error {
	args := m.Called(ctx, corr)
	return args.Error(0)
}

func (m *MockCorrespondanceRepository) UpdateCorrespondance(ctx context.Context, corr domain.Correspondance) error {
	args := m.Called(ctx, corr)
	return args.Error(0)
}

func (m *MockCorrespondanceRepository) DeleteCorrespondance(ctx context.Context, correspondanceID string) error {
	args := m.Called(ctx, correspondanceID)
	return args.Error(0)
}

// --- Mock ProcesVerbalRepository ---
type MockProcesVerbalRepository struct {
	mock.Mock
}

func (m *MockProcesVerbalRepository) FindProcesVerbalByID(ctx context.Context, procesVerbalID string) (*domain.ProcesVerbal, error) {
	args := m.Called(ctx, procesVerbalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProcesVerbal), args.Error(1)
}

func (m *MockProcesVerbalRepository) ListProcesVerbaux(ctx context.Context, limit int, pageToken string) ([]domain.ProcesVerbal, string, error) {
	args := m.Called(ctx, limit, pageToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.ProcesVerbal), args.String(1), args.Error(2)
}

func (m *MockProcesVerbalRepository) SaveProcesVerbal(ctx context.Context, pv domain.ProcesVerbal) error {
	args := m.Called(ctx, pv)
	return args.Error(0)
}

func (m *MockProcesVerbalRepository) UpdateProcesVerbal(ctx context.Context, pv domain.ProcesVerbal) error {
	args := m.Called(ctx, pv)
	return args.Error(0)
}

// --- Mock DocumentWriterSvc ---
type MockDocumentWriterSvc struct {
	mock.Mock
}

func (m *MockDocumentWriterSvc) CreateDocument(ctx context.Context, req dto.CreateDocumentRequest, creatorUserID string) (*domain.Document, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentWriterSvc) UpdateDocument(ctx context.Context, documentID string, req dto.UpdateDocumentRequest, requestingUserID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentWriterSvc) CreateFromTemplate(ctx context.Context, req dto.CreateFromTemplateRequest, creatorUserID string) (*domain.Document, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentWriterSvc) DeleteDocument(ctx context.Context, documentID string, requestingUserID string) error {
	args := m.Called(ctx, documentID, requestingUserID)
	return args.Error(0)
}

// --- Mock ActivityLogRepository ---
type MockActivityLogRepository struct {
	mock.Mock
}

func (m *MockActivityLogRepository) AppendActivityLog(ctx context.Context, entry domain.ActivityLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockActivityLogRepository) ListActivityLogs(ctx context.Context, filter domain.ActivityLogFilter, limit int, pageToken string) ([]domain.ActivityLog, string, error) {
	args := m.Called(ctx, filter, limit, pageToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.ActivityLog), args.String(1), args.Error(2)
}

// --- Mock UserReaderSvc ---
type MockUserReaderSvc struct {
	mock.Mock
}

func (m *MockUserReaderSvc) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReaderSvc) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReaderSvc) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// --- Mock ActivityRecorder ---
type MockActivityRecorder struct {
	mock.Mock
}

func (m *MockActivityRecorder) Record(ctx context.Context, entry domain.ActivityLog) {
	m.Called(ctx, entry)
}

// --- Mock CodeGenerator ---
type MockCodeGenerator struct {
	mock.Mock
}

func (m *MockCodeGenerator) GenerateCode(ctx context.Context, segments domain.CodeSegments) (string, int, error) {
	args := m.Called(ctx, segments)
	return args.String(0), args.Int(1), args.Error(2)
}

func (m *MockCodeGenerator) PreviewCode(ctx context.Context, segments domain.CodeSegments) (string, int, error) {
	args := m.Called(ctx, segments)
	return args.String(0), args.Int(1), args.Error(2)
}

// --- Mock SearchIndexer ---
type MockSearchIndexer struct {
	mock.Mock
}

func (m *MockSearchIndexer) Enabled() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockSearchIndexer) IndexDocument(ctx context.Context, doc domain.Document) {
	m.Called(ctx, doc)
}

func (m *MockSearchIndexer) RemoveDocument(ctx context.Context, documentID string) {
	m.Called(ctx, documentID)
}

func (m *MockSearchIndexer) SearchDocumentIDs(ctx context.Context, query string, limit int) ([]string, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
