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
type DocumentServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockDocumentRepository
	mockCodeGen  *MockCodeGenerator
	mockUserSvc  *MockUserReaderSvc
	mockActivity *MockActivityRecorder
	mockSearch   *MockSearchIndexer
	service      portssvc.DocumentSvcFacade
}

func (suite *DocumentServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockDocumentRepository)
	suite.mockCodeGen = new(MockCodeGenerator)
	suite.mockUserSvc = new(MockUserReaderSvc)
	suite.mockActivity = new(MockActivityRecorder)
	suite.mockSearch = new(MockSearchIndexer)
	suite.service = services.NewDocumentService(
		suite.mockRepo,
		suite.mockCodeGen,
		suite.mockUserSvc,
		suite.mockActivity,
		suite.mockSearch,
		suite.T().TempDir(),
	)
}

func testSegmentsRequest() dto.CodeSegmentsRequest {
	return dto.CodeSegmentsRequest{
		CompanyCode:      "ONDA",
		ScopeCode:        "AER",
		DepartmentCode:   "DSP",
		DocumentTypeCode: "FOR",
		LanguageCode:     "FR",
	}
}

func testDocument(status domain.DocumentStatus) *domain.Document {
	return &domain.Document{
		DocumentID: uuid.NewString(),
		QRCode:     uuid.NewString(),
		Title:      "Consigne incendie",
		Type:       domain.DocTypeGeneral,
		Status:     status,
		Version:    1,
		Code:       "ONDA-AER-DSP-FOR-FR-0001",
		Airport:    "ENF",
		AuthorID:   uuid.NewString(),
	}
}

// --- Test Cases ---

func (suite *DocumentServiceTestSuite) TestCreateDocument_Success() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	req := dto.CreateDocumentRequest{
		Title:    "Consigne incendie",
		Type:     "GENERAL",
		Airport:  "ENF",
		Segments: testSegmentsRequest(),
	}
	segments := req.Segments.ToDomainSegments()

	suite.mockCodeGen.On("GenerateCode", ctx, segments).Return("ONDA-AER-DSP-FOR-FR-0005", 5, nil).Once()
	suite.mockRepo.On("SaveDocument", ctx, mock.MatchedBy(func(d domain.Document) bool {
		return d.Title == req.Title &&
			d.Status == domain.StatusDraft &&
			d.Version == 1 &&
			d.Code == "ONDA-AER-DSP-FOR-FR-0005" &&
			d.SequenceNumber == 5 &&
			d.QRCode != "" &&
			d.AuthorID == creatorID
	})).Return(nil).Once()
	suite.mockActivity.On("Record", ctx, mock.MatchedBy(func(entry domain.ActivityLog) bool {
		return entry.Action == domain.ActivityDocumentCreated && entry.EntityType == domain.EntityDocument
	})).Return().Once()
	suite.mockSearch.On("IndexDocument", ctx, mock.AnythingOfType("domain.Document")).Return().Once()

	doc, err := suite.service.CreateDocument(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(doc)
	suite.Equal(domain.StatusDraft, doc.Status)
	suite.Equal(1, doc.Version)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockActivity.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestCreateDocument_ArchivedRejected() {
	ctx := context.Background()
	req := dto.CreateDocumentRequest{
		Title:    "Consigne incendie",
		Type:     "GENERAL",
		Airport:  "ENF",
		Status:   "ARCHIVED",
		Segments: testSegmentsRequest(),
	}

	doc, err := suite.service.CreateDocument(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(doc)
	suite.mockCodeGen.AssertNotCalled(suite.T(), "GenerateCode", mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveDocument", mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestCreateDocument_UnknownType() {
	ctx := context.Background()
	req := dto.CreateDocumentRequest{
		Title:    "Consigne incendie",
		Type:     "BOGUS",
		Airport:  "ENF",
		Segments: testSegmentsRequest(),
	}

	doc, err := suite.service.CreateDocument(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(doc)
}

func (suite *DocumentServiceTestSuite) TestUpdateDocument_FileChangeBumpsVersion() {
	ctx := context.Background()
	requesterID := uuid.NewString()
	existing := testDocument(domain.StatusActive)
	existing.Version = 3
	existing.FilePath = "general/enf/old.pdf"
	newPath := "general/enf/new.pdf"

	suite.mockRepo.On("FindDocumentByID", ctx, existing.DocumentID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateDocument", ctx, mock.MatchedBy(func(d domain.Document) bool {
		return d.FilePath == newPath && d.Version == 3
	}), true).Return(nil).Once()
	suite.mockActivity.On("Record", ctx, mock.AnythingOfType("domain.ActivityLog")).Return().Once()
	suite.mockSearch.On("IndexDocument", ctx, mock.AnythingOfType("domain.Document")).Return().Once()

	doc, err := suite.service.UpdateDocument(ctx, existing.DocumentID, dto.UpdateDocumentRequest{FilePath: &newPath}, requesterID)

	suite.Require().NoError(err)
	suite.Equal(4, doc.Version)
	suite.Equal(newPath, doc.FilePath)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestUpdateDocument_SameFileKeepsVersion() {
	ctx := context.Background()
	existing := testDocument(domain.StatusActive)
	existing.Version = 2
	existing.FilePath = "general/enf/same.pdf"
	samePath := existing.FilePath
	newTitle := "Consigne incendie v2"

	suite.mockRepo.On("FindDocumentByID", ctx, existing.DocumentID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateDocument", ctx, mock.AnythingOfType("domain.Document"), false).Return(nil).Once()
	suite.mockActivity.On("Record", ctx, mock.AnythingOfType("domain.ActivityLog")).Return().Once()
	suite.mockSearch.On("IndexDocument", ctx, mock.AnythingOfType("domain.Document")).Return().Once()

	doc, err := suite.service.UpdateDocument(ctx, existing.DocumentID, dto.UpdateDocumentRequest{Title: &newTitle, FilePath: &samePath}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(2, doc.Version)
	suite.Equal(newTitle, doc.Title)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestUpdateDocument_ArchivedIsTerminal() {
	ctx := context.Background()
	existing := testDocument(domain.StatusArchived)
	backToDraft := "DRAFT"

	suite.mockRepo.On("FindDocumentByID", ctx, existing.DocumentID).Return(existing, nil).Once()

	doc, err := suite.service.UpdateDocument(ctx, existing.DocumentID, dto.UpdateDocumentRequest{Status: &backToDraft}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(doc)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateDocument", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestApproveDocument_RoleRequired() {
	ctx := context.Background()
	approverID := uuid.NewString()
	documentID := uuid.NewString()

	suite.mockUserSvc.On("GetUserByID", ctx, approverID).Return(&domain.User{UserID: approverID, Role: domain.RoleUser}, nil).Once()

	doc, err := suite.service.ApproveDocument(ctx, documentID, approverID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(doc)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkApproved", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestApproveDocument_Success() {
	ctx := context.Background()
	approverID := uuid.NewString()
	approved := testDocument(domain.StatusActive)
	approved.ApprovedBy = &approverID

	suite.mockUserSvc.On("GetUserByID", ctx, approverID).Return(&domain.User{UserID: approverID, Role: domain.RoleApprover}, nil).Once()
	suite.mockRepo.On("MarkApproved", ctx, approved.DocumentID, approverID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockRepo.On("FindDocumentByID", ctx, approved.DocumentID).Return(approved, nil).Once()
	suite.mockActivity.On("Record", ctx, mock.MatchedBy(func(entry domain.ActivityLog) bool {
		return entry.Action == domain.ActivityDocumentApproved
	})).Return().Once()
	suite.mockSearch.On("IndexDocument", ctx, mock.AnythingOfType("domain.Document")).Return().Once()

	doc, err := suite.service.ApproveDocument(ctx, approved.DocumentID, approverID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusActive, doc.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestDeleteDocument_AdminOnly() {
	ctx := context.Background()
	requesterID := uuid.NewString()

	suite.mockUserSvc.On("GetUserByID", ctx, requesterID).Return(&domain.User{UserID: requesterID, Role: domain.RoleApprover}, nil).Once()

	err := suite.service.DeleteDocument(ctx, uuid.NewString(), requesterID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteDocument", mock.Anything, mock.Anything)
	suite.mockActivity.AssertNotCalled(suite.T(), "Record", mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestDeleteDocument_NotFound() {
	ctx := context.Background()
	requesterID := uuid.NewString()
	documentID := uuid.NewString()

	suite.mockUserSvc.On("GetUserByID", ctx, requesterID).Return(&domain.User{UserID: requesterID, Role: domain.RoleAdministrator}, nil).Once()
	suite.mockRepo.On("FindDocumentByID", ctx, documentID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteDocument(ctx, documentID, requesterID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockActivity.AssertNotCalled(suite.T(), "Record", mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestDeleteDocument_Success() {
	ctx := context.Background()
	requesterID := uuid.NewString()
	existing := testDocument(domain.StatusActive)

	suite.mockUserSvc.On("GetUserByID", ctx, requesterID).Return(&domain.User{UserID: requesterID, Role: domain.RoleAdministrator}, nil).Once()
	suite.mockRepo.On("FindDocumentByID", ctx, existing.DocumentID).Return(existing, nil).Once()
	suite.mockActivity.On("Record", ctx, mock.MatchedBy(func(entry domain.ActivityLog) bool {
		return entry.Action == domain.ActivityDocumentDeleted && entry.EntityID == existing.DocumentID
	})).Return().Once()
	suite.mockRepo.On("DeleteDocument", ctx, existing.DocumentID).Return(nil).Once()
	suite.mockSearch.On("RemoveDocument", ctx, existing.DocumentID).Return().Once()

	err := suite.service.DeleteDocument(ctx, existing.DocumentID, requesterID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockSearch.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestGetDocumentByQRCode_BumpsViews() {
	ctx := context.Background()
	existing := testDocument(domain.StatusActive)
	existing.ViewsCount = 9

	suite.mockRepo.On("FindDocumentByQRCode", ctx, existing.QRCode).Return(existing, nil).Once()
	suite.mockRepo.On("IncrementViews", ctx, existing.DocumentID).Return(nil).Once()

	doc, err := suite.service.GetDocumentByQRCode(ctx, existing.QRCode)

	suite.Require().NoError(err)
	suite.Equal(int64(10), doc.ViewsCount)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestListDocuments_SearchShortCircuitsOnNoHits() {
	ctx := context.Background()
	filter := domain.DocumentFilter{Search: "introuvable"}

	suite.mockSearch.On("Enabled").Return(true).Once()
	suite.mockSearch.On("SearchDocumentIDs", ctx, "introuvable", 1000).Return([]string{}, nil).Once()

	docs, nextToken, err := suite.service.ListDocuments(ctx, filter, 20, "")

	suite.Require().NoError(err)
	suite.Empty(docs)
	suite.Empty(nextToken)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListDocuments", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestListDocuments_SearchRestrictsIDs() {
	ctx := context.Background()
	ids := []string{uuid.NewString(), uuid.NewString()}
	expected := []domain.Document{*testDocument(domain.StatusActive)}

	suite.mockSearch.On("Enabled").Return(true).Once()
	suite.mockSearch.On("SearchDocumentIDs", ctx, "incendie", 1000).Return(ids, nil).Once()
	suite.mockRepo.On("ListDocuments", ctx, mock.MatchedBy(func(f domain.DocumentFilter) bool {
		return len(f.IDs) == 2
	}), 20, "").Return(expected, "", nil).Once()

	docs, _, err := suite.service.ListDocuments(ctx, domain.DocumentFilter{Search: "incendie"}, 20, "")

	suite.Require().NoError(err)
	suite.Len(docs, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestCreateFromTemplate_RejectsNonTemplate() {
	ctx := context.Background()
	existing := testDocument(domain.StatusActive)
	req := dto.CreateFromTemplateRequest{
		TemplateID: existing.DocumentID,
		Title:      "Nouvelle consigne",
		Airport:    "ENF",
		Segments:   testSegmentsRequest(),
	}

	suite.mockRepo.On("FindDocumentByID", ctx, existing.DocumentID).Return(existing, nil).Once()

	doc, err := suite.service.CreateFromTemplate(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(doc)
	suite.mockCodeGen.AssertNotCalled(suite.T(), "GenerateCode", mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestCreateFromTemplate_Success() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	template := testDocument(domain.StatusActive)
	template.Type = domain.DocTypeTemplate
	template.Content = "modele standard"
	req := dto.CreateFromTemplateRequest{
		TemplateID: template.DocumentID,
		Title:      "Nouvelle consigne",
		Airport:    "ENF",
		Segments:   testSegmentsRequest(),
	}
	segments := req.Segments.ToDomainSegments()

	suite.mockRepo.On("FindDocumentByID", ctx, template.DocumentID).Return(template, nil).Once()
	suite.mockCodeGen.On("GenerateCode", ctx, segments).Return("ONDA-AER-DSP-FOR-FR-0009", 9, nil).Once()
	suite.mockRepo.On("SaveDocument", ctx, mock.MatchedBy(func(d domain.Document) bool {
		return d.Type == domain.DocTypeGeneral &&
			d.Status == domain.StatusDraft &&
			d.Content == template.Content &&
			d.DocumentID != template.DocumentID &&
			d.QRCode != template.QRCode
	})).Return(nil).Once()
	suite.mockActivity.On("Record", ctx, mock.AnythingOfType("domain.ActivityLog")).Return().Once()
	suite.mockSearch.On("IndexDocument", ctx, mock.AnythingOfType("domain.Document")).Return().Once()

	doc, err := suite.service.CreateFromTemplate(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Equal("modele standard", doc.Content)
	suite.Equal(domain.StatusDraft, doc.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestDocumentService(t *testing.T) {
	suite.Run(t, new(DocumentServiceTestSuite))
}
