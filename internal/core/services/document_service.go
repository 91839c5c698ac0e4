package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/aerodoc/backend/internal/apperrors"
	"github.com/aerodoc/backend/internal/core/domain"
	portsrepo "github.com/aerodoc/backend/internal/core/ports/repositories"
	portssvc "github.com/aerodoc/backend/internal/core/ports/services"
	"github.com/aerodoc/backend/internal/dto"
	"github.com/google/uuid"
)

type documentService struct {
	BaseService
	repo         portsrepo.DocumentRepositoryFacade
	codification portssvc.CodeGeneratorSvc
	userSvc      portssvc.UserReaderSvc
	activity     portssvc.ActivityRecorderSvc
	search       portssvc.SearchIndexerSvc
	uploadsDir   string
}

// NewDocumentService creates the document registry service.
func NewDocumentService(
	repo portsrepo.DocumentRepositoryFacade,
	codification portssvc.CodeGeneratorSvc,
	userSvc portssvc.UserReaderSvc,
	activity portssvc.ActivityRecorderSvc,
	search portssvc.SearchIndexerSvc,
	uploadsDir string,
) portssvc.DocumentSvcFacade {
	return &documentService{
		repo:         repo,
		codification: codification,
		userSvc:      userSvc,
		activity:     activity,
		search:       search,
		uploadsDir:   uploadsDir,
	}
}

// CreateDocument registers a new document with a generated code and QR token.
func (s *documentService) CreateDocument(ctx context.Context, req dto.CreateDocumentRequest, creatorUserID string) (*domain.Document, error) {
	docType := domain.DocumentType(req.Type)
	if !docType.IsValid() {
		return nil, fmt.Errorf("unknown document type %q: %w", req.Type, apperrors.ErrValidation)
	}

	status := domain.StatusDraft
	if req.Status != "" {
		status = domain.DocumentStatus(req.Status)
		if status == domain.StatusArchived {
			return nil, fmt.Errorf("documents cannot be created archived: %w", apperrors.ErrValidation)
		}
	}

	segments := req.Segments.ToDomainSegments()
	code, seq, err := s.codification.GenerateCode(ctx, segments)
	if err != nil {
		return nil, err
	}
	segments.SequenceNumber = seq

	now := time.Now()
	doc := domain.Document{
		DocumentID:   uuid.NewString(),
		QRCode:       uuid.NewString(),
		Title:        req.Title,
		Type:         docType,
		Content:      req.Content,
		Status:       status,
		Version:      1,
		FilePath:     req.FilePath,
		FileType:     req.FileType,
		Code:         code,
		CodeSegments: segments,
		Tags:         req.Tags,
		Airport:      req.Airport,
		AuthorID:     creatorUserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.repo.SaveDocument(ctx, doc); err != nil {
		s.LogError(ctx, err, "Failed to save document", "document_id", doc.DocumentID)
		return nil, err
	}

	s.activity.Record(ctx, domain.ActivityLog{
		Action:     domain.ActivityDocumentCreated,
		Details:    fmt.Sprintf("Document %q created with code %s", doc.Title, doc.Code),
		EntityType: domain.EntityDocument,
		EntityID:   doc.DocumentID,
		UserID:     creatorUserID,
	})
	s.search.IndexDocument(ctx, doc)

	s.LogInfo(ctx, "Document created", "document_id", doc.DocumentID, "code", doc.Code)
	return &doc, nil
}

// UpdateDocument applies a partial update. A changed file path bumps the
// version by exactly one; new segments regenerate the code through the
// codification engine.
func (s *documentService) UpdateDocument(ctx context.Context, documentID string, req dto.UpdateDocumentRequest, requestingUserID string) (*domain.Document, error) {
	doc, err := s.repo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, err
	}

	bumpVersion := false
	if req.Title != nil {
		doc.Title = *req.Title
	}
	if req.Content != nil {
		doc.Content = *req.Content
	}
	if req.Status != nil {
		next := domain.DocumentStatus(*req.Status)
		if !doc.Status.CanTransitionTo(next) {
			return nil, fmt.Errorf("status transition %s -> %s not allowed: %w", doc.Status, next, apperrors.ErrValidation)
		}
		doc.Status = next
	}
	if req.FilePath != nil && *req.FilePath != doc.FilePath {
		doc.FilePath = *req.FilePath
		bumpVersion = true
	}
	if req.FileType != nil {
		doc.FileType = *req.FileType
	}
	if req.Tags != nil {
		doc.Tags = *req.Tags
	}
	if req.Segments != nil {
		segments := req.Segments.ToDomainSegments()
		code, seq, err := s.codification.GenerateCode(ctx, segments)
		if err != nil {
			return nil, err
		}
		segments.SequenceNumber = seq
		doc.Code = code
		doc.CodeSegments = segments
	}

	doc.LastUpdatedAt = time.Now()
	doc.LastUpdatedBy = requestingUserID

	if err := s.repo.UpdateDocument(ctx, *doc, bumpVersion); err != nil {
		s.LogError(ctx, err, "Failed to update document", "document_id", documentID)
		return nil, err
	}
	if bumpVersion {
		doc.Version++
	}

	s.activity.Record(ctx, domain.ActivityLog{
		Action:     domain.ActivityDocumentUpdated,
		Details:    fmt.Sprintf("Document %q updated", doc.Title),
		EntityType: domain.EntityDocument,
		EntityID:   doc.DocumentID,
		UserID:     requestingUserID,
	})
	s.search.IndexDocument(ctx, *doc)

	return doc, nil
}

// CreateFromTemplate instantiates a new DRAFT document from a TEMPLATE one,
// copying its stored file and generating a fresh code and QR token.
func (s *documentService) CreateFromTemplate(ctx context.Context, req dto.CreateFromTemplateRequest, creatorUserID string) (*domain.Document, error) {
	template, err := s.repo.FindDocumentByID(ctx, req.TemplateID)
	if err != nil {
		return nil, err
	}
	if template.Type != domain.DocTypeTemplate {
		return nil, fmt.Errorf("document %s is not a template: %w", req.TemplateID, apperrors.ErrValidation)
	}

	segments := req.Segments.ToDomainSegments()
	code, seq, err := s.codification.GenerateCode(ctx, segments)
	if err != nil {
		return nil, err
	}
	segments.SequenceNumber = seq

	now := time.Now()
	doc := domain.Document{
		DocumentID:   uuid.NewString(),
		QRCode:       uuid.NewString(),
		Title:        req.Title,
		Type:         domain.DocTypeGeneral,
		Content:      template.Content,
		Status:       domain.StatusDraft,
		Version:      1,
		FileType:     template.FileType,
		Code:         code,
		CodeSegments: segments,
		Tags:         template.Tags,
		Airport:      req.Airport,
		AuthorID:     creatorUserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if template.FilePath != "" {
		copied, err := s.copyStoredFile(template.FilePath, doc.DocumentID)
		if err != nil {
			s.LogError(ctx, err, "Failed to copy template file", "template_id", template.DocumentID)
			return nil, fmt.Errorf("failed to copy template file: %w", err)
		}
		doc.FilePath = copied
	}

	if err := s.repo.SaveDocument(ctx, doc); err != nil {
		s.LogError(ctx, err, "Failed to save document from template", "document_id", doc.DocumentID)
		return nil, err
	}

	s.activity.Record(ctx, domain.ActivityLog{
		Action:     domain.ActivityDocumentCreated,
		Details:    fmt.Sprintf("Document %q created from template %s", doc.Title, template.DocumentID),
		EntityType: domain.EntityDocument,
		EntityID:   doc.DocumentID,
		UserID:     creatorUserID,
	})
	s.search.IndexDocument(ctx, doc)

	return &doc, nil
}

// copyStoredFile duplicates a stored file under the uploads root, naming the
// copy after the new document ID. It returns the new relative path.
func (s *documentService) copyStoredFile(relPath, documentID string) (string, error) {
	srcPath := filepath.Join(s.uploadsDir, filepath.FromSlash(relPath))
	src, err := os.Open(srcPath)
	if err != nil {
		return "", err
	}
	defer src.Close()

	newRel := filepath.ToSlash(filepath.Join(filepath.Dir(relPath), documentID+filepath.Ext(relPath)))
	dstPath := filepath.Join(s.uploadsDir, filepath.FromSlash(newRel))
	dst, err := os.Create(dstPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return newRel, nil
}

// ApproveDocument records the approver and moves DRAFT documents to ACTIVE.
// Only approver roles may call it.
func (s *documentService) ApproveDocument(ctx context.Context, documentID string, approverUserID string) (*domain.Document, error) {
	approver, err := s.userSvc.GetUserByID(ctx, approverUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load approving user: %w", err)
	}
	if !approver.Role.CanApprove() {
		return nil, fmt.Errorf("role %s may not approve documents: %w", approver.Role, apperrors.ErrForbidden)
	}

	approvedAt := time.Now()
	if err := s.repo.MarkApproved(ctx, documentID, approverUserID, approvedAt); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to approve document", "document_id", documentID)
		}
		return nil, err
	}

	doc, err := s.repo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, domain.ActivityLog{
		Action:     domain.ActivityDocumentApproved,
		Details:    fmt.Sprintf("Document %q approved", doc.Title),
		EntityType: domain.EntityDocument,
		EntityID:   doc.DocumentID,
		UserID:     approverUserID,
	})
	s.search.IndexDocument(ctx, *doc)

	s.LogInfo(ctx, "Document approved", "document_id", documentID)
	return doc, nil
}

// ArchiveDocument moves a document to its terminal ARCHIVED status.
func (s *documentService) ArchiveDocument(ctx context.Context, documentID string, requestingUserID string) (*domain.Document, error) {
	doc, err := s.repo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, err
	}

	doc.Status = domain.StatusArchived
	doc.LastUpdatedAt = time.Now()
	doc.LastUpdatedBy = requestingUserID

	if err := s.repo.UpdateDocument(ctx, *doc, false); err != nil {
		s.LogError(ctx, err, "Failed to archive document", "document_id", documentID)
		return nil, err
	}

	s.activity.Record(ctx, domain.ActivityLog{
		Action:     domain.ActivityDocumentArchived,
		Details:    fmt.Sprintf("Document %q archived", doc.Title),
		EntityType: domain.EntityDocument,
		EntityID:   doc.DocumentID,
		UserID:     requestingUserID,
	})
	s.search.IndexDocument(ctx, *doc)

	return doc, nil
}

// DeleteDocument removes a document permanently. Admin only. Template files
// are unlinked best-effort; the row is removed regardless.
func (s *documentService) DeleteDocument(ctx context.Context, documentID string, requestingUserID string) error {
	requester, err := s.userSvc.GetUserByID(ctx, requestingUserID)
	if err != nil {
		return fmt.Errorf("failed to load requesting user: %w", err)
	}
	if !requester.Role.IsAdmin() {
		return fmt.Errorf("only administrators may delete documents: %w", apperrors.ErrForbidden)
	}

	doc, err := s.repo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return err
	}

	s.activity.Record(ctx, domain.ActivityLog{
		Action:     domain.ActivityDocumentDeleted,
		Details:    fmt.Sprintf("Document %q deleted", doc.Title),
		EntityType: domain.EntityDocument,
		EntityID:   doc.DocumentID,
		UserID:     requestingUserID,
	})

	if err := s.repo.DeleteDocument(ctx, documentID); err != nil {
		s.LogError(ctx, err, "Failed to delete document", "document_id", documentID)
		return err
	}

	if doc.Type == domain.DocTypeTemplate && doc.FilePath != "" {
		fullPath := filepath.Join(s.uploadsDir, filepath.FromSlash(doc.FilePath))
		if err := os.Remove(fullPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			s.LogWarn(ctx, "Failed to unlink template file", "path", doc.FilePath, "error", err.Error())
		}
	}

	s.search.RemoveDocument(ctx, documentID)
	s.LogInfo(ctx, "Document deleted", "document_id", documentID)
	return nil
}

// GetDocumentByID retrieves a document by ID.
func (s *documentService) GetDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	doc, err := s.repo.FindDocumentByID(ctx, documentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find document", "document_id", documentID)
		}
		return nil, err
	}
	return doc, nil
}

// GetDocumentByQRCode retrieves a document by its QR token and bumps its view
// counter best-effort.
func (s *documentService) GetDocumentByQRCode(ctx context.Context, qrCode string) (*domain.Document, error) {
	doc, err := s.repo.FindDocumentByQRCode(ctx, qrCode)
	if err != nil {
		return nil, err
	}
	if err := s.repo.IncrementViews(ctx, doc.DocumentID); err != nil {
		s.LogWarn(ctx, "Failed to bump view counter", "document_id", doc.DocumentID, "error", err.Error())
	} else {
		doc.ViewsCount++
	}
	return doc, nil
}

// ListDocuments retrieves a page of documents. Free-text queries go through
// the search index when one is configured, with a LIKE fallback otherwise.
func (s *documentService) ListDocuments(ctx context.Context, filter domain.DocumentFilter, limit int, pageToken string) ([]domain.Document, string, error) {
	if limit <= 0 {
		limit = 20
	}

	if filter.Search != "" && s.search.Enabled() {
		ids, err := s.search.SearchDocumentIDs(ctx, filter.Search, 1000)
		if err != nil {
			s.LogWarn(ctx, "Search index query failed, falling back to LIKE", "error", err.Error())
		} else {
			if len(ids) == 0 {
				return []domain.Document{}, "", nil
			}
			filter.IDs = ids
		}
	}

	docs, nextToken, err := s.repo.ListDocuments(ctx, filter, limit, pageToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list documents")
		return nil, "", fmt.Errorf("failed to list documents: %w", err)
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	return docs, nextToken, nil
}

// RecordView bumps the document's view counter.
func (s *documentService) RecordView(ctx context.Context, documentID string) error {
	return s.repo.IncrementViews(ctx, documentID)
}

// RecordDownload bumps the document's download counter.
func (s *documentService) RecordDownload(ctx context.Context, documentID string) error {
	return s.repo.IncrementDownloads(ctx, documentID)
}
