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

type codificationService struct {
	BaseService
	repo     portsrepo.CodeConfigRepositoryFacade
	userSvc  portssvc.UserReaderSvc
	activity portssvc.ActivityRecorderSvc
}

// NewCodificationService creates the document numbering service.
func NewCodificationService(repo portsrepo.CodeConfigRepositoryFacade, userSvc portssvc.UserReaderSvc, activity portssvc.ActivityRecorderSvc) portssvc.CodificationSvcFacade {
	return &codificationService{repo: repo, userSvc: userSvc, activity: activity}
}

// validateSegments checks every segment against the active configuration.
// The first unknown segment produces an ErrValidation naming it.
func (s *codificationService) validateSegments(ctx context.Context, segments domain.CodeSegments) error {
	cfg, err := s.repo.GetActiveConfig(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("no active codification config: %w", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to load codification config: %w", err)
	}

	if segments.CompanyCode != cfg.CompanyCode {
		return fmt.Errorf("unknown company code %q: %w", segments.CompanyCode, apperrors.ErrValidation)
	}
	if !cfg.HasScope(segments.ScopeCode) {
		return fmt.Errorf("unknown scope code %q: %w", segments.ScopeCode, apperrors.ErrValidation)
	}
	if !cfg.HasDepartment(segments.DepartmentCode) {
		return fmt.Errorf("unknown department code %q: %w", segments.DepartmentCode, apperrors.ErrValidation)
	}
	if segments.SubDepartmentCode != "" && !cfg.HasSubDepartment(segments.SubDepartmentCode) {
		return fmt.Errorf("unknown sub-department code %q: %w", segments.SubDepartmentCode, apperrors.ErrValidation)
	}
	if !cfg.HasDocumentType(segments.DocumentTypeCode) {
		return fmt.Errorf("unknown document type code %q: %w", segments.DocumentTypeCode, apperrors.ErrValidation)
	}
	if !cfg.HasLanguage(segments.LanguageCode) {
		return fmt.Errorf("unknown language code %q: %w", segments.LanguageCode, apperrors.ErrValidation)
	}
	return nil
}

// GenerateCode validates the segments, reserves the next sequence number for
// the tuple and returns the composed code. The sequence allocation is a single
// atomic SQL upsert, so concurrent callers never share a number.
func (s *codificationService) GenerateCode(ctx context.Context, segments domain.CodeSegments) (string, int, error) {
	if err := s.validateSegments(ctx, segments); err != nil {
		return "", 0, err
	}

	seq, err := s.repo.AllocateSequence(ctx, segments)
	if err != nil {
		s.LogError(ctx, err, "Failed to allocate code sequence")
		return "", 0, fmt.Errorf("failed to allocate sequence: %w", err)
	}

	code := segments.CodeWith(seq)
	s.LogDebug(ctx, "Generated document code", "code", code)
	return code, seq, nil
}

// PreviewCode composes the code the next GenerateCode call would produce
// without reserving the sequence number.
func (s *codificationService) PreviewCode(ctx context.Context, segments domain.CodeSegments) (string, int, error) {
	if err := s.validateSegments(ctx, segments); err != nil {
		return "", 0, err
	}

	seq, err := s.repo.PeekSequence(ctx, segments)
	if err != nil {
		s.LogError(ctx, err, "Failed to peek code sequence")
		return "", 0, fmt.Errorf("failed to peek sequence: %w", err)
	}

	return segments.CodeWith(seq), seq, nil
}

// GetCodeConfig retrieves the active codification configuration.
func (s *codificationService) GetCodeConfig(ctx context.Context) (*domain.DocumentCodeConfig, error) {
	cfg, err := s.repo.GetActiveConfig(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load codification config")
		}
		return nil, err
	}
	return cfg, nil
}

// UpdateCodeConfig replaces the configured option lists. Admin only.
func (s *codificationService) UpdateCodeConfig(ctx context.Context, req dto.UpdateCodeConfigRequest, requestingUserID string) (*domain.DocumentCodeConfig, error) {
	requester, err := s.userSvc.GetUserByID(ctx, requestingUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load requesting user: %w", err)
	}
	if !requester.Role.IsAdmin() {
		return nil, fmt.Errorf("only administrators may change the codification config: %w", apperrors.ErrForbidden)
	}

	now := time.Now()
	cfg := domain.DocumentCodeConfig{
		CompanyCode:    req.CompanyCode,
		Scopes:         dto.ToDomainCodeOptions(req.Scopes),
		DocumentTypes:  dto.ToDomainCodeOptions(req.DocumentTypes),
		Departments:    dto.ToDomainCodeOptions(req.Departments),
		SubDepartments: dto.ToDomainCodeOptions(req.SubDepartments),
		Languages:      dto.ToDomainCodeOptions(req.Languages),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	existing, err := s.repo.GetActiveConfig(ctx)
	switch {
	case err == nil:
		cfg.ConfigID = existing.ConfigID
		cfg.CreatedAt = existing.CreatedAt
		cfg.CreatedBy = existing.CreatedBy
		if err := s.repo.UpdateConfig(ctx, cfg); err != nil {
			s.LogError(ctx, err, "Failed to update codification config")
			return nil, fmt.Errorf("failed to update codification config: %w", err)
		}
	case errors.Is(err, apperrors.ErrNotFound):
		cfg.ConfigID = uuid.NewString()
		if err := s.repo.SaveConfig(ctx, cfg); err != nil {
			s.LogError(ctx, err, "Failed to save codification config")
			return nil, fmt.Errorf("failed to save codification config: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to load codification config: %w", err)
	}

	s.activity.Record(ctx, domain.ActivityLog{
		Action:     domain.ActivitySettingsUpdated,
		Details:    "Codification configuration updated",
		EntityType: domain.EntitySettings,
		EntityID:   cfg.ConfigID,
		UserID:     requestingUserID,
	})

	s.LogInfo(ctx, "Codification config updated", "config_id", cfg.ConfigID)
	return &cfg, nil
}
