package services

import (
	"context"
	"fmt"

	"github.com/aerodoc/backend/internal/core/domain"
	portsrepo "github.com/aerodoc/backend/internal/core/ports/repositories"
	portssvc "github.com/aerodoc/backend/internal/core/ports/services"
)

type reportingService struct {
	BaseService
	repo portsrepo.ReportingRepository
}

// NewReportingService creates the dashboard reporting service.
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.ReportingService {
	return &reportingService{repo: repo}
}

// Summary aggregates entity counts for the dashboard. Reads only, no
// activity entries.
func (s *reportingService) Summary(ctx context.Context) (*domain.SummaryReport, error) {
	docsByStatus, err := s.repo.CountDocumentsByStatus(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count documents by status")
		return nil, fmt.Errorf("failed to count documents by status: %w", err)
	}
	docsByType, err := s.repo.CountDocumentsByType(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count documents by type")
		return nil, fmt.Errorf("failed to count documents by type: %w", err)
	}
	actionsByStatus, err := s.repo.CountActionsByStatus(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count actions by status")
		return nil, fmt.Errorf("failed to count actions by status: %w", err)
	}
	correspondances, err := s.repo.CountCorrespondances(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count correspondences")
		return nil, fmt.Errorf("failed to count correspondences: %w", err)
	}
	procesVerbaux, err := s.repo.CountProcesVerbaux(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count proces verbaux")
		return nil, fmt.Errorf("failed to count proces verbaux: %w", err)
	}
	activeUsers, err := s.repo.CountActiveUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count active users")
		return nil, fmt.Errorf("failed to count active users: %w", err)
	}

	return &domain.SummaryReport{
		DocumentsByStatus: docsByStatus,
		DocumentsByType:   docsByType,
		ActionsByStatus:   actionsByStatus,
		Correspondances:   correspondances,
		ProcesVerbaux:     procesVerbaux,
		ActiveUsers:       activeUsers,
	}, nil
}
