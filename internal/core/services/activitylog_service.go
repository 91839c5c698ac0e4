package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aerodoc/backend/internal/core/domain"
	portsrepo "github.com/aerodoc/backend/internal/core/ports/repositories"
	portssvc "github.com/aerodoc/backend/internal/core/ports/services"
	"github.com/aerodoc/backend/internal/middleware"
	"github.com/google/uuid"
)

type activityLogService struct {
	BaseService
	repo portsrepo.ActivityLogRepositoryFacade
}

// NewActivityLogService creates the append-only audit service.
func NewActivityLogService(repo portsrepo.ActivityLogRepositoryFacade) portssvc.ActivityLogSvcFacade {
	return &activityLogService{repo: repo}
}

// Record appends one audit entry. Failures are logged and swallowed so the
// triggering business operation still succeeds.
func (s *activityLogService) Record(ctx context.Context, entry domain.ActivityLog) {
	if entry.LogID == "" {
		entry.LogID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	if meta, ok := middleware.GetRequestMetaFromCtx(ctx); ok {
		if entry.IPAddress == "" {
			entry.IPAddress = meta.IPAddress
		}
		if entry.UserAgent == "" {
			entry.UserAgent = meta.UserAgent
		}
	}

	if err := s.repo.AppendActivityLog(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to append activity log entry",
			"action", entry.Action,
			"entity_type", string(entry.EntityType),
			"entity_id", entry.EntityID,
		)
	}
}

// ListActivityLogs retrieves a page of audit entries, newest first.
func (s *activityLogService) ListActivityLogs(ctx context.Context, filter domain.ActivityLogFilter, limit int, pageToken string) ([]domain.ActivityLog, string, error) {
	if limit <= 0 {
		limit = 50
	}
	logs, nextToken, err := s.repo.ListActivityLogs(ctx, filter, limit, pageToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list activity logs")
		return nil, "", fmt.Errorf("failed to list activity logs: %w", err)
	}
	if logs == nil {
		logs = []domain.ActivityLog{}
	}
	return logs, nextToken, nil
}
