package services

import (
	"context"

	"github.com/aerodoc/backend/internal/core/domain"
)

// ActivityRecorderSvc appends audit entries.
type ActivityRecorderSvc interface {
	// Record appends one audit entry. Recording is best effort: failures are
	// logged and swallowed so they never fail the primary operation.
	Record(ctx context.Context, entry domain.ActivityLog)
}

// ActivityListerSvc lists audit entries for display.
type ActivityListerSvc interface {
	// ListActivityLogs retrieves a page of audit entries matching the filter,
	// newest first.
	ListActivityLogs(ctx context.Context, filter domain.ActivityLogFilter, limit int, pageToken string) ([]domain.ActivityLog, string, error)
}

// ActivityLogSvcFacade combines the audit service interfaces.
type ActivityLogSvcFacade interface {
	ActivityRecorderSvc
	ActivityListerSvc
}
