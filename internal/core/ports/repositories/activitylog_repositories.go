package repositories

import (
	"context"

	"github.com/aerodoc/backend/internal/core/domain"
)

// ActivityLogWriter appends audit entries. There is deliberately no update or
// delete operation.
type ActivityLogWriter interface {
	// AppendActivityLog persists one audit entry.
	AppendActivityLog(ctx context.Context, entry domain.ActivityLog) error
}

// ActivityLogReader lists audit entries for display.
type ActivityLogReader interface {
	// ListActivityLogs retrieves audit entries matching the filter, newest first.
	ListActivityLogs(ctx context.Context, filter domain.ActivityLogFilter, limit int, pageToken string) ([]domain.ActivityLog, string, error)
}

// ActivityLogRepositoryFacade combines the audit repository interfaces.
type ActivityLogRepositoryFacade interface {
	ActivityLogWriter
	ActivityLogReader
}
