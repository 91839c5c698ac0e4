package repositories

import (
	"context"

	"github.com/aerodoc/backend/internal/core/domain"
)

// ReportingRepository runs the aggregate count queries behind reports.
type ReportingRepository interface {
	// CountDocumentsByStatus groups non-deleted documents by status.
	CountDocumentsByStatus(ctx context.Context) (map[domain.DocumentStatus]int64, error)

	// CountDocumentsByType groups non-deleted documents by type.
	CountDocumentsByType(ctx context.Context) (map[domain.DocumentType]int64, error)

	// CountActionsByStatus groups actions by status.
	CountActionsByStatus(ctx context.Context) (map[domain.ActionStatus]int64, error)

	// CountCorrespondances returns the total number of correspondences.
	CountCorrespondances(ctx context.Context) (int64, error)

	// CountProcesVerbaux returns the total number of procès-verbaux.
	CountProcesVerbaux(ctx context.Context) (int64, error)

	// CountActiveUsers returns the number of active, non-deleted users.
	CountActiveUsers(ctx context.Context) (int64, error)
}
