package services

import (
	"context"

	"github.com/aerodoc/backend/internal/core/domain"
)

// ReportingService defines operations for generating aggregate reports.
type ReportingService interface {
	// Summary returns entity counts for the dashboard.
	Summary(ctx context.Context) (*domain.SummaryReport, error)
}
