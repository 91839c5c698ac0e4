package pgsql

import (
	"context"
	"fmt"

	"github.com/aerodoc/backend/internal/core/domain"
	portsrepo "github.com/aerodoc/backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

func (r *PgxReportingRepository) CountDocumentsByStatus(ctx context.Context) (map[domain.DocumentStatus]int64, error) {
	rows, err := r.Pool.Query(ctx, `SELECT status, COUNT(*) FROM documents GROUP BY status;`)
	if err != nil {
		return nil, fmt.Errorf("failed to count documents by status: %w", err)
	}
	defer rows.Close()

	counts := map[domain.DocumentStatus]int64{}
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan document status count: %w", err)
		}
		counts[domain.DocumentStatus(status)] = count
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating document status counts: %w", rows.Err())
	}
	return counts, nil
}

func (r *PgxReportingRepository) CountDocumentsByType(ctx context.Context) (map[domain.DocumentType]int64, error) {
	rows, err := r.Pool.Query(ctx, `SELECT doc_type, COUNT(*) FROM documents GROUP BY doc_type;`)
	if err != nil {
		return nil, fmt.Errorf("failed to count documents by type: %w", err)
	}
	defer rows.Close()

	counts := map[domain.DocumentType]int64{}
	for rows.Next() {
		var docType string
		var count int64
		if err := rows.Scan(&docType, &count); err != nil {
			return nil, fmt.Errorf("failed to scan document type count: %w", err)
		}
		counts[domain.DocumentType(docType)] = count
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating document type counts: %w", rows.Err())
	}
	return counts, nil
}

func (r *PgxReportingRepository) CountActionsByStatus(ctx context.Context) (map[domain.ActionStatus]int64, error) {
	rows, err := r.Pool.Query(ctx, `SELECT status, COUNT(*) FROM actions GROUP BY status;`)
	if err != nil {
		return nil, fmt.Errorf("failed to count actions by status: %w", err)
	}
	defer rows.Close()

	counts := map[domain.ActionStatus]int64{}
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan action status count: %w", err)
		}
		counts[domain.ActionStatus(status)] = count
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating action status counts: %w", rows.Err())
	}
	return counts, nil
}

func (r *PgxReportingRepository) CountCorrespondances(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM correspondances;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count correspondences: %w", err)
	}
	return count, nil
}

func (r *PgxReportingRepository) CountProcesVerbaux(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM proces_verbaux;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count proces verbaux: %w", err)
	}
	return count, nil
}

func (r *PgxReportingRepository) CountActiveUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE is_active = TRUE AND deleted_at IS NULL;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active users: %w", err)
	}
	return count, nil
}
