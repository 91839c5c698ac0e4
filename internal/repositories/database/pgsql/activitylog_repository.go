package pgsql

import (
	"context"
	"fmt"

	"github.com/aerodoc/backend/internal/apperrors"
	"github.com/aerodoc/backend/internal/core/domain"
	portsrepo "github.com/aerodoc/backend/internal/core/ports/repositories"
	"github.com/aerodoc/backend/internal/models"
	"github.com/aerodoc/backend/internal/utils/mapping"
	"github.com/aerodoc/backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxActivityLogRepository struct {
	BaseRepository
}

func newPgxActivityLogRepository(db *pgxpool.Pool) portsrepo.ActivityLogRepositoryFacade {
	return &PgxActivityLogRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ActivityLogRepositoryFacade = (*PgxActivityLogRepository)(nil)

const activityLogColumns = `log_id, action, details, entity_type, entity_id, user_id, timestamp, ip_address, user_agent`

func scanActivityLog(row pgx.Row) (*models.ActivityLog, error) {
	var m models.ActivityLog
	err := row.Scan(
		&m.LogID, &m.Action, &m.Details, &m.EntityType, &m.EntityID, &m.UserID, &m.Timestamp, &m.IPAddress, &m.UserAgent,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// AppendActivityLog inserts one audit entry. The table is append-only.
func (r *PgxActivityLogRepository) AppendActivityLog(ctx context.Context, entry domain.ActivityLog) error {
	m := mapping.ToModelActivityLog(entry)
	query := `
        INSERT INTO activity_logs (` + activityLogColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.LogID, m.Action, m.Details, m.EntityType, m.EntityID, m.UserID, m.Timestamp, m.IPAddress, m.UserAgent,
	)
	if err != nil {
		return fmt.Errorf("failed to append activity log: %w", err)
	}
	return nil
}

func (r *PgxActivityLogRepository) ListActivityLogs(ctx context.Context, filter domain.ActivityLogFilter, limit int, pageToken string) ([]domain.ActivityLog, string, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT ` + activityLogColumns + ` FROM activity_logs WHERE 1=1`
	args := []any{}
	argPos := 1

	addArg := func(clause string, value any) {
		query += fmt.Sprintf(" AND "+clause, argPos)
		args = append(args, value)
		argPos++
	}

	if filter.UserID != "" {
		addArg("user_id = $%d", filter.UserID)
	}
	if filter.EntityType != "" {
		addArg("entity_type = $%d", string(filter.EntityType))
	}
	if filter.EntityID != "" {
		addArg("entity_id = $%d", filter.EntityID)
	}
	if filter.Action != "" {
		addArg("action = $%d", filter.Action)
	}

	if pageToken != "" {
		ts, id, err := pagination.DecodeCursor(pageToken)
		if err != nil {
			return nil, "", fmt.Errorf("invalid page token: %w", apperrors.ErrValidation)
		}
		query += fmt.Sprintf(" AND (timestamp, log_id) < ($%d, $%d)", argPos, argPos+1)
		args = append(args, ts, id)
		argPos += 2
	}

	query += fmt.Sprintf(" ORDER BY timestamp DESC, log_id DESC LIMIT $%d;", argPos)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to query activity logs: %w", err)
	}
	defer rows.Close()

	ms := []models.ActivityLog{}
	for rows.Next() {
		m, err := scanActivityLog(rows)
		if err != nil {
			return nil, "", fmt.Errorf("failed to scan activity log row: %w", err)
		}
		ms = append(ms, *m)
	}
	if rows.Err() != nil {
		return nil, "", fmt.Errorf("error iterating activity log rows: %w", rows.Err())
	}

	nextToken := ""
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		nextToken = pagination.EncodeCursor(last.Timestamp, last.LogID)
	}

	return mapping.ToDomainActivityLogSlice(ms), nextToken, nil
}
