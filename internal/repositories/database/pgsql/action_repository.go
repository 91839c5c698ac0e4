package pgsql

import (
	"context"
	"errors"
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

type PgxActionRepository struct {
	BaseRepository
}

func newPgxActionRepository(db *pgxpool.Pool) portsrepo.ActionRepositoryFacade {
	return &PgxActionRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ActionRepositoryFacade = (*PgxActionRepository)(nil)

const actionColumns = `action_id, title, description, assigned_to, due_date, status, priority, progress,
	parent_document_id, estimated_hours, actual_hours,
	created_at, created_by, last_updated_at, last_updated_by`

func scanAction(row pgx.Row) (*models.Action, error) {
	var m models.Action
	err := row.Scan(
		&m.ActionID, &m.Title, &m.Description, &m.AssignedTo, &m.DueDate, &m.Status, &m.Priority, &m.Progress,
		&m.ParentDocumentID, &m.EstimatedHours, &m.ActualHours,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxActionRepository) SaveAction(ctx context.Context, action domain.Action) error {
	m := mapping.ToModelAction(action)
	query := `
        INSERT INTO actions (` + actionColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.ActionID, m.Title, m.Description, m.AssignedTo, m.DueDate, m.Status, m.Priority, m.Progress,
		m.ParentDocumentID, m.EstimatedHours, m.ActualHours,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("action already exists: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save action: %w", err)
	}
	return nil
}

func (r *PgxActionRepository) FindActionByID(ctx context.Context, actionID string) (*domain.Action, error) {
	query := `SELECT ` + actionColumns + ` FROM actions WHERE action_id = $1;`
	m, err := scanAction(r.Pool.QueryRow(ctx, query, actionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find action by ID %s: %w", actionID, err)
	}
	action := mapping.ToDomainAction(*m)
	return &action, nil
}

func (r *PgxActionRepository) ListActions(ctx context.Context, filter domain.ActionFilter, limit int, pageToken string) ([]domain.Action, string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + actionColumns + ` FROM actions WHERE 1=1`
	args := []any{}
	argPos := 1

	addArg := func(clause string, value any) {
		query += fmt.Sprintf(" AND "+clause, argPos)
		args = append(args, value)
		argPos++
	}

	if filter.AssigneeID != "" {
		addArg("$%d = ANY(assigned_to)", filter.AssigneeID)
	}
	if filter.Status != "" {
		addArg("status = $%d", string(filter.Status))
	}
	if filter.Priority != "" {
		addArg("priority = $%d", string(filter.Priority))
	}
	if filter.ParentDocumentID != "" {
		addArg("parent_document_id = $%d", filter.ParentDocumentID)
	}

	if pageToken != "" {
		createdAt, id, err := pagination.DecodeCursor(pageToken)
		if err != nil {
			return nil, "", fmt.Errorf("invalid page token: %w", apperrors.ErrValidation)
		}
		query += fmt.Sprintf(" AND (created_at, action_id) < ($%d, $%d)", argPos, argPos+1)
		args = append(args, createdAt, id)
		argPos += 2
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC, action_id DESC LIMIT $%d;", argPos)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to query actions: %w", err)
	}
	defer rows.Close()

	ms := []models.Action{}
	for rows.Next() {
		m, err := scanAction(rows)
		if err != nil {
			return nil, "", fmt.Errorf("failed to scan action row: %w", err)
		}
		ms = append(ms, *m)
	}
	if rows.Err() != nil {
		return nil, "", fmt.Errorf("error iterating action rows: %w", rows.Err())
	}

	nextToken := ""
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		nextToken = pagination.EncodeCursor(last.CreatedAt, last.ActionID)
	}

	return mapping.ToDomainActionSlice(ms), nextToken, nil
}

func (r *PgxActionRepository) UpdateAction(ctx context.Context, action domain.Action) error {
	m := mapping.ToModelAction(action)
	query := `
        UPDATE actions
        SET title = $1, description = $2, assigned_to = $3, due_date = $4,
            status = $5, priority = $6, progress = $7,
            estimated_hours = $8, actual_hours = $9,
            last_updated_at = $10, last_updated_by = $11
        WHERE action_id = $12;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Title, m.Description, m.AssignedTo, m.DueDate,
		m.Status, m.Priority, m.Progress,
		m.EstimatedHours, m.ActualHours,
		m.LastUpdatedAt, m.LastUpdatedBy,
		m.ActionID,
	)
	if err != nil {
		return fmt.Errorf("failed to update action: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("action not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxActionRepository) DeleteAction(ctx context.Context, actionID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM actions WHERE action_id = $1;`, actionID)
	if err != nil {
		return fmt.Errorf("failed to delete action: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("action not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
