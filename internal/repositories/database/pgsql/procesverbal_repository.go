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

type PgxProcesVerbalRepository struct {
	BaseRepository
}

func newPgxProcesVerbalRepository(db *pgxpool.Pool) portsrepo.ProcesVerbalRepositoryFacade {
	return &PgxProcesVerbalRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ProcesVerbalRepositoryFacade = (*PgxProcesVerbalRepository)(nil)

const procesVerbalColumns = `proces_verbal_id, document_id, meeting_date, participants, agenda, decisions, location, meeting_type, next_meeting_date, decided_actions, author_id,
	created_at, created_by, last_updated_at, last_updated_by`

func scanProcesVerbal(row pgx.Row) (*models.ProcesVerbal, error) {
	var m models.ProcesVerbal
	err := row.Scan(
		&m.ProcesVerbalID, &m.DocumentID, &m.MeetingDate, &m.Participants, &m.Agenda, &m.Decisions, &m.Location, &m.MeetingType, &m.NextMeetingDate, &m.DecidedActions, &m.AuthorID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxProcesVerbalRepository) SaveProcesVerbal(ctx context.Context, pv domain.ProcesVerbal) error {
	m := mapping.ToModelProcesVerbal(pv)
	query := `
        INSERT INTO proces_verbaux (` + procesVerbalColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.ProcesVerbalID, m.DocumentID, m.MeetingDate, m.Participants, m.Agenda, m.Decisions, m.Location, m.MeetingType, m.NextMeetingDate, m.DecidedActions, m.AuthorID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("proces verbal already exists: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save proces verbal: %w", err)
	}
	return nil
}

func (r *PgxProcesVerbalRepository) FindProcesVerbalByID(ctx context.Context, procesVerbalID string) (*domain.ProcesVerbal, error) {
	query := `SELECT ` + procesVerbalColumns + ` FROM proces_verbaux WHERE proces_verbal_id = $1;`
	m, err := scanProcesVerbal(r.Pool.QueryRow(ctx, query, procesVerbalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find proces verbal by ID %s: %w", procesVerbalID, err)
	}
	pv := mapping.ToDomainProcesVerbal(*m)
	return &pv, nil
}

func (r *PgxProcesVerbalRepository) ListProcesVerbaux(ctx context.Context, limit int, pageToken string) ([]domain.ProcesVerbal, string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + procesVerbalColumns + ` FROM proces_verbaux`
	args := []any{}
	argPos := 1

	if pageToken != "" {
		createdAt, id, err := pagination.DecodeCursor(pageToken)
		if err != nil {
			return nil, "", fmt.Errorf("invalid page token: %w", apperrors.ErrValidation)
		}
		query += fmt.Sprintf(" WHERE (created_at, proces_verbal_id) < ($%d, $%d)", argPos, argPos+1)
		args = append(args, createdAt, id)
		argPos += 2
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC, proces_verbal_id DESC LIMIT $%d;", argPos)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to query proces verbaux: %w", err)
	}
	defer rows.Close()

	ms := []models.ProcesVerbal{}
	for rows.Next() {
		m, err := scanProcesVerbal(rows)
		if err != nil {
			return nil, "", fmt.Errorf("failed to scan proces verbal row: %w", err)
		}
		ms = append(ms, *m)
	}
	if rows.Err() != nil {
		return nil, "", fmt.Errorf("error iterating proces verbal rows: %w", rows.Err())
	}

	nextToken := ""
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		nextToken = pagination.EncodeCursor(last.CreatedAt, last.ProcesVerbalID)
	}

	return mapping.ToDomainProcesVerbalSlice(ms), nextToken, nil
}

func (r *PgxProcesVerbalRepository) UpdateProcesVerbal(ctx context.Context, pv domain.ProcesVerbal) error {
	m := mapping.ToModelProcesVerbal(pv)
	query := `
        UPDATE proces_verbaux
        SET meeting_date = $1, participants = $2, agenda = $3, decisions = $4,
            location = $5, meeting_type = $6, next_meeting_date = $7, decided_actions = $8,
            last_updated_at = $9, last_updated_by = $10
        WHERE proces_verbal_id = $11;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.MeetingDate, m.Participants, m.Agenda, m.Decisions,
		m.Location, m.MeetingType, m.NextMeetingDate, m.DecidedActions,
		m.LastUpdatedAt, m.LastUpdatedBy,
		m.ProcesVerbalID,
	)
	if err != nil {
		return fmt.Errorf("failed to update proces verbal: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("proces verbal not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
