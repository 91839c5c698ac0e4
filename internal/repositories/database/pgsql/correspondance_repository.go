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

type PgxCorrespondanceRepository struct {
	BaseRepository
}

func newPgxCorrespondanceRepository(db *pgxpool.Pool) portsrepo.CorrespondanceRepositoryFacade {
	return &PgxCorrespondanceRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.CorrespondanceRepositoryFacade = (*PgxCorrespondanceRepository)(nil)

const correspondanceColumns = `correspondance_id, qr_code, direction, from_address, to_address, subject, content, priority, status, airport,
	code, company_code, scope_code, department_code, sub_department_code, document_type_code, language_code, sequence_number,
	attachments, tags, decided_actions, author_id,
	created_at, created_by, last_updated_at, last_updated_by`

func scanCorrespondance(row pgx.Row) (*models.Correspondance, error) {
	var m models.Correspondance
	err := row.Scan(
		&m.CorrespondanceID, &m.QRCode, &m.Direction, &m.FromAddress, &m.ToAddress, &m.Subject, &m.Content, &m.Priority, &m.Status, &m.Airport,
		&m.Code, &m.CompanyCode, &m.ScopeCode, &m.DepartmentCode, &m.SubDepartmentCode, &m.DocumentTypeCode, &m.LanguageCode, &m.SequenceNumber,
		&m.Attachments, &m.Tags, &m.DecidedActions, &m.AuthorID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxCorrespondanceRepository) SaveCorrespondance(ctx context.Context, corr domain.Correspondance) error {
	m := mapping.ToModelCorrespondance(corr)
	query := `
        INSERT INTO correspondances (` + correspondanceColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.CorrespondanceID, m.QRCode, m.Direction, m.FromAddress, m.ToAddress, m.Subject, m.Content, m.Priority, m.Status, m.Airport,
		m.Code, m.CompanyCode, m.ScopeCode, m.DepartmentCode, m.SubDepartmentCode, m.DocumentTypeCode, m.LanguageCode, m.SequenceNumber,
		m.Attachments, m.Tags, m.DecidedActions, m.AuthorID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("correspondence already exists: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save correspondence: %w", err)
	}
	return nil
}

func (r *PgxCorrespondanceRepository) FindCorrespondanceByID(ctx context.Context, correspondanceID string) (*domain.Correspondance, error) {
	query := `SELECT ` + correspondanceColumns + ` FROM correspondances WHERE correspondance_id = $1;`
	m, err := scanCorrespondance(r.Pool.QueryRow(ctx, query, correspondanceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find correspondence by ID %s: %w", correspondanceID, err)
	}
	corr := mapping.ToDomainCorrespondance(*m)
	return &corr, nil
}

func (r *PgxCorrespondanceRepository) ListCorrespondances(ctx context.Context, filter domain.CorrespondanceFilter, limit int, pageToken string) ([]domain.Correspondance, string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + correspondanceColumns + ` FROM correspondances WHERE 1=1`
	args := []any{}
	argPos := 1

	addArg := func(clause string, value any) {
		query += fmt.Sprintf(" AND "+clause, argPos)
		args = append(args, value)
		argPos++
	}

	if filter.Direction != "" {
		addArg("direction = $%d", string(filter.Direction))
	}
	if filter.Status != "" {
		addArg("status = $%d", string(filter.Status))
	}
	if filter.Priority != "" {
		addArg("priority = $%d", string(filter.Priority))
	}
	if filter.Airport != "" {
		addArg("airport = $%d", filter.Airport)
	}
	if filter.Search != "" {
		query += fmt.Sprintf(" AND (subject ILIKE $%d OR content ILIKE $%d)", argPos, argPos)
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	if pageToken != "" {
		createdAt, id, err := pagination.DecodeCursor(pageToken)
		if err != nil {
			return nil, "", fmt.Errorf("invalid page token: %w", apperrors.ErrValidation)
		}
		query += fmt.Sprintf(" AND (created_at, correspondance_id) < ($%d, $%d)", argPos, argPos+1)
		args = append(args, createdAt, id)
		argPos += 2
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC, correspondance_id DESC LIMIT $%d;", argPos)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to query correspondences: %w", err)
	}
	defer rows.Close()

	ms := []models.Correspondance{}
	for rows.Next() {
		m, err := scanCorrespondance(rows)
		if err != nil {
			return nil, "", fmt.Errorf("failed to scan correspondence row: %w", err)
		}
		ms = append(ms, *m)
	}
	if rows.Err() != nil {
		return nil, "", fmt.Errorf("error iterating correspondence rows: %w", rows.Err())
	}

	nextToken := ""
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		nextToken = pagination.EncodeCursor(last.CreatedAt, last.CorrespondanceID)
	}

	return mapping.ToDomainCorrespondanceSlice(ms), nextToken, nil
}

func (r *PgxCorrespondanceRepository) UpdateCorrespondance(ctx context.Context, corr domain.Correspondance) error {
	m := mapping.ToModelCorrespondance(corr)
	query := `
        UPDATE correspondances
        SET subject = $1, content = $2, priority = $3, status = $4,
            attachments = $5, tags = $6, decided_actions = $7,
            last_updated_at = $8, last_updated_by = $9
        WHERE correspondance_id = $10;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Subject, m.Content, m.Priority, m.Status,
		m.Attachments, m.Tags, m.DecidedActions,
		m.LastUpdatedAt, m.LastUpdatedBy,
		m.CorrespondanceID,
	)
	if err != nil {
		return fmt.Errorf("failed to update correspondence: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("correspondence not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxCorrespondanceRepository) DeleteCorrespondance(ctx context.Context, correspondanceID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM correspondances WHERE correspondance_id = $1;`, correspondanceID)
	if err != nil {
		return fmt.Errorf("failed to delete correspondence: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("correspondence not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
