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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCodeConfigRepository struct {
	BaseRepository
}

func newPgxCodeConfigRepository(db *pgxpool.Pool) portsrepo.CodeConfigRepositoryFacade {
	return &PgxCodeConfigRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.CodeConfigRepositoryFacade = (*PgxCodeConfigRepository)(nil)

// GetActiveConfig returns the single codification configuration row.
func (r *PgxCodeConfigRepository) GetActiveConfig(ctx context.Context) (*domain.DocumentCodeConfig, error) {
	query := `
        SELECT config_id, company_code, scopes, document_types, departments, sub_departments, languages,
               created_at, created_by, last_updated_at, last_updated_by
        FROM document_code_config
        ORDER BY last_updated_at DESC
        LIMIT 1;
    `
	var m models.DocumentCodeConfig
	err := r.Pool.QueryRow(ctx, query).Scan(
		&m.ConfigID, &m.CompanyCode, &m.Scopes, &m.DocumentTypes, &m.Departments, &m.SubDepartments, &m.Languages,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load codification config: %w", err)
	}
	cfg := mapping.ToDomainDocumentCodeConfig(m)
	return &cfg, nil
}

func (r *PgxCodeConfigRepository) SaveConfig(ctx context.Context, cfg domain.DocumentCodeConfig) error {
	m := mapping.ToModelDocumentCodeConfig(cfg)
	query := `
        INSERT INTO document_code_config (config_id, company_code, scopes, document_types, departments, sub_departments, languages,
                                          created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.ConfigID, m.CompanyCode, m.Scopes, m.DocumentTypes, m.Departments, m.SubDepartments, m.Languages,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("codification config already exists: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save codification config: %w", err)
	}
	return nil
}

func (r *PgxCodeConfigRepository) UpdateConfig(ctx context.Context, cfg domain.DocumentCodeConfig) error {
	m := mapping.ToModelDocumentCodeConfig(cfg)
	query := `
        UPDATE document_code_config
        SET company_code = $1, scopes = $2, document_types = $3, departments = $4,
            sub_departments = $5, languages = $6, last_updated_at = $7, last_updated_by = $8
        WHERE config_id = $9;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.CompanyCode, m.Scopes, m.DocumentTypes, m.Departments,
		m.SubDepartments, m.Languages, m.LastUpdatedAt, m.LastUpdatedBy,
		m.ConfigID,
	)
	if err != nil {
		return fmt.Errorf("failed to update codification config: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("codification config not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

// AllocateSequence reserves the next sequence number for the segment tuple in
// one atomic upsert. Concurrent callers on the same tuple serialize on the
// row and never receive the same number.
func (r *PgxCodeConfigRepository) AllocateSequence(ctx context.Context, segments domain.CodeSegments) (int, error) {
	query := `
        INSERT INTO document_sequences (company_code, scope_code, department_code, document_type_code, language_code, next_seq, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, 1, now())
        ON CONFLICT (company_code, scope_code, department_code, document_type_code, language_code)
        DO UPDATE SET next_seq = document_sequences.next_seq + 1, last_updated_at = now()
        RETURNING next_seq;
    `
	tuple := segments.SequenceTuple()
	var seq int
	err := r.Pool.QueryRow(ctx, query, tuple[0], tuple[1], tuple[2], tuple[3], tuple[4]).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate sequence: %w", err)
	}
	return seq, nil
}

// PeekSequence returns the number AllocateSequence would return without
// reserving it.
func (r *PgxCodeConfigRepository) PeekSequence(ctx context.Context, segments domain.CodeSegments) (int, error) {
	query := `
        SELECT next_seq + 1
        FROM document_sequences
        WHERE company_code = $1 AND scope_code = $2 AND department_code = $3 AND document_type_code = $4 AND language_code = $5;
    `
	tuple := segments.SequenceTuple()
	var seq int
	err := r.Pool.QueryRow(ctx, query, tuple[0], tuple[1], tuple[2], tuple[3], tuple[4]).Scan(&seq)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 1, nil
		}
		return 0, fmt.Errorf("failed to peek sequence: %w", err)
	}
	return seq, nil
}
