package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aerodoc/backend/internal/apperrors"
	"github.com/aerodoc/backend/internal/core/domain"
	portsrepo "github.com/aerodoc/backend/internal/core/ports/repositories"
	"github.com/aerodoc/backend/internal/models"
	"github.com/aerodoc/backend/internal/utils/mapping"
	"github.com/aerodoc/backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDocumentRepository struct {
	BaseRepository
}

func newPgxDocumentRepository(db *pgxpool.Pool) portsrepo.DocumentRepositoryFacade {
	return &PgxDocumentRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)

const documentColumns = `document_id, qr_code, title, doc_type, content, status, version,
	file_path, file_type, views_count, downloads_count,
	code, company_code, scope_code, department_code, sub_department_code, document_type_code, language_code, sequence_number,
	tags, airport, author_id, approved_by, approved_at,
	created_at, created_by, last_updated_at, last_updated_by`

func scanDocument(row pgx.Row) (*models.Document, error) {
	var m models.Document
	err := row.Scan(
		&m.DocumentID, &m.QRCode, &m.Title, &m.Type, &m.Content, &m.Status, &m.Version,
		&m.FilePath, &m.FileType, &m.ViewsCount, &m.DownloadsCount,
		&m.Code, &m.CompanyCode, &m.ScopeCode, &m.DepartmentCode, &m.SubDepartmentCode, &m.DocumentTypeCode, &m.LanguageCode, &m.SequenceNumber,
		&m.Tags, &m.Airport, &m.AuthorID, &m.ApprovedBy, &m.ApprovedAt,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxDocumentRepository) SaveDocument(ctx context.Context, doc domain.Document) error {
	m := mapping.ToModelDocument(doc)
	query := `
        INSERT INTO documents (` + documentColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.DocumentID, m.QRCode, m.Title, m.Type, m.Content, m.Status, m.Version,
		m.FilePath, m.FileType, m.ViewsCount, m.DownloadsCount,
		m.Code, m.CompanyCode, m.ScopeCode, m.DepartmentCode, m.SubDepartmentCode, m.DocumentTypeCode, m.LanguageCode, m.SequenceNumber,
		m.Tags, m.Airport, m.AuthorID, m.ApprovedBy, m.ApprovedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("document already exists: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

func (r *PgxDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE document_id = $1;`
	m, err := scanDocument(r.Pool.QueryRow(ctx, query, documentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find document by ID %s: %w", documentID, err)
	}
	doc := mapping.ToDomainDocument(*m)
	return &doc, nil
}

func (r *PgxDocumentRepository) FindDocumentByQRCode(ctx context.Context, qrCode string) (*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE qr_code = $1;`
	m, err := scanDocument(r.Pool.QueryRow(ctx, query, qrCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find document by QR code: %w", err)
	}
	doc := mapping.ToDomainDocument(*m)
	return &doc, nil
}

// ListDocuments pages documents newest first with a keyset cursor on
// (created_at, document_id).
func (r *PgxDocumentRepository) ListDocuments(ctx context.Context, filter domain.DocumentFilter, limit int, pageToken string) ([]domain.Document, string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + documentColumns + ` FROM documents WHERE 1=1`
	args := []any{}
	argPos := 1

	addArg := func(clause string, value any) {
		query += fmt.Sprintf(" AND "+clause, argPos)
		args = append(args, value)
		argPos++
	}

	if filter.Status != "" {
		addArg("status = $%d", string(filter.Status))
	}
	if filter.Type != "" {
		addArg("doc_type = $%d", string(filter.Type))
	}
	if filter.Airport != "" {
		addArg("airport = $%d", filter.Airport)
	}
	if filter.AuthorID != "" {
		addArg("author_id = $%d", filter.AuthorID)
	}
	if filter.Tag != "" {
		addArg("$%d = ANY(tags)", filter.Tag)
	}
	if len(filter.IDs) > 0 {
		addArg("document_id = ANY($%d)", filter.IDs)
	} else if filter.Search != "" {
		query += fmt.Sprintf(" AND (title ILIKE $%d OR content ILIKE $%d)", argPos, argPos)
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	if pageToken != "" {
		createdAt, id, err := pagination.DecodeCursor(pageToken)
		if err != nil {
			return nil, "", fmt.Errorf("invalid page token: %w", apperrors.ErrValidation)
		}
		query += fmt.Sprintf(" AND (created_at, document_id) < ($%d, $%d)", argPos, argPos+1)
		args = append(args, createdAt, id)
		argPos += 2
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC, document_id DESC LIMIT $%d;", argPos)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	ms := []models.Document{}
	for rows.Next() {
		m, err := scanDocument(rows)
		if err != nil {
			return nil, "", fmt.Errorf("failed to scan document row: %w", err)
		}
		ms = append(ms, *m)
	}
	if rows.Err() != nil {
		return nil, "", fmt.Errorf("error iterating document rows: %w", rows.Err())
	}

	nextToken := ""
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		nextToken = pagination.EncodeCursor(last.CreatedAt, last.DocumentID)
	}

	return mapping.ToDomainDocumentSlice(ms), nextToken, nil
}

// UpdateDocument rewrites the mutable columns. bumpVersion increments the
// stored version atomically on the SQL side.
func (r *PgxDocumentRepository) UpdateDocument(ctx context.Context, doc domain.Document, bumpVersion bool) error {
	m := mapping.ToModelDocument(doc)
	versionExpr := "version"
	if bumpVersion {
		versionExpr = "version + 1"
	}
	query := `
        UPDATE documents
        SET title = $1, content = $2, status = $3, version = ` + versionExpr + `,
            file_path = $4, file_type = $5,
            code = $6, company_code = $7, scope_code = $8, department_code = $9,
            sub_department_code = $10, document_type_code = $11, language_code = $12, sequence_number = $13,
            tags = $14, last_updated_at = $15, last_updated_by = $16
        WHERE document_id = $17;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Title, m.Content, m.Status,
		m.FilePath, m.FileType,
		m.Code, m.CompanyCode, m.ScopeCode, m.DepartmentCode,
		m.SubDepartmentCode, m.DocumentTypeCode, m.LanguageCode, m.SequenceNumber,
		m.Tags, m.LastUpdatedAt, m.LastUpdatedBy,
		m.DocumentID,
	)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("document not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxDocumentRepository) DeleteDocument(ctx context.Context, documentID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM documents WHERE document_id = $1;`, documentID)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("document not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

// MarkApproved records the approver and moves DRAFT rows to ACTIVE.
func (r *PgxDocumentRepository) MarkApproved(ctx context.Context, documentID, approverID string, approvedAt time.Time) error {
	query := `
        UPDATE documents
        SET approved_by = $1, approved_at = $2,
            status = CASE WHEN status = 'DRAFT' THEN 'ACTIVE' ELSE status END,
            last_updated_at = $2, last_updated_by = $1
        WHERE document_id = $3;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, approverID, approvedAt, documentID)
	if err != nil {
		return fmt.Errorf("failed to approve document: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("document not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxDocumentRepository) IncrementViews(ctx context.Context, documentID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `UPDATE documents SET views_count = views_count + 1 WHERE document_id = $1;`, documentID)
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("document not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxDocumentRepository) IncrementDownloads(ctx context.Context, documentID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `UPDATE documents SET downloads_count = downloads_count + 1 WHERE document_id = $1;`, documentID)
	if err != nil {
		return fmt.Errorf("failed to increment downloads: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("document not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
