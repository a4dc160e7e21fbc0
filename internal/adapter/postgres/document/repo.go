// Package document implements the Document and DocumentVersion repository
// using PostgreSQL, including version number assignment.
package document

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/adminos-backend/internal/adapter/postgres"
	"github.com/heartmarshall/adminos-backend/internal/domain"
)

const (
	entityDocument = "document"
	entityVersion  = "document_version"
)

// Repo provides document persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new document repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type documentRow struct {
	ID          uuid.UUID `db:"id"`
	RegisterID  uuid.UUID `db:"register_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r documentRow) toDomain() domain.Document {
	return domain.Document{
		ID:          r.ID,
		RegisterID:  r.RegisterID,
		Title:       r.Title,
		Description: r.Description,
		Timestamps:  domain.Timestamps{CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt},
	}
}

type versionRow struct {
	ID            uuid.UUID  `db:"id"`
	DocumentID    uuid.UUID  `db:"document_id"`
	DocumentTitle string     `db:"document_title"`
	RegisterID    uuid.UUID  `db:"register_id"`
	RegisterName  string     `db:"register_name"`
	Version       int        `db:"version"`
	FilePath      string     `db:"file_path"`
	ContentType   string     `db:"content_type"`
	SizeBytes     int64      `db:"size_bytes"`
	UploadedBy    *uuid.UUID `db:"uploaded_by"`
	Notes         string     `db:"notes"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

func (r versionRow) toDomain() domain.DocumentVersion {
	return domain.DocumentVersion{
		ID:            r.ID,
		DocumentID:    r.DocumentID,
		DocumentTitle: r.DocumentTitle,
		RegisterID:    r.RegisterID,
		RegisterName:  r.RegisterName,
		Version:       r.Version,
		FilePath:      r.FilePath,
		ContentType:   r.ContentType,
		SizeBytes:     r.SizeBytes,
		UploadedBy:    r.UploadedBy,
		Notes:         r.Notes,
		Timestamps:    domain.Timestamps{CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt},
	}
}

const selectVersion = `
SELECT v.id, v.document_id, d.title AS document_title, d.register_id, r.name AS register_name,
       v.version, v.file_path, v.content_type, v.size_bytes, v.uploaded_by, v.notes,
       v.created_at, v.updated_at
  FROM document_versions v
  JOIN documents d ON d.id = v.document_id
  JOIN registers r ON r.id = d.register_id`

// ---------------------------------------------------------------------------
// Documents
// ---------------------------------------------------------------------------

// Create inserts a document container. A duplicate (register, title) pair
// returns domain.ErrAlreadyExists; an unknown register domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, d domain.Document) (domain.Document, error) {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}

	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`INSERT INTO documents (id, register_id, title, description, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		d.ID, d.RegisterID, d.Title, d.Description, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return domain.Document{}, postgres.MapError(err, entityDocument, d.ID)
	}
	return d, nil
}

// GetByID returns a document by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Document, error) {
	var row documentRow
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`SELECT id, register_id, title, description, created_at, updated_at
		   FROM documents WHERE id = $1`,
		id,
	).Scan(&row.ID, &row.RegisterID, &row.Title, &row.Description, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return domain.Document{}, postgres.MapError(err, entityDocument, id)
	}
	return row.toDomain(), nil
}

// ---------------------------------------------------------------------------
// Versions
// ---------------------------------------------------------------------------

// CreateVersion inserts v with the next free version number for its document,
// computed as 1 + max(existing) in the same statement. A concurrent writer
// that claimed the same number surfaces as domain.ErrConflict; the caller
// retries in a fresh transaction. v.Version is ignored.
func (r *Repo) CreateVersion(ctx context.Context, v domain.DocumentVersion) (domain.DocumentVersion, error) {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}

	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`INSERT INTO document_versions
		    (id, document_id, version, file_path, content_type, size_bytes, uploaded_by, notes, created_at, updated_at)
		 SELECT $1::uuid, $2::uuid, COALESCE(MAX(version), 0) + 1, $3::text, $4::text, $5::bigint,
		        $6::uuid, $7::text, $8::timestamptz, $9::timestamptz
		   FROM document_versions
		  WHERE document_id = $2::uuid
		 RETURNING version`,
		v.ID, v.DocumentID, v.FilePath, v.ContentType, v.SizeBytes, v.UploadedBy, v.Notes, v.CreatedAt, v.UpdatedAt,
	).Scan(&v.Version)
	if err != nil {
		return domain.DocumentVersion{}, postgres.MapError(err, entityVersion, v.DocumentID)
	}
	return v, nil
}

// ListRecentVersionsByRegister returns the newest versions across all of the
// register's documents.
func (r *Repo) ListRecentVersionsByRegister(ctx context.Context, registerID uuid.UUID, limit int) ([]domain.DocumentVersion, error) {
	if limit <= 0 || limit > domain.MaxListResults {
		limit = domain.MaxListResults
	}
	return r.selectVersions(ctx,
		selectVersion+`
		 WHERE d.register_id = $1
		 ORDER BY v.created_at DESC, v.version DESC
		 LIMIT $2`,
		registerID, limit,
	)
}

// ListVersionsForBackup returns every version with its register and document
// names, ordered for a stable archive layout.
func (r *Repo) ListVersionsForBackup(ctx context.Context) ([]domain.DocumentVersion, error) {
	return r.selectVersions(ctx, selectVersion+` ORDER BY r.name, d.title, v.version`)
}

// ClearUploader detaches a removed user from the versions they uploaded.
func (r *Repo) ClearUploader(ctx context.Context, userID uuid.UUID) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE document_versions SET uploaded_by = NULL WHERE uploaded_by = $1`,
		userID,
	)
	if err != nil {
		return 0, postgres.MapError(err, entityVersion, userID)
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) selectVersions(ctx context.Context, query string, args ...any) ([]domain.DocumentVersion, error) {
	var rows []versionRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list document versions: %w", err)
	}

	result := make([]domain.DocumentVersion, len(rows))
	for i, row := range rows {
		result[i] = row.toDomain()
	}
	return result, nil
}
