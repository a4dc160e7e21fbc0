// Package register implements the Register repository using PostgreSQL.
// It covers register creation, lookup and the filtered register search.
package register

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/adminos-backend/internal/adapter/postgres"
	"github.com/heartmarshall/adminos-backend/internal/domain"
)

const entity = "register"

var columns = []string{"r.id", "r.name", "r.description", "r.is_active", "r.created_at", "r.updated_at"}

// Repo provides register persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new register repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type registerRow struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r registerRow) toDomain() domain.Register {
	return domain.Register{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		IsActive:    r.IsActive,
		Timestamps:  domain.Timestamps{CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt},
	}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a register. A nil ID is generated.
func (r *Repo) Create(ctx context.Context, reg domain.Register) (domain.Register, error) {
	if reg.ID == uuid.Nil {
		reg.ID = uuid.New()
	}

	var row registerRow
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`INSERT INTO registers (id, name, description, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, name, description, is_active, created_at, updated_at`,
		reg.ID, reg.Name, reg.Description, reg.IsActive, reg.CreatedAt, reg.UpdatedAt,
	).Scan(&row.ID, &row.Name, &row.Description, &row.IsActive, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return domain.Register{}, postgres.MapError(err, entity, reg.ID)
	}

	return row.toDomain(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a register by primary key or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Register, error) {
	var row registerRow
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`SELECT id, name, description, is_active, created_at, updated_at
		   FROM registers WHERE id = $1`,
		id,
	).Scan(&row.ID, &row.Name, &row.Description, &row.IsActive, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return domain.Register{}, postgres.MapError(err, entity, id)
	}

	return row.toDomain(), nil
}

// Search returns distinct registers matching every present filter, ordered by name.
// BundleType and Completed must hold for the same schedule entry.
func (r *Repo) Search(ctx context.Context, f domain.RegisterSearchFilter) ([]domain.Register, error) {
	query, args, err := searchQuery(f).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build register search: %w", err)
	}

	var rows []registerRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("search registers: %w", err)
	}

	result := make([]domain.Register, len(rows))
	for i, row := range rows {
		result[i] = row.toDomain()
	}
	return result, nil
}

// BundleCounts returns the number of schedule entries per bundle type for
// each register, ignoring any search filters. Every requested register gets
// an entry with all bundle types present.
func (r *Repo) BundleCounts(ctx context.Context, registerIDs []uuid.UUID) (map[uuid.UUID]domain.BundleCounts, error) {
	result := make(map[uuid.UUID]domain.BundleCounts, len(registerIDs))
	for _, id := range registerIDs {
		result[id] = emptyCounts()
	}
	if len(registerIDs) == 0 {
		return result, nil
	}

	query, args, err := postgres.Builder.
		Select("register_id", "bundle_type", "count(*) AS n").
		From("schedule_entries").
		Where(sq.Eq{"register_id": registerIDs}).
		GroupBy("register_id", "bundle_type").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build bundle counts: %w", err)
	}

	var rows []struct {
		RegisterID uuid.UUID `db:"register_id"`
		BundleType string    `db:"bundle_type"`
		N          int       `db:"n"`
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("count schedule entries: %w", err)
	}

	for _, row := range rows {
		result[row.RegisterID][domain.BundleType(row.BundleType)] = row.N
	}
	return result, nil
}

// ---------------------------------------------------------------------------
// Query builders
// ---------------------------------------------------------------------------

func searchQuery(f domain.RegisterSearchFilter) sq.SelectBuilder {
	q := postgres.Builder.Select(columns...).From("registers r")

	if f.Query != nil && strings.TrimSpace(*f.Query) != "" {
		q = q.Where(sq.ILike{"r.name": "%" + escapeLike(strings.TrimSpace(*f.Query)) + "%"})
	}

	if f.BundleType != nil || f.Completed != nil {
		sub := sq.Select("1").From("schedule_entries se").Where("se.register_id = r.id")
		if f.BundleType != nil {
			sub = sub.Where(sq.Eq{"se.bundle_type": string(*f.BundleType)})
		}
		if f.Completed != nil {
			sub = sub.Where(sq.Eq{"se.completed": *f.Completed})
		}
		q = q.Where(sq.Expr("EXISTS (?)", sub))
	}

	limit := f.Limit
	if limit <= 0 || limit > domain.MaxListResults {
		limit = domain.MaxListResults
	}

	return q.OrderBy("r.name ASC", "r.id ASC").Limit(uint64(limit))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input literal inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func emptyCounts() domain.BundleCounts {
	counts := make(domain.BundleCounts, len(domain.BundleTypes))
	for _, bt := range domain.BundleTypes {
		counts[bt] = 0
	}
	return counts
}
