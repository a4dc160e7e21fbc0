// Package schedule implements the ScheduleEntry repository using PostgreSQL.
package schedule

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/adminos-backend/internal/adapter/postgres"
	"github.com/heartmarshall/adminos-backend/internal/domain"
)

const entity = "schedule_entry"

var columns = []string{
	"se.id", "se.register_id", "r.name AS register_name", "se.bundle_type", "se.scheduled_for",
	"se.notes", "se.completed", "se.completed_at", "se.created_at", "se.updated_at",
}

// Repo provides schedule entry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new schedule entry repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type entryRow struct {
	ID           uuid.UUID  `db:"id"`
	RegisterID   uuid.UUID  `db:"register_id"`
	RegisterName string     `db:"register_name"`
	BundleType   string     `db:"bundle_type"`
	ScheduledFor time.Time  `db:"scheduled_for"`
	Notes        string     `db:"notes"`
	Completed    bool       `db:"completed"`
	CompletedAt  *time.Time `db:"completed_at"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

func (r entryRow) toDomain() domain.ScheduleEntry {
	return domain.ScheduleEntry{
		ID:           r.ID,
		RegisterID:   r.RegisterID,
		RegisterName: r.RegisterName,
		BundleType:   domain.BundleType(r.BundleType),
		ScheduledFor: r.ScheduledFor,
		Notes:        r.Notes,
		Completed:    r.Completed,
		CompletedAt:  r.CompletedAt,
		Timestamps:   domain.Timestamps{CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt},
	}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a schedule entry. A missing register surfaces as domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, e domain.ScheduleEntry) (domain.ScheduleEntry, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`INSERT INTO schedule_entries
		    (id, register_id, bundle_type, scheduled_for, notes, completed, completed_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.ID, e.RegisterID, string(e.BundleType), e.ScheduledFor, e.Notes,
		e.Completed, e.CompletedAt, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return domain.ScheduleEntry{}, postgres.MapError(err, entity, e.ID)
	}
	return e, nil
}

// UpdateCompletion persists the completion state and notes of an entry.
func (r *Repo) UpdateCompletion(ctx context.Context, e domain.ScheduleEntry) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE schedule_entries
		    SET completed = $2, completed_at = $3, notes = $4, updated_at = $5
		  WHERE id = $1`,
		e.ID, e.Completed, e.CompletedAt, e.Notes, e.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, entity, e.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, e.ID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an entry with its register name.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.ScheduleEntry, error) {
	return r.get(ctx, id, "")
}

// GetByIDForUpdate is GetByID holding a row lock until the surrounding
// transaction ends.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.ScheduleEntry, error) {
	return r.get(ctx, id, "FOR UPDATE OF se")
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, suffix string) (domain.ScheduleEntry, error) {
	q := baseQuery().Where(sq.Eq{"se.id": id})
	if suffix != "" {
		q = q.Suffix(suffix)
	}
	query, args, err := q.ToSql()
	if err != nil {
		return domain.ScheduleEntry{}, fmt.Errorf("build schedule entry get: %w", err)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.ScheduleEntry{}, postgres.MapError(err, entity, id)
	}
	return row.toDomain(), nil
}

// List returns entries newest-scheduled first, ties broken by newest-created.
func (r *Repo) List(ctx context.Context, f domain.ScheduleEntryFilter) ([]domain.ScheduleEntry, error) {
	return r.selectEntries(ctx, listQuery(f))
}

// ListRecentByRegister returns the register's most recently scheduled entries.
func (r *Repo) ListRecentByRegister(ctx context.Context, registerID uuid.UUID, limit int) ([]domain.ScheduleEntry, error) {
	return r.List(ctx, domain.ScheduleEntryFilter{RegisterID: &registerID, Limit: limit})
}

// ListDueBetween returns entries scheduled within [from, to] inclusive, by
// date ascending. Only the date part of the bounds is used.
func (r *Repo) ListDueBetween(ctx context.Context, from, to time.Time) ([]domain.ScheduleEntry, error) {
	q := baseQuery().
		Where("se.scheduled_for BETWEEN ?::date AND ?::date", from.Format(domain.DateLayout), to.Format(domain.DateLayout)).
		OrderBy("se.scheduled_for ASC", "se.created_at ASC")
	return r.selectEntries(ctx, q)
}

func (r *Repo) selectEntries(ctx context.Context, q sq.SelectBuilder) ([]domain.ScheduleEntry, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build schedule entry list: %w", err)
	}

	var rows []entryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list schedule entries: %w", err)
	}

	entries := make([]domain.ScheduleEntry, len(rows))
	for i, row := range rows {
		entries[i] = row.toDomain()
	}
	return entries, nil
}

// ---------------------------------------------------------------------------
// Query builders
// ---------------------------------------------------------------------------

func baseQuery() sq.SelectBuilder {
	return postgres.Builder.
		Select(columns...).
		From("schedule_entries se").
		Join("registers r ON r.id = se.register_id")
}

func listQuery(f domain.ScheduleEntryFilter) sq.SelectBuilder {
	q := baseQuery()
	if f.BundleType != nil {
		q = q.Where(sq.Eq{"se.bundle_type": string(*f.BundleType)})
	}
	if f.RegisterID != nil {
		q = q.Where(sq.Eq{"se.register_id": *f.RegisterID})
	}

	limit := f.Limit
	if limit <= 0 || limit > domain.MaxListResults {
		limit = domain.MaxListResults
	}
	return q.OrderBy("se.scheduled_for DESC", "se.created_at DESC").Limit(uint64(limit))
}
