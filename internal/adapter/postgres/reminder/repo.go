// Package reminder implements the Reminder repository using PostgreSQL.
package reminder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/adminos-backend/internal/adapter/postgres"
	"github.com/heartmarshall/adminos-backend/internal/domain"
)

const entity = "reminder"

// Repo provides reminder persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new reminder repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type reminderRow struct {
	ID              uuid.UUID  `db:"id"`
	RegisterID      uuid.UUID  `db:"register_id"`
	RegisterName    string     `db:"register_name"`
	ScheduleEntryID *uuid.UUID `db:"schedule_entry_id"`
	RemindAt        time.Time  `db:"remind_at"`
	Message         string     `db:"message"`
	IsSent          bool       `db:"is_sent"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

func (r reminderRow) toDomain() domain.Reminder {
	return domain.Reminder{
		ID:              r.ID,
		RegisterID:      r.RegisterID,
		RegisterName:    r.RegisterName,
		ScheduleEntryID: r.ScheduleEntryID,
		RemindAt:        r.RemindAt,
		Message:         r.Message,
		IsSent:          r.IsSent,
		Timestamps:      domain.Timestamps{CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt},
	}
}

const selectReminder = `
SELECT rm.id, rm.register_id, r.name AS register_name, rm.schedule_entry_id,
       rm.remind_at, rm.message, rm.is_sent, rm.created_at, rm.updated_at
  FROM reminders rm
  JOIN registers r ON r.id = rm.register_id`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// GetOrCreateForEntry inserts rem unless a reminder already exists for its
// schedule entry. Returns the stored reminder and whether it was created.
// rem.ScheduleEntryID must be set.
func (r *Repo) GetOrCreateForEntry(ctx context.Context, rem domain.Reminder) (domain.Reminder, bool, error) {
	if rem.ScheduleEntryID == nil {
		return domain.Reminder{}, false, fmt.Errorf("%s: schedule entry is required: %w", entity, domain.ErrValidation)
	}
	if rem.ID == uuid.Nil {
		rem.ID = uuid.New()
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	var id uuid.UUID
	err := q.QueryRow(ctx,
		`INSERT INTO reminders (id, register_id, schedule_entry_id, remind_at, message, is_sent, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (schedule_entry_id) DO NOTHING
		 RETURNING id`,
		rem.ID, rem.RegisterID, rem.ScheduleEntryID, rem.RemindAt, rem.Message, rem.IsSent, rem.CreatedAt, rem.UpdatedAt,
	).Scan(&id)

	created := true
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		created = false
	case err != nil:
		return domain.Reminder{}, false, postgres.MapError(err, entity, rem.ID)
	}

	var row reminderRow
	if err := pgxscan.Get(ctx, q, &row, selectReminder+` WHERE rm.schedule_entry_id = $1`, *rem.ScheduleEntryID); err != nil {
		return domain.Reminder{}, false, postgres.MapError(err, entity, *rem.ScheduleEntryID)
	}
	return row.toDomain(), created, nil
}

// MarkSent flags the reminder as sent. Already-sent reminders keep their state.
func (r *Repo) MarkSent(ctx context.Context, id uuid.UUID, now time.Time) (domain.Reminder, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE reminders SET is_sent = TRUE, updated_at = $2 WHERE id = $1`,
		id, now,
	)
	if err != nil {
		return domain.Reminder{}, postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return domain.Reminder{}, fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var row reminderRow
	if err := pgxscan.Get(ctx, q, &row, selectReminder+` WHERE rm.id = $1`, id); err != nil {
		return domain.Reminder{}, postgres.MapError(err, entity, id)
	}
	return row.toDomain(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListPending returns unsent reminders due at or before until, grouped by
// register (by name) and ordered by remind_at within a register.
func (r *Repo) ListPending(ctx context.Context, until time.Time) ([]domain.Reminder, error) {
	var rows []reminderRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		selectReminder+`
		 WHERE NOT rm.is_sent AND rm.remind_at <= $1
		 ORDER BY r.name ASC, r.id ASC, rm.remind_at ASC`,
		until,
	)
	if err != nil {
		return nil, fmt.Errorf("list pending reminders: %w", err)
	}

	result := make([]domain.Reminder, len(rows))
	for i, row := range rows {
		result[i] = row.toDomain()
	}
	return result, nil
}
