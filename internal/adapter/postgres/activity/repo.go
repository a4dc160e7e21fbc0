// Package activity implements the append-only ActivityLog repository using PostgreSQL.
package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/adminos-backend/internal/adapter/postgres"
	"github.com/heartmarshall/adminos-backend/internal/domain"
)

const entity = "activity_log"

// Repo provides activity log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new activity log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type logRow struct {
	ID              uuid.UUID  `db:"id"`
	RegisterID      uuid.UUID  `db:"register_id"`
	ScheduleEntryID *uuid.UUID `db:"schedule_entry_id"`
	Action          string     `db:"action"`
	UserID          *uuid.UUID `db:"user_id"`
	Details         string     `db:"details"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

func (r logRow) toDomain() domain.ActivityLog {
	return domain.ActivityLog{
		ID:              r.ID,
		RegisterID:      r.RegisterID,
		ScheduleEntryID: r.ScheduleEntryID,
		Action:          domain.ActivityAction(r.Action),
		UserID:          r.UserID,
		Details:         r.Details,
		Timestamps:      domain.Timestamps{CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt},
	}
}

// Create appends a log row. It uses the transaction in ctx when present, so
// the row shares the fate of the mutation it describes.
func (r *Repo) Create(ctx context.Context, l domain.ActivityLog) (domain.ActivityLog, error) {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}

	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`INSERT INTO activity_logs (id, register_id, schedule_entry_id, action, user_id, details, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		l.ID, l.RegisterID, l.ScheduleEntryID, string(l.Action), l.UserID, l.Details, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return domain.ActivityLog{}, postgres.MapError(err, entity, l.ID)
	}
	return l, nil
}

// ListByRegister returns the register's log rows newest first.
func (r *Repo) ListByRegister(ctx context.Context, registerID uuid.UUID, limit int) ([]domain.ActivityLog, error) {
	if limit <= 0 || limit > domain.MaxListResults {
		limit = domain.MaxListResults
	}

	var rows []logRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT id, register_id, schedule_entry_id, action, user_id, details, created_at, updated_at
		   FROM activity_logs
		  WHERE register_id = $1
		  ORDER BY created_at DESC, id DESC
		  LIMIT $2`,
		registerID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list activity_logs: %w", err)
	}

	logs := make([]domain.ActivityLog, len(rows))
	for i, row := range rows {
		logs[i] = row.toDomain()
	}
	return logs, nil
}

// ClearUser detaches a removed user from their log rows.
func (r *Repo) ClearUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE activity_logs SET user_id = NULL WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return 0, postgres.MapError(err, entity, userID)
	}
	return tag.RowsAffected(), nil
}
