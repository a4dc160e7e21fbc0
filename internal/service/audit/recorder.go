// Package audit records register activity. Every call is expected to run in
// the transaction of the mutation it documents so both commit or roll back
// together.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/adminos-backend/internal/domain"
)

type activityRepo interface {
	Create(ctx context.Context, l domain.ActivityLog) (domain.ActivityLog, error)
}

// Entry is one activity to record. UserID and ScheduleEntryID are optional.
type Entry struct {
	RegisterID      uuid.UUID
	Action          domain.ActivityAction
	Details         string
	UserID          *uuid.UUID
	ScheduleEntryID *uuid.UUID
}

// Recorder appends activity log rows.
type Recorder struct {
	repo activityRepo
	now  func() time.Time
	log  *slog.Logger
}

// NewRecorder creates a new Recorder.
func NewRecorder(log *slog.Logger, repo activityRepo) *Recorder {
	return &Recorder{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
		log:  log.With("service", "audit"),
	}
}

// Record appends one row. Storage failures propagate unchanged so the
// surrounding transaction rolls back; nothing is retried here.
func (r *Recorder) Record(ctx context.Context, e Entry) (domain.ActivityLog, error) {
	if e.RegisterID == uuid.Nil {
		return domain.ActivityLog{}, fmt.Errorf("audit: register is required: %w", domain.ErrValidation)
	}
	if !e.Action.IsValid() {
		return domain.ActivityLog{}, fmt.Errorf("audit: unknown action %q: %w", e.Action, domain.ErrValidation)
	}

	now := r.now()
	l, err := r.repo.Create(ctx, domain.ActivityLog{
		ID:              uuid.New(),
		RegisterID:      e.RegisterID,
		ScheduleEntryID: e.ScheduleEntryID,
		Action:          e.Action,
		UserID:          e.UserID,
		Details:         e.Details,
		Timestamps:      domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	})
	if err != nil {
		return domain.ActivityLog{}, fmt.Errorf("record %s activity: %w", e.Action, err)
	}

	r.log.DebugContext(ctx, "activity recorded",
		slog.String("register_id", e.RegisterID.String()),
		slog.String("action", string(e.Action)),
	)
	return l, nil
}
