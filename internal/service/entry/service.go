// Package entry records digital register entries as activity log rows.
package entry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/adminos-backend/internal/domain"
	"github.com/heartmarshall/adminos-backend/internal/service/audit"
	"github.com/heartmarshall/adminos-backend/pkg/ctxutil"
)

type registerRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Register, error)
}

type scheduleRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.ScheduleEntry, error)
}

type auditRecorder interface {
	Record(ctx context.Context, e audit.Entry) (domain.ActivityLog, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service captures digital entries.
type Service struct {
	registers registerRepo
	schedule  scheduleRepo
	audit     auditRecorder
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new digital entry Service.
func NewService(
	log *slog.Logger,
	registers registerRepo,
	schedule scheduleRepo,
	audit auditRecorder,
	tx txManager,
) *Service {
	return &Service{
		registers: registers,
		schedule:  schedule,
		audit:     audit,
		tx:        tx,
		log:       log.With("service", "entry"),
	}
}

// DigitalEntryInput is the raw digital entry payload.
type DigitalEntryInput struct {
	Register      string `schema:"register"`
	ScheduleEntry string `schema:"schedule_entry"`
	Message       string `schema:"message"`
}

type digitalEntry struct {
	registerID      uuid.UUID
	scheduleEntryID *uuid.UUID
	message         string
}

// parse checks all fields and collects all errors.
func (i DigitalEntryInput) parse() (digitalEntry, error) {
	var errs domain.FieldErrors

	e := digitalEntry{
		registerID:      errs.RequiredID("register", i.Register),
		scheduleEntryID: errs.OptionalID("schedule_entry", i.ScheduleEntry),
		message:         errs.Text("message", i.Message, true, 0),
	}
	if err := errs.Err(); err != nil {
		return digitalEntry{}, err
	}
	return e, nil
}

// Record stores the message as a "digital_entry" activity attributed to the
// acting user, if any. No other entity is touched.
func (s *Service) Record(ctx context.Context, input DigitalEntryInput) (domain.ActivityLog, error) {
	e, err := input.parse()
	if err != nil {
		return domain.ActivityLog{}, err
	}

	var logRow domain.ActivityLog
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var errs domain.FieldErrors
		_, getErr := s.registers.GetByID(txCtx, e.registerID)
		if err := checkRef("register", getErr, &errs); err != nil {
			return err
		}
		if e.scheduleEntryID != nil {
			_, getErr = s.schedule.GetByID(txCtx, *e.scheduleEntryID)
			if err := checkRef("schedule_entry", getErr, &errs); err != nil {
				return err
			}
		}
		if err := errs.Err(); err != nil {
			return err
		}

		var auditErr error
		logRow, auditErr = s.audit.Record(txCtx, audit.Entry{
			RegisterID:      e.registerID,
			Action:          domain.ActivityDigitalEntry,
			Details:         e.message,
			UserID:          ctxutil.ActingUserFromCtx(txCtx),
			ScheduleEntryID: e.scheduleEntryID,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return domain.ActivityLog{}, err
	}

	s.log.InfoContext(ctx, "digital entry recorded",
		slog.String("log_id", logRow.ID.String()),
		slog.String("register_id", logRow.RegisterID.String()),
	)
	return logRow, nil
}

// checkRef turns a missing referenced row into an invalid-choice error on
// field. Other lookup errors are returned.
func checkRef(field string, err error, errs *domain.FieldErrors) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		errs.Add(field, domain.MsgInvalidChoice)
		return nil
	case err != nil:
		return fmt.Errorf("lookup %s: %w", field, err)
	}
	return nil
}
