// Package reminder generates reminders for upcoming schedule entries and
// serves the pending reminder list.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/adminos-backend/internal/config"
	"github.com/heartmarshall/adminos-backend/internal/domain"
)

const maxMessageLength = 255

type reminderRepo interface {
	GetOrCreateForEntry(ctx context.Context, rem domain.Reminder) (domain.Reminder, bool, error)
	MarkSent(ctx context.Context, id uuid.UUID, now time.Time) (domain.Reminder, error)
	ListPending(ctx context.Context, until time.Time) ([]domain.Reminder, error)
}

type scheduleRepo interface {
	ListDueBetween(ctx context.Context, from, to time.Time) ([]domain.ScheduleEntry, error)
}

// Service manages reminders.
type Service struct {
	reminders reminderRepo
	schedule  scheduleRepo
	cfg       config.RemindersConfig
	loc       *time.Location
	now       func() time.Time
	log       *slog.Logger
}

// NewService creates a new reminder Service. cfg must have passed validation.
func NewService(log *slog.Logger, reminders reminderRepo, schedule scheduleRepo, cfg config.RemindersConfig) *Service {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		reminders: reminders,
		schedule:  schedule,
		cfg:       cfg,
		loc:       loc,
		now:       time.Now,
		log:       log.With("service", "reminder"),
	}
}

// DefaultHorizon is the configured number of days Generate looks ahead.
func (s *Service) DefaultHorizon() int { return s.cfg.HorizonDays }

// Pending returns unsent reminders due within the pending window, grouped by
// register and ordered by remind_at within each register.
func (s *Service) Pending(ctx context.Context) ([]domain.Reminder, error) {
	until := s.now().Add(time.Duration(s.cfg.PendingWindowDays) * 24 * time.Hour)
	list, err := s.reminders.ListPending(ctx, until)
	if err != nil {
		return nil, fmt.Errorf("list pending reminders: %w", err)
	}
	return list, nil
}

// Generate ensures one reminder exists for every entry scheduled between
// today and today+days (inclusive, in the configured timezone). Reminders
// fire at the configured hour on the scheduled date. Returns how many were
// newly created; existing reminders are left untouched.
func (s *Service) Generate(ctx context.Context, days int) (int, error) {
	if days < 0 {
		return 0, domain.NewValidationError("days", "Ensure this value is greater than or equal to 0.")
	}

	now := s.now().In(s.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	cutoff := today.AddDate(0, 0, days)

	entries, err := s.schedule.ListDueBetween(ctx, today, cutoff)
	if err != nil {
		return 0, fmt.Errorf("list due entries: %w", err)
	}

	created := 0
	for _, e := range entries {
		rem := s.reminderFor(e, now)
		_, isNew, err := s.reminders.GetOrCreateForEntry(ctx, rem)
		if err != nil {
			return created, fmt.Errorf("reminder for entry %s: %w", e.ID, err)
		}
		if isNew {
			created++
		}
	}

	s.log.InfoContext(ctx, "reminders generated",
		slog.Int("days", days),
		slog.Int("due_entries", len(entries)),
		slog.Int("created", created),
	)
	return created, nil
}

func (s *Service) reminderFor(e domain.ScheduleEntry, now time.Time) domain.Reminder {
	y, m, d := e.ScheduledFor.Date()
	entryID := e.ID
	rem := domain.Reminder{
		RegisterID:      e.RegisterID,
		ScheduleEntryID: &entryID,
		RemindAt:        time.Date(y, m, d, s.cfg.RemindHour, 0, 0, 0, s.loc),
		Message: truncate(fmt.Sprintf("Reminder: %s %s due %s",
			e.RegisterName, e.BundleType.Display(), e.ScheduledFor.Format(domain.DateLayout)), maxMessageLength),
	}
	rem.Touch(now.UTC())
	return rem
}

// MarkSent flags a reminder as delivered. Repeated calls are no-ops.
func (s *Service) MarkSent(ctx context.Context, id uuid.UUID) (domain.Reminder, error) {
	rem, err := s.reminders.MarkSent(ctx, id, s.now().UTC())
	if err != nil {
		return domain.Reminder{}, fmt.Errorf("mark reminder sent: %w", err)
	}
	s.log.InfoContext(ctx, "reminder marked sent", slog.String("reminder_id", id.String()))
	return rem, nil
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
