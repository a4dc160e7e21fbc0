package schedule

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/adminos-backend/internal/domain"
	"github.com/heartmarshall/adminos-backend/internal/service/audit"
)

type entryRepo interface {
	Create(ctx context.Context, e domain.ScheduleEntry) (domain.ScheduleEntry, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.ScheduleEntry, error)
	UpdateCompletion(ctx context.Context, e domain.ScheduleEntry) error
	List(ctx context.Context, f domain.ScheduleEntryFilter) ([]domain.ScheduleEntry, error)
}

type registerRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Register, error)
}

type auditRecorder interface {
	Record(ctx context.Context, e audit.Entry) (domain.ActivityLog, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages schedule entries (bundles).
type Service struct {
	entries   entryRepo
	registers registerRepo
	audit     auditRecorder
	tx        txManager
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new schedule Service.
func NewService(
	log *slog.Logger,
	entries entryRepo,
	registers registerRepo,
	audit auditRecorder,
	tx txManager,
) *Service {
	return &Service{
		entries:   entries,
		registers: registers,
		audit:     audit,
		tx:        tx,
		log:       log.With("service", "schedule"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}
