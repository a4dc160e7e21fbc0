// Package register implements register creation, search, summaries and the
// activity feed.
package register

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/adminos-backend/internal/domain"
	"github.com/heartmarshall/adminos-backend/internal/service/audit"
)

// Summary section sizes.
const (
	summaryEntries  = 10
	summaryVersions = 10
)

type registerRepo interface {
	Create(ctx context.Context, reg domain.Register) (domain.Register, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Register, error)
	Search(ctx context.Context, f domain.RegisterSearchFilter) ([]domain.Register, error)
	BundleCounts(ctx context.Context, registerIDs []uuid.UUID) (map[uuid.UUID]domain.BundleCounts, error)
}

type scheduleRepo interface {
	ListRecentByRegister(ctx context.Context, registerID uuid.UUID, limit int) ([]domain.ScheduleEntry, error)
}

type versionRepo interface {
	ListRecentVersionsByRegister(ctx context.Context, registerID uuid.UUID, limit int) ([]domain.DocumentVersion, error)
}

type activityRepo interface {
	ListByRegister(ctx context.Context, registerID uuid.UUID, limit int) ([]domain.ActivityLog, error)
}

type pdfRenderer interface {
	Render(ctx context.Context, s domain.RegisterSummary) ([]byte, error)
}

type auditRecorder interface {
	Record(ctx context.Context, e audit.Entry) (domain.ActivityLog, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Deps groups the Service collaborators.
type Deps struct {
	Registers registerRepo
	Schedule  scheduleRepo
	Versions  versionRepo
	Activity  activityRepo
	Renderer  pdfRenderer
	Audit     auditRecorder
	Tx        txManager
}

// Service provides register operations.
type Service struct {
	registers registerRepo
	schedule  scheduleRepo
	versions  versionRepo
	activity  activityRepo
	renderer  pdfRenderer
	audit     auditRecorder
	tx        txManager
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new register Service.
func NewService(log *slog.Logger, d Deps) *Service {
	return &Service{
		registers: d.Registers,
		schedule:  d.Schedule,
		versions:  d.Versions,
		activity:  d.Activity,
		renderer:  d.Renderer,
		audit:     d.Audit,
		tx:        d.Tx,
		log:       log.With("service", "register"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}
