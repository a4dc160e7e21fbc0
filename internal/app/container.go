package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/adminos-backend/internal/adapter/postgres"
	"github.com/heartmarshall/adminos-backend/internal/adapter/postgres/activity"
	documentrepo "github.com/heartmarshall/adminos-backend/internal/adapter/postgres/document"
	registerrepo "github.com/heartmarshall/adminos-backend/internal/adapter/postgres/register"
	reminderrepo "github.com/heartmarshall/adminos-backend/internal/adapter/postgres/reminder"
	schedulerepo "github.com/heartmarshall/adminos-backend/internal/adapter/postgres/schedule"
	"github.com/heartmarshall/adminos-backend/internal/config"
	"github.com/heartmarshall/adminos-backend/internal/report"
	"github.com/heartmarshall/adminos-backend/internal/service/audit"
	"github.com/heartmarshall/adminos-backend/internal/service/backup"
	"github.com/heartmarshall/adminos-backend/internal/service/document"
	"github.com/heartmarshall/adminos-backend/internal/service/entry"
	"github.com/heartmarshall/adminos-backend/internal/service/register"
	"github.com/heartmarshall/adminos-backend/internal/service/reminder"
	"github.com/heartmarshall/adminos-backend/internal/service/schedule"
	"github.com/heartmarshall/adminos-backend/internal/service/user"
	"github.com/heartmarshall/adminos-backend/internal/storage"
)

// Container holds the wired services shared by the server and the CLI.
type Container struct {
	Pool *pgxpool.Pool

	Schedule  *schedule.Service
	Entries   *entry.Service
	Documents *document.Service
	Registers *register.Service
	Reminders *reminder.Service
	Backup    *backup.Rotator
	Users     *user.Service
}

// NewContainer connects to the database and wires every service.
// Call Close when done.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	c, err := newContainer(pool, cfg, logger)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return c, nil
}

func newContainer(pool *pgxpool.Pool, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	files, err := storage.NewLocal(cfg.Storage.MediaRoot)
	if err != nil {
		return nil, fmt.Errorf("media storage: %w", err)
	}

	tx := postgres.NewTxManager(pool)
	registers := registerrepo.New(pool)
	entries := schedulerepo.New(pool)
	documents := documentrepo.New(pool)
	reminders := reminderrepo.New(pool)
	activities := activity.New(pool)

	recorder := audit.NewRecorder(logger, activities)

	return &Container{
		Pool:      pool,
		Schedule:  schedule.NewService(logger, entries, registers, recorder, tx),
		Entries:   entry.NewService(logger, registers, entries, recorder, tx),
		Documents: document.NewService(logger, documents, registers, files, recorder, tx),
		Registers: register.NewService(logger, register.Deps{
			Registers: registers,
			Schedule:  entries,
			Versions:  documents,
			Activity:  activities,
			Renderer:  report.New(cfg.Report, logger),
			Audit:     recorder,
			Tx:        tx,
		}),
		Reminders: reminder.NewService(logger, reminders, entries, cfg.Reminders),
		Backup:    backup.NewRotator(logger, documents, files, cfg.Storage),
		Users:     user.NewService(logger, activities, documents, tx),
	}, nil
}

// Migrate applies pending migrations and logs each applied version.
func (c *Container) Migrate(ctx context.Context, logger *slog.Logger) error {
	results, err := postgres.Migrate(ctx, c.Pool)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	for _, r := range results {
		logger.InfoContext(ctx, "migration applied",
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration),
		)
	}
	return nil
}

// Close releases the database pool.
func (c *Container) Close() {
	c.Pool.Close()
}
