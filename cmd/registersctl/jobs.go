package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/heartmarshall/adminos-backend/internal/app"
	"github.com/heartmarshall/adminos-backend/internal/config"
	"github.com/heartmarshall/adminos-backend/internal/service/backup"
	"github.com/heartmarshall/adminos-backend/internal/service/user"
)

// jobs is what the commands need from the wired application.
type jobs interface {
	DefaultHorizon() int
	GenerateReminders(ctx context.Context, days int) (int, error)
	Backup(ctx context.Context) (backup.Result, error)
	Migrate(ctx context.Context) error
	ForgetUser(ctx context.Context, userID uuid.UUID) (user.ForgetResult, error)
	Close()
}

type containerJobs struct {
	c      *app.Container
	logger *slog.Logger
}

func openJobs(ctx context.Context) (jobs, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := app.NewLogger(cfg.Log, os.Stderr)

	c, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	return &containerJobs{c: c, logger: logger}, nil
}

func (j *containerJobs) DefaultHorizon() int { return j.c.Reminders.DefaultHorizon() }

func (j *containerJobs) GenerateReminders(ctx context.Context, days int) (int, error) {
	return j.c.Reminders.Generate(ctx, days)
}

func (j *containerJobs) Backup(ctx context.Context) (backup.Result, error) {
	return j.c.Backup.Run(ctx)
}

func (j *containerJobs) Migrate(ctx context.Context) error {
	return j.c.Migrate(ctx, j.logger)
}

func (j *containerJobs) ForgetUser(ctx context.Context, userID uuid.UUID) (user.ForgetResult, error) {
	return j.c.Users.ForgetUser(ctx, userID)
}

func (j *containerJobs) Close() { j.c.Close() }
