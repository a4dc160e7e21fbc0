package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/heartmarshall/adminos-backend/internal/auth"
	"github.com/heartmarshall/adminos-backend/internal/config"
	"github.com/heartmarshall/adminos-backend/internal/transport/middleware"
	"github.com/heartmarshall/adminos-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, wires the services,
// optionally applies migrations and serves HTTP until ctx is cancelled, then
// shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, os.Stderr)
	slog.SetDefault(logger)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("report_backend", cfg.Report.Backend),
		slog.Bool("auth_enabled", cfg.Auth.Enabled()),
	)

	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	if cfg.Database.AutoMigrate {
		if err := c.Migrate(ctx, logger); err != nil {
			return err
		}
	}

	handler, stop := NewHTTPHandler(cfg, rest.Handlers{
		Health:    rest.NewHealthHandler(c.Pool, Version),
		Bundles:   rest.NewBundleHandler(c.Schedule, logger),
		Entries:   rest.NewEntryHandler(c.Entries, logger),
		Documents: rest.NewDocumentHandler(c.Documents, cfg.Storage.MaxUploadBytes, logger),
		Registers: rest.NewRegisterHandler(c.Registers, cfg.Reminders.Location, logger),
		Reminders: rest.NewReminderHandler(c.Reminders, logger),
	}, logger)
	defer stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// NewHTTPHandler mounts the routes behind the middleware chain. The returned
// func stops background work started for the chain.
func NewHTTPHandler(cfg *config.Config, handlers rest.Handlers, logger *slog.Logger) (http.Handler, func()) {
	var (
		limit  middleware.Middleware
		authMW middleware.Middleware
		stop   = func() {}
	)
	if cfg.RateLimit.RequestsPerMinute > 0 {
		rl := middleware.NewRateLimiter(time.Minute)
		stop = rl.Stop
		limit = rl.Limit(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	}
	if cfg.Auth.Enabled() {
		authMW = middleware.Auth(auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer))
	}

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		limit,
		authMW,
	)
	return chain(rest.NewRouter(handlers)), stop
}

func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
