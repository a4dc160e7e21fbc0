package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/adminos-backend/internal/domain"
)

// Named labels a backend for logging.
type Named struct {
	Name     string
	Renderer Renderer
}

// Fallback tries each backend in order and returns the first non-empty PDF.
type Fallback struct {
	backends []Named
	log      *slog.Logger
}

// NewFallback creates a renderer chain.
func NewFallback(log *slog.Logger, backends ...Named) *Fallback {
	return &Fallback{backends: backends, log: log.With("component", "report")}
}

// Render returns the output of the first backend that succeeds.
func (f *Fallback) Render(ctx context.Context, s domain.RegisterSummary) ([]byte, error) {
	var errs []error
	for _, b := range f.backends {
		out, err := b.Renderer.Render(ctx, s)
		if err == nil && len(out) == 0 {
			err = errors.New("empty output")
		}
		if err == nil {
			return out, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		f.log.WarnContext(ctx, "report backend failed, trying next",
			slog.String("backend", b.Name),
			slog.String("register_id", s.Register.ID.String()),
			slog.String("error", err.Error()),
		)
		errs = append(errs, fmt.Errorf("%s: %w", b.Name, err))
	}
	return nil, fmt.Errorf("render report: %w", errors.Join(errs...))
}
