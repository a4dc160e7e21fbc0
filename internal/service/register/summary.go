package register

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/adminos-backend/internal/domain"
)

// Summary loads the register with its 10 most recently scheduled entries
// and 10 most recently created document versions. The two sections load
// concurrently.
func (s *Service) Summary(ctx context.Context, registerID uuid.UUID) (domain.RegisterSummary, error) {
	reg, err := s.registers.GetByID(ctx, registerID)
	if err != nil {
		return domain.RegisterSummary{}, err
	}

	summary := domain.RegisterSummary{Register: reg, GeneratedAt: s.now()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		entries, err := s.schedule.ListRecentByRegister(gctx, registerID, summaryEntries)
		if err != nil {
			return fmt.Errorf("recent entries: %w", err)
		}
		summary.RecentEntries = entries
		return nil
	})
	g.Go(func() error {
		versions, err := s.versions.ListRecentVersionsByRegister(gctx, registerID, summaryVersions)
		if err != nil {
			return fmt.Errorf("recent versions: %w", err)
		}
		summary.RecentVersions = versions
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.RegisterSummary{}, err
	}

	return summary, nil
}

// RenderPDF renders the register summary. A missing register is domain.ErrNotFound.
func (s *Service) RenderPDF(ctx context.Context, registerID uuid.UUID) ([]byte, error) {
	summary, err := s.Summary(ctx, registerID)
	if err != nil {
		return nil, err
	}

	pdf, err := s.renderer.Render(ctx, summary)
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "register pdf rendered",
		slog.String("register_id", registerID.String()),
		slog.Int("bytes", len(pdf)),
	)
	return pdf, nil
}
