// Package report renders the single-page register summary PDF.
package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/adminos-backend/internal/config"
	"github.com/heartmarshall/adminos-backend/internal/domain"
)

const (
	scheduleHeading  = "Schedule Overview"
	documentsHeading = "Documents"

	noEntries   = "No schedule entries recorded."
	noDocuments = "No documents uploaded."

	generatedLayout = "2006-01-02 15:04 UTC"
)

// Renderer turns a register summary into PDF bytes.
type Renderer interface {
	Render(ctx context.Context, s domain.RegisterSummary) ([]byte, error)
}

// Page is the textual content of the report, shared by every backend.
type Page struct {
	Title     string
	Schedule  []string
	Documents []string
	Footer    string
}

// NewPage builds the report lines. Empty sections get a placeholder line.
func NewPage(s domain.RegisterSummary) Page {
	p := Page{Title: s.Register.Name}

	for _, e := range s.RecentEntries {
		status := "Pending"
		if e.Completed {
			status = "Done"
		}
		p.Schedule = append(p.Schedule, fmt.Sprintf("%s: %s (%s)", e.ScheduledFor.Format(domain.DateLayout), status, e.BundleType))
	}
	if len(p.Schedule) == 0 {
		p.Schedule = []string{noEntries}
	}

	for _, v := range s.RecentVersions {
		p.Documents = append(p.Documents, fmt.Sprintf("%s v%d (%s)", v.DocumentTitle, v.Version, v.Filename()))
	}
	if len(p.Documents) == 0 {
		p.Documents = []string{noDocuments}
	}

	if !s.GeneratedAt.IsZero() {
		p.Footer = "Generated " + s.GeneratedAt.UTC().Format(generatedLayout)
	}

	return p
}

// New builds the renderer selected by cfg.Backend.
func New(cfg config.ReportConfig, log *slog.Logger) Renderer {
	switch cfg.Backend {
	case config.ReportBackendHTML:
		return NewHTMLRenderer(cfg.BrowserTimeout)
	case config.ReportBackendVector:
		return NewVectorRenderer()
	default:
		return NewFallback(log,
			Named{Name: "html", Renderer: NewHTMLRenderer(cfg.BrowserTimeout)},
			Named{Name: "vector", Renderer: NewVectorRenderer()},
		)
	}
}
