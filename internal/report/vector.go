package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/heartmarshall/adminos-backend/internal/domain"
)

// VectorRenderer draws the page with fpdf core fonts. It needs no external
// tools and is the last resort of the fallback chain.
type VectorRenderer struct{}

// NewVectorRenderer creates a VectorRenderer.
func NewVectorRenderer() *VectorRenderer { return &VectorRenderer{} }

// Render implements Renderer.
func (VectorRenderer) Render(_ context.Context, s domain.RegisterSummary) ([]byte, error) {
	page := NewPage(s)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(false, 20)
	pdf.SetTitle(page.Title, true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 8, tr(page.Title), "", "L", false)
	pdf.Ln(4)

	section := func(heading string, lines []string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 7, tr(heading+":"), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for _, l := range lines {
			pdf.CellFormat(0, 6, tr("- "+l), "", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}
	section(scheduleHeading, page.Schedule)
	section(documentsHeading, page.Documents)

	if page.Footer != "" {
		pdf.SetY(-25)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, 5, tr(page.Footer), "", 0, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
