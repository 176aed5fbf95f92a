package document

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/custodia-labs/payslip-cli/internal/core/domain"
	"github.com/custodia-labs/payslip-cli/internal/core/ports/driven"
)

// Ensure PDFRenderer implements the interface.
var _ driven.DocumentRenderer = (*PDFRenderer)(nil)

// PDFRenderer produces a single-page A4 placeholder PDF.
// Output is uncompressed and dated from the payslip period, so the same
// payslip always renders to the same bytes.
type PDFRenderer struct{}

// Render implements driven.DocumentRenderer.
func (PDFRenderer) Render(p domain.Payslip) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(false)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(creationDate(p))
	pdf.SetTitle("Payslip "+p.ID, false)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Payslip Information")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "ID: "+p.ID)
	pdf.Ln(7)
	pdf.Cell(0, 7, tr("Period: "+domain.FormatDateRange(p.FromDate, p.ToDate)))
	pdf.Ln(7)
	pdf.Cell(0, 7, "File: "+p.File)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This is a placeholder file. In production, this would be the actual payslip PDF.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// creationDate uses the end of the pay period, falling back to the epoch.
func creationDate(p domain.Payslip) time.Time {
	if t, err := domain.ParseDate(p.ToDate); err == nil {
		return t
	}
	return time.Unix(0, 0).UTC()
}
