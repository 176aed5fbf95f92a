package document

import (
	"fmt"

	"github.com/custodia-labs/payslip-cli/internal/core/domain"
	"github.com/custodia-labs/payslip-cli/internal/core/ports/driven"
)

// Ensure TextRenderer implements the interface.
var _ driven.DocumentRenderer = (*TextRenderer)(nil)

// TextRenderer produces a plain-text placeholder.
type TextRenderer struct{}

// Render implements driven.DocumentRenderer.
func (TextRenderer) Render(p domain.Payslip) ([]byte, error) {
	return []byte(fmt.Sprintf(
		"Payslip Information\n\nID: %s\nPeriod: %s to %s\n\n"+
			"This is a placeholder file. In production, this would be the actual payslip PDF or image.",
		p.ID, p.FromDate, p.ToDate,
	)), nil
}
