package document

import (
	"github.com/custodia-labs/payslip-cli/internal/core/domain"
	"github.com/custodia-labs/payslip-cli/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.DocumentRenderer = (*Renderer)(nil)

// Renderer dispatches on the payslip's file type.
type Renderer struct {
	pdf   driven.DocumentRenderer
	image driven.DocumentRenderer
}

// NewRenderer returns a renderer writing PDFs for .pdf payslips and the
// text placeholder for everything else.
func NewRenderer() *Renderer {
	return &Renderer{
		pdf:   PDFRenderer{},
		image: TextRenderer{},
	}
}

// Render implements driven.DocumentRenderer.
func (r *Renderer) Render(p domain.Payslip) ([]byte, error) {
	if p.FileType() == domain.FileTypePDF {
		return r.pdf.Render(p)
	}
	return r.image.Render(p)
}
