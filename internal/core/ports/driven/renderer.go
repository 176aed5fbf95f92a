package driven

import "github.com/custodia-labs/payslip-cli/internal/core/domain"

// DocumentRenderer produces the bytes stored for a payslip.
// Implementations stand in for copying a bundled asset and can be
// swapped without touching the retrieval pipeline.
type DocumentRenderer interface {
	// Render returns the document content for the payslip.
	Render(payslip domain.Payslip) ([]byte, error)
}
