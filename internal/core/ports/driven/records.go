package driven

import (
	"context"

	"github.com/custodia-labs/payslip-cli/internal/core/domain"
)

// RecordSource supplies the payslip collection once at startup.
type RecordSource interface {
	// Load returns the ordered payslip records.
	Load(ctx context.Context) ([]domain.Payslip, error)
}
