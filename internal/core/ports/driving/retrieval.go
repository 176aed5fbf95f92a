package driving

import (
	"context"

	"github.com/custodia-labs/payslip-cli/internal/core/domain"
)

// RetrievalService materialises payslip documents on local storage.
type RetrievalService interface {
	// Acquire ensures the payslip's document exists at its canonical path
	// and returns that path.
	Acquire(ctx context.Context, payslip domain.Payslip) (string, error)

	// Preview ensures the document exists and hands it to a viewer.
	Preview(ctx context.Context, payslip domain.Payslip) error

	// CanonicalPath returns where the payslip's document is stored.
	CanonicalPath(payslip domain.Payslip) (string, error)

	// IsStored reports whether the payslip's document is on disk.
	IsStored(ctx context.Context, payslip domain.Payslip) bool

	// LocationMessage describes where a saved file can be found.
	LocationMessage(filePath string) string

	// Watch streams changes to stored documents until ctx is cancelled.
	// Returns a nil channel when no watcher is configured.
	Watch(ctx context.Context) (<-chan domain.StorageEvent, error)
}
