package driven

import (
	"context"

	"github.com/custodia-labs/payslip-cli/internal/core/domain"
)

// FileStore is the storage surface the retrieval engine writes through.
// Paths are absolute; Root is the platform's fixed storage root.
type FileStore interface {
	// Root returns the storage root directory.
	Root() string

	// Exists reports whether a file or directory exists at path.
	Exists(ctx context.Context, path string) (bool, error)

	// MkdirAll creates a directory and any missing parents. Idempotent.
	MkdirAll(ctx context.Context, path string) error

	// Remove deletes the file at path.
	Remove(ctx context.Context, path string) error

	// WriteFile writes content to path, creating or truncating it.
	WriteFile(ctx context.Context, path string, content []byte) error

	// FSInfo reports free and total space of the filesystem holding path.
	FSInfo(ctx context.Context, path string) (domain.FSInfo, error)
}

// StorageWatcher reports changes to files inside a directory.
type StorageWatcher interface {
	// Watch streams events for dir until ctx is cancelled.
	// The channel is closed when watching stops.
	Watch(ctx context.Context, dir string) (<-chan domain.StorageEvent, error)
}
