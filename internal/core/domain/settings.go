package domain

import "time"

// StorageSettings holds where documents are written.
type StorageSettings struct {
	// Root is the storage root. Empty means ~/.payslips/storage.
	Root string

	// MinFreeBytes is the free space floor checked before writing.
	MinFreeBytes int64
}

// RetrievalSettings holds the retry policy for document acquisition.
type RetrievalSettings struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int

	// BaseDelay is multiplied by 2^attempt between attempts.
	BaseDelay time.Duration
}

// Retry bounds. Delays stop growing at MaxBackoff, or at BaseDelay when
// that is larger.
const (
	MaxRetrievalAttempts = 10
	MaxBackoff           = 30 * time.Second
)

// Backoff returns the delay to wait after the given zero-based attempt.
func (r RetrievalSettings) Backoff(attempt int) time.Duration {
	ceiling := max(MaxBackoff, r.BaseDelay)
	d := r.BaseDelay
	for i := 0; i < attempt && d > 0 && d < ceiling; i++ {
		d *= 2
	}
	return min(d, ceiling)
}

// CatalogueSettings holds where payslip records are loaded from.
type CatalogueSettings struct {
	// Path is a YAML catalogue file. Empty means the bundled catalogue.
	Path string
}

// ViewerSettings holds document hand-off behaviour.
type ViewerSettings struct {
	// OpensPerSecond limits how often viewer applications are launched.
	OpensPerSecond float64
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Storage holds document storage settings.
	Storage StorageSettings

	// Platform holds the platform storage rules.
	Platform Platform

	// Retrieval holds the acquisition retry policy.
	Retrieval RetrievalSettings

	// Catalogue holds the record source settings.
	Catalogue CatalogueSettings

	// Viewer holds viewer hand-off settings.
	Viewer ViewerSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Storage: StorageSettings{
			MinFreeBytes: 1024 * 1024, // 1 MiB
		},
		Platform: Platform{
			OS: PlatformDesktop,
		},
		Retrieval: RetrievalSettings{
			MaxAttempts: 3,
			BaseDelay:   500 * time.Millisecond,
		},
		Viewer: ViewerSettings{
			OpensPerSecond: 1,
		},
	}
}

// AllPlatforms returns all supported platforms.
func AllPlatforms() []PlatformOS {
	return []PlatformOS{PlatformIOS, PlatformAndroid, PlatformDesktop}
}
