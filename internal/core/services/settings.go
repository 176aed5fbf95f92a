package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/payslip-cli/internal/core/domain"
	"github.com/custodia-labs/payslip-cli/internal/core/ports/driven"
	"github.com/custodia-labs/payslip-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyStorageRoot     = "storage.root"
	keyStorageMinFree  = "storage.min_free_bytes"
	keyPlatformOS      = "platform.os"
	keyPlatformAPI     = "platform.api_level"
	keyMaxAttempts     = "retrieval.max_attempts"
	keyBaseDelay       = "retrieval.base_delay"
	keyCataloguePath   = "catalogue.path"
	keyViewerOpensRate = "viewer.opens_per_second"
)

// ErrUnknownSetting is returned by Set for keys it does not recognise.
var ErrUnknownSetting = errors.New("unknown setting")

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Storage: domain.StorageSettings{
			Root:         s.configStore.GetString(keyStorageRoot), // No default - adapter resolves ~/.payslips
			MinFreeBytes: int64(s.getInt(keyStorageMinFree, int(defaults.Storage.MinFreeBytes))),
		},
		Platform: domain.Platform{
			OS:       s.getPlatformOS(defaults.Platform.OS),
			APILevel: s.getInt(keyPlatformAPI, defaults.Platform.APILevel),
		},
		Retrieval: domain.RetrievalSettings{
			MaxAttempts: s.getInt(keyMaxAttempts, defaults.Retrieval.MaxAttempts),
			BaseDelay:   s.getDuration(keyBaseDelay, defaults.Retrieval.BaseDelay),
		},
		Catalogue: domain.CatalogueSettings{
			Path: s.configStore.GetString(keyCataloguePath),
		},
		Viewer: domain.ViewerSettings{
			OpensPerSecond: s.getFloat(keyViewerOpensRate, defaults.Viewer.OpensPerSecond),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	values := []struct {
		key   string
		value any
	}{
		{keyStorageRoot, settings.Storage.Root},
		{keyStorageMinFree, settings.Storage.MinFreeBytes},
		{keyPlatformOS, settings.Platform.OS.String()},
		{keyPlatformAPI, int64(settings.Platform.APILevel)},
		{keyMaxAttempts, int64(settings.Retrieval.MaxAttempts)},
		{keyBaseDelay, settings.Retrieval.BaseDelay.String()},
		{keyCataloguePath, settings.Catalogue.Path},
		{keyViewerOpensRate, settings.Viewer.OpensPerSecond},
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set updates a single setting from its string form.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)

	var parsed any
	switch key {
	case keyStorageRoot, keyCataloguePath:
		parsed = value
	case keyPlatformOS:
		platform := domain.PlatformOS(strings.ToLower(value))
		if !platform.IsValid() {
			return fmt.Errorf("%w: platform must be one of %v", domain.ErrInvalidInput, domain.AllPlatforms())
		}
		parsed = platform.String()
	case keyPlatformAPI, keyMaxAttempts, keyStorageMinFree:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: %s must be a non-negative integer", domain.ErrInvalidInput, key)
		}
		if key == keyMaxAttempts && (n < 1 || n > domain.MaxRetrievalAttempts) {
			return fmt.Errorf("%w: %s must be between 1 and %d", domain.ErrInvalidInput, key, domain.MaxRetrievalAttempts)
		}
		parsed = n
	case keyBaseDelay:
		d, err := s.parseDuration(value)
		if err != nil || d < 0 {
			return fmt.Errorf("%w: %s must be a duration like 500ms", domain.ErrInvalidInput, key)
		}
		parsed = d.String()
	case keyViewerOpensRate:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return fmt.Errorf("%w: %s must be a positive number", domain.ErrInvalidInput, key)
		}
		parsed = f
	default:
		return fmt.Errorf("%w: %s", ErrUnknownSetting, key)
	}

	return s.configStore.Set(key, parsed)
}

// Keys returns the recognised setting keys.
func (s *SettingsService) Keys() []string {
	return []string{
		keyStorageRoot,
		keyStorageMinFree,
		keyPlatformOS,
		keyPlatformAPI,
		keyMaxAttempts,
		keyBaseDelay,
		keyCataloguePath,
		keyViewerOpensRate,
	}
}

// Validate checks that the current settings are usable.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if settings.Retrieval.MaxAttempts < 1 || settings.Retrieval.MaxAttempts > domain.MaxRetrievalAttempts {
		return fmt.Errorf("%w: retrieval.max_attempts must be between 1 and %d",
			domain.ErrInvalidInput, domain.MaxRetrievalAttempts)
	}
	if settings.Platform.OS == domain.PlatformAndroid && settings.Platform.APILevel <= 0 {
		return fmt.Errorf("%w: platform.api_level is required for android", domain.ErrInvalidInput)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	val, exists := s.configStore.Get(key)
	if !exists {
		return defaultVal
	}
	// TOML decodes whole numbers as int64
	switch v := val.(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	default:
		return defaultVal
	}
}

func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	str := s.configStore.GetString(key)
	if str == "" {
		return defaultVal
	}
	d, err := s.parseDuration(str)
	if err != nil {
		return defaultVal
	}
	return d
}

func (s *SettingsService) getPlatformOS(defaultVal domain.PlatformOS) domain.PlatformOS {
	val := s.configStore.GetString(keyPlatformOS)
	if val == "" {
		return defaultVal
	}
	platform := domain.PlatformOS(val)
	if !platform.IsValid() {
		return defaultVal
	}
	return platform
}

// parseDuration parses a duration string.
func (s *SettingsService) parseDuration(str string) (time.Duration, error) {
	return time.ParseDuration(str)
}
