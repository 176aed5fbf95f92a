package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Input limits.
const (
	// MaxFileSize is the largest document accepted, in bytes (10 MiB).
	MaxFileSize = 10 * 1024 * 1024

	// MaxSearchLength is the longest accepted search text, in characters.
	MaxSearchLength = 100

	// MaxFileNameLength is the longest file name produced by SanitizeFileName.
	MaxFileNameLength = 255

	// MinYear is the earliest year accepted by the year filter.
	MinYear = 1900
)

// ValidationResult reports the outcome of a validator.
// Validators never return errors; an invalid result carries a message.
type ValidationResult struct {
	Valid bool
	Error string
}

func valid() ValidationResult {
	return ValidationResult{Valid: true}
}

func invalid(format string, args ...any) ValidationResult {
	return ValidationResult{Valid: false, Error: fmt.Sprintf(format, args...)}
}

var (
	pathSeparators   = regexp.MustCompile(`[/\\]`)
	reservedChars    = regexp.MustCompile(`[<>:"|?*\x00-\x1f]`)
	leadingDots      = regexp.MustCompile(`^\.+`)
	injectionMarkers = regexp.MustCompile(`(?i)<script|javascript:|onerror=|onload=`)
)

// SanitizeFileName makes an untrusted name safe to join onto a directory.
// Path separators and reserved or control characters become underscores,
// leading dots are dropped and the result is capped at MaxFileNameLength
// characters.
func SanitizeFileName(name string) (string, error) {
	sanitized := pathSeparators.ReplaceAllString(name, "_")
	sanitized = reservedChars.ReplaceAllString(sanitized, "_")
	sanitized = leadingDots.ReplaceAllString(sanitized, "")
	sanitized = strings.TrimSpace(sanitized)

	if sanitized == "" {
		return "", NewAppError(ErrCodeInvalidInput, "file name cannot be empty", ErrInvalidInput)
	}

	if runes := []rune(sanitized); len(runes) > MaxFileNameLength {
		sanitized = string(runes[:MaxFileNameLength])
	}
	return sanitized, nil
}

// ValidateSearchText rejects overlong text and obvious script injection.
func ValidateSearchText(text string) ValidationResult {
	if len([]rune(text)) > MaxSearchLength {
		return invalid("Search text cannot exceed %d characters", MaxSearchLength)
	}
	if injectionMarkers.MatchString(text) {
		return invalid("Invalid characters in search text")
	}
	return valid()
}

// ValidateYear checks a year filter against the current clock.
func ValidateYear(year string) ValidationResult {
	return ValidateYearAt(year, time.Now())
}

// ValidateYearAt checks that year is numeric and within [MinYear, now+1].
func ValidateYearAt(year string, now time.Time) ValidationResult {
	n, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return invalid("Year must be a number")
	}
	maxYear := now.Year() + 1
	if n < MinYear || n > maxYear {
		return invalid("Year must be between %d and %d", MinYear, maxYear)
	}
	return valid()
}

// ValidateFileSize rejects negative sizes and sizes above MaxFileSize.
func ValidateFileSize(size int64) ValidationResult {
	if size < 0 {
		return invalid("Invalid file size")
	}
	if size > MaxFileSize {
		return invalid("File size exceeds maximum of %dMB", MaxFileSize/(1024*1024))
	}
	return valid()
}
