package services

import (
	"errors"
	"os"
	"strings"
	"syscall"

	"github.com/custodia-labs/payslip-cli/internal/core/domain"
)

// classify maps a lower-level failure onto the error taxonomy.
// Structured causes are checked first; message sniffing only catches
// adapters that return free-form errors. AppErrors pass through untouched.
func classify(err error, fallback domain.ErrorCode) *domain.AppError {
	if err == nil {
		return nil
	}

	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, domain.ErrNoViewer):
		return domain.NewAppError(domain.ErrCodeFilePreviewFailed, "", err)
	case errors.Is(err, os.ErrPermission), errors.Is(err, domain.ErrPermissionRequired):
		return domain.NewAppError(domain.ErrCodePermissionDenied, "", err)
	case errors.Is(err, os.ErrNotExist):
		return domain.NewAppError(domain.ErrCodeFileNotFound, "", err)
	case errors.Is(err, syscall.ENOSPC):
		return domain.NewAppError(domain.ErrCodeInsufficientStorage, "", err)
	}

	// Match against the innermost cause only. Wrapping layers carry paths,
	// and a storage root named "storage" must not read as a full disk.
	msg := err.Error()
	cause := rootCause(err).Error()
	lower := strings.ToLower(cause)
	switch {
	case strings.Contains(cause, "No app"):
		return domain.NewAppError(domain.ErrCodeFilePreviewFailed, "", err)
	case strings.Contains(lower, "permission"):
		return domain.NewAppError(domain.ErrCodePermissionDenied, "", err)
	case strings.Contains(lower, "not found"):
		return domain.NewAppError(domain.ErrCodeFileNotFound, "", err)
	case strings.Contains(lower, "storage"):
		return domain.NewAppError(domain.ErrCodeInsufficientStorage, "", err)
	}

	if fallback == domain.ErrCodeFilePreviewFailed {
		// Keep the underlying reason visible for unclassified hand-off failures.
		return domain.NewAppError(fallback, fallback.Message()+" ("+msg+")", err)
	}
	return domain.NewAppError(fallback, "", err)
}

// rootCause follows the single-error Unwrap chain to its end.
func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
