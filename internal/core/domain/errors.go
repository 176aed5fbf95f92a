package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoViewer indicates no application is available to open a document.
	ErrNoViewer = errors.New("No app available to open this file")

	// ErrPermissionRequired indicates the platform refused storage access.
	ErrPermissionRequired = errors.New("storage permission required")

	// ErrNotInteractive indicates a permission prompt could not be shown
	// because no terminal is attached.
	ErrNotInteractive = errors.New("no interactive terminal for permission request")
)

// ErrorCode classifies an AppError. The set is closed.
type ErrorCode string

// Error codes.
const (
	// File operations.
	ErrCodeFileDownloadFailed  ErrorCode = "FILE_DOWNLOAD_FAILED"
	ErrCodeFilePreviewFailed   ErrorCode = "FILE_PREVIEW_FAILED"
	ErrCodeFileNotFound        ErrorCode = "FILE_NOT_FOUND"
	ErrCodeFileWriteFailed     ErrorCode = "FILE_WRITE_FAILED"
	ErrCodeInsufficientStorage ErrorCode = "INSUFFICIENT_STORAGE"
	ErrCodeInvalidFileName     ErrorCode = "INVALID_FILE_NAME"
	ErrCodeFileSizeExceeded    ErrorCode = "FILE_SIZE_EXCEEDED"

	// Permissions.
	ErrCodePermissionDenied        ErrorCode = "PERMISSION_DENIED"
	ErrCodePermissionRequestFailed ErrorCode = "PERMISSION_REQUEST_FAILED"

	// Network. Reserved; no current flow produces these.
	ErrCodeNetworkError   ErrorCode = "NETWORK_ERROR"
	ErrCodeNetworkTimeout ErrorCode = "NETWORK_TIMEOUT"

	// Data.
	ErrCodePayslipNotFound ErrorCode = "PAYSLIP_NOT_FOUND"
	ErrCodeInvalidInput    ErrorCode = "INVALID_INPUT"

	// Generic.
	ErrCodeUnknown ErrorCode = "UNKNOWN_ERROR"
)

var errorMessages = map[ErrorCode]string{
	ErrCodeFileDownloadFailed:      "Failed to download payslip. Please try again.",
	ErrCodeFilePreviewFailed:       "Unable to preview payslip. Please install a PDF viewer.",
	ErrCodeFileNotFound:            "File not found. Please download the payslip first.",
	ErrCodeFileWriteFailed:         "Failed to save file. Please check storage space and try again.",
	ErrCodeInsufficientStorage:     "Insufficient storage space. Please free up some space and try again.",
	ErrCodeInvalidFileName:         "Invalid file name. Please contact support.",
	ErrCodeFileSizeExceeded:        "File size is too large. Maximum size is 10MB.",
	ErrCodePermissionDenied:        "Storage permission is required. Please grant permission in app settings.",
	ErrCodePermissionRequestFailed: "Failed to request permission. Please try again.",
	ErrCodeNetworkError:            "Network error. Please check your connection and try again.",
	ErrCodeNetworkTimeout:          "Request timed out. Please try again.",
	ErrCodePayslipNotFound:         "Payslip not found.",
	ErrCodeInvalidInput:            "Invalid input. Please check your search or filter.",
	ErrCodeUnknown:                 "An unexpected error occurred. Please try again.",
}

// AllErrorCodes returns every code in declaration order.
func AllErrorCodes() []ErrorCode {
	return []ErrorCode{
		ErrCodeFileDownloadFailed,
		ErrCodeFilePreviewFailed,
		ErrCodeFileNotFound,
		ErrCodeFileWriteFailed,
		ErrCodeInsufficientStorage,
		ErrCodeInvalidFileName,
		ErrCodeFileSizeExceeded,
		ErrCodePermissionDenied,
		ErrCodePermissionRequestFailed,
		ErrCodeNetworkError,
		ErrCodeNetworkTimeout,
		ErrCodePayslipNotFound,
		ErrCodeInvalidInput,
		ErrCodeUnknown,
	}
}

// IsValid returns true if the code belongs to the taxonomy.
func (c ErrorCode) IsValid() bool {
	_, ok := errorMessages[c]
	return ok
}

// Message returns the fixed user-facing message for the code.
func (c ErrorCode) Message() string {
	if msg, ok := errorMessages[c]; ok {
		return msg
	}
	return errorMessages[ErrCodeUnknown]
}

// String returns the string representation.
func (c ErrorCode) String() string {
	return string(c)
}

// AppError is a classified failure. Message overrides the code's default
// message when set; Err keeps the lower-level cause.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

// NewAppError creates an AppError. An empty message falls back to the
// code's fixed message.
func NewAppError(code ErrorCode, message string, cause error) *AppError {
	if message == "" {
		message = code.Message()
	}
	return &AppError{Code: code, Message: message, Err: cause}
}

// Error implements error.
func (e *AppError) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *AppError) Unwrap() error {
	return e.Err
}

// CodeOf returns the code of the first AppError in err's chain,
// or ErrCodeUnknown.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeUnknown
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}

// UserMessage resolves the message to show the user for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return ErrCodeUnknown.Message()
}
