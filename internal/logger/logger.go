// Package logger provides verbose logging for the payslips CLI.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to trace retrieval and view recomputation.
package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/custodia-labs/payslip-cli/internal/core/domain"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func logf(level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "["+level+"] "+format+"\n", args...)
	}
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	logf("DEBUG", format, args...)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	logf("INFO", format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	logf("WARN", format, args...)
}

// Error prints err with the operation it came from. Classified errors
// show their code and the underlying cause separately.
func Error(err error, context string) {
	if err == nil {
		return
	}

	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		logf("ERROR", "%s: %v", context, err)
		return
	}
	if appErr.Err != nil {
		logf("ERROR", "%s: %s %s (cause: %v)", context, appErr.Code, appErr.Message, appErr.Err)
		return
	}
	logf("ERROR", "%s: %s %s", context, appErr.Code, appErr.Message)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}
