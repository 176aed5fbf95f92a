// Package viewer hands stored documents to the operating system's
// default application.
package viewer

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/payslip-cli/internal/core/domain"
	"github.com/custodia-labs/payslip-cli/internal/core/ports/driven"
	"github.com/custodia-labs/payslip-cli/internal/logger"
)

// Ensure System implements the interface.
var _ driven.Viewer = (*System)(nil)

// Runner starts a command without waiting for it to exit.
type Runner func(name string, args ...string) error

func startCommand(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// System opens files with open, xdg-open or the Windows shell handler.
// Launches are throttled so repeated previews cannot spawn a burst of
// viewer processes.
type System struct {
	goos     string
	lookPath func(string) (string, error)
	run      Runner
	limiter  *rate.Limiter
}

// Option configures a System viewer.
type Option func(*System)

// WithGOOS overrides the detected operating system.
func WithGOOS(goos string) Option {
	return func(s *System) { s.goos = goos }
}

// WithRunner replaces command execution.
func WithRunner(run Runner, lookPath func(string) (string, error)) Option {
	return func(s *System) {
		s.run = run
		s.lookPath = lookPath
	}
}

// New creates a system viewer allowing opensPerSecond launches.
// A non-positive rate disables throttling.
func New(opensPerSecond float64, opts ...Option) *System {
	s := &System{
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		run:      startCommand,
	}
	if opensPerSecond > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(opensPerSecond), 1)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open implements driven.Viewer. The display name and chooser hint are
// not supported by desktop handlers and only appear in logs.
func (s *System) Open(ctx context.Context, path string, opts driven.OpenOptions) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	name, args, err := command(s.goos, path)
	if err != nil {
		return err
	}
	if _, err := s.lookPath(name); err != nil {
		return fmt.Errorf("%w: %s not installed", domain.ErrNoViewer, name)
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("viewer throttle: %w", err)
		}
	}

	logger.Debug("viewer: %s %v (%s, %s)", name, args, opts.DisplayName, opts.MIMEType)
	if err := s.run(name, args...); err != nil {
		return fmt.Errorf("launch %s: %w", name, err)
	}
	return nil
}

// command returns the launcher for goos.
func command(goos, path string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{path}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{path}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}, nil
	default:
		return "", nil, fmt.Errorf("%w: unsupported platform %s", domain.ErrNoViewer, goos)
	}
}
