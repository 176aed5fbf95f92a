package logger

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/custodia-labs/payslip-cli/internal/core/domain"
)

// capture enables verbose logging into a buffer for the test's duration.
func capture(t *testing.T, verboseOn bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(verboseOn)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)
	if IsVerbose() {
		t.Error("expected verbose to be false initially")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be true after SetVerbose(true)")
	}
}

func TestLevels_WhenVerbose(t *testing.T) {
	tests := []struct {
		name string
		log  func(string, ...any)
		want string
	}{
		{"debug", Debug, "[DEBUG] retrieval 1\n"},
		{"info", Info, "[INFO] retrieval 1\n"},
		{"warn", Warn, "[WARN] retrieval 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t, true)
			tt.log("retrieval %s", "1")
			if buf.String() != tt.want {
				t.Errorf("unexpected output: %q", buf.String())
			}
		})
	}
}

func TestLevels_WhenNotVerbose(t *testing.T) {
	buf := capture(t, false)

	Debug("a")
	Info("b")
	Warn("c")
	Section("d")
	Error(errors.New("e"), "f")

	if buf.Len() > 0 {
		t.Errorf("expected no output when verbose is disabled, got %q", buf.String())
	}
}

func TestSection(t *testing.T) {
	buf := capture(t, true)

	Section("Acquire 1")

	if buf.String() != "\n=== Acquire 1 ===\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestError_PlainError(t *testing.T) {
	buf := capture(t, true)

	Error(errors.New("disk on fire"), "download")

	if buf.String() != "[ERROR] download: disk on fire\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestError_AppErrorShowsCause(t *testing.T) {
	buf := capture(t, true)

	Error(domain.NewAppError(domain.ErrCodeFileWriteFailed, "", errors.New("EIO")), "download")

	out := buf.String()
	if !strings.Contains(out, "FILE_WRITE_FAILED") || !strings.Contains(out, "(cause: EIO)") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestError_Nil(t *testing.T) {
	buf := capture(t, true)

	Error(nil, "noop")

	if buf.Len() > 0 {
		t.Errorf("expected no output for nil error, got %q", buf.String())
	}
}
