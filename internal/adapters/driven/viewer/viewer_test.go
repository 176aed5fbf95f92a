package viewer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/payslip-cli/internal/core/domain"
	"github.com/custodia-labs/payslip-cli/internal/core/ports/driven"
)

type recorder struct {
	name string
	args []string
	err  error
}

func (r *recorder) run(name string, args ...string) error {
	r.name = name
	r.args = args
	return r.err
}

func found(name string) (string, error) {
	return "/usr/bin/" + name, nil
}

func missing(string) (string, error) {
	return "", errors.New("executable file not found in $PATH")
}

func tempDocument(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "payslip.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF"), 0600))
	return path
}

func TestSystem_Open(t *testing.T) {
	tests := []struct {
		goos string
		name string
	}{
		{"darwin", "open"},
		{"linux", "xdg-open"},
		{"windows", "rundll32"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			path := tempDocument(t)
			rec := &recorder{}
			v := New(0, WithGOOS(tt.goos), WithRunner(rec.run, found))

			err := v.Open(context.Background(), path, driven.OpenOptions{DisplayName: "Payslip"})

			require.NoError(t, err)
			assert.Equal(t, tt.name, rec.name)
			assert.Equal(t, path, rec.args[len(rec.args)-1])
		})
	}
}

func TestSystem_Open_NoLauncher(t *testing.T) {
	v := New(0, WithGOOS("linux"), WithRunner((&recorder{}).run, missing))

	err := v.Open(context.Background(), tempDocument(t), driven.OpenOptions{})

	assert.ErrorIs(t, err, domain.ErrNoViewer)
}

func TestSystem_Open_UnsupportedPlatform(t *testing.T) {
	v := New(0, WithGOOS("plan9"), WithRunner((&recorder{}).run, found))

	err := v.Open(context.Background(), tempDocument(t), driven.OpenOptions{})

	assert.ErrorIs(t, err, domain.ErrNoViewer)
}

func TestSystem_Open_MissingFile(t *testing.T) {
	v := New(0, WithGOOS("linux"), WithRunner((&recorder{}).run, found))

	err := v.Open(context.Background(), filepath.Join(t.TempDir(), "gone.pdf"), driven.OpenOptions{})

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSystem_Open_LaunchFails(t *testing.T) {
	boom := errors.New("exec format error")
	v := New(0, WithGOOS("linux"), WithRunner((&recorder{err: boom}).run, found))

	err := v.Open(context.Background(), tempDocument(t), driven.OpenOptions{})

	assert.ErrorIs(t, err, boom)
}

func TestSystem_Open_Throttled(t *testing.T) {
	path := tempDocument(t)
	v := New(0.001, WithGOOS("linux"), WithRunner((&recorder{}).run, found))

	require.NoError(t, v.Open(context.Background(), path, driven.OpenOptions{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := v.Open(ctx, path, driven.OpenOptions{})

	assert.Error(t, err)
}
