package status

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/payslip-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/payslip-cli/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Empty(t, bar.Message())
	assert.Equal(t, 80, bar.Width())
}

func TestNewBar_NilArgs(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestBar_InitAndUpdate(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Nil(t, bar.Init())

	updated, cmd := bar.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Same(t, bar, updated)
	assert.Nil(t, cmd)
}

func TestBar_View(t *testing.T) {
	tests := []struct {
		name    string
		state   State
		message string
		shown   int
		total   int
		want    string
	}{
		{"ready empty", StateReady, "", 0, 0, "Ready"},
		{"ready counts", StateReady, "", 3, 7, "3 of 7 payslips"},
		{"downloading", StateDownloading, "", 0, 0, "Downloading..."},
		{"previewing", StatePreviewing, "", 0, 0, "Opening..."},
		{"error message", StateError, "Failed to save file", 0, 0, "Failed to save file"},
		{"error bare", StateError, "", 0, 0, "Error"},
		{"done", StateDone, "Saved", 0, 0, "Saved"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetWidth(120)
			bar.SetState(tt.state)
			bar.SetMessage(tt.message)
			bar.SetCounts(tt.shown, tt.total)

			assert.Contains(t, bar.View(), tt.want)
		})
	}
}

func TestBar_Bindings(t *testing.T) {
	km := keymap.DefaultKeyMap()
	bar := NewBar(nil, km)
	bar.SetWidth(120)

	assert.Contains(t, bar.View(), "s: sort")

	bar.SetBindings(km.DetailsHelp())
	view := bar.View()
	assert.Contains(t, view, "d: download")
	assert.NotContains(t, view, "s: sort")
}

func TestBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("boom")
	bar.SetCounts(1, 2)

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Empty(t, bar.Message())
	shown, total := bar.Counts()
	assert.Equal(t, 1, shown)
	assert.Equal(t, 2, total)
}
