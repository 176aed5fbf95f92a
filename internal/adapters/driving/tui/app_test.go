package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/payslip-cli/internal/adapters/driven/document"
	"github.com/custodia-labs/payslip-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/payslip-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/payslip-cli/internal/core/domain"
	"github.com/custodia-labs/payslip-cli/internal/core/services"
)

func newTestApp(t *testing.T, retrieval *MockRetrievalService) *App {
	t.Helper()
	if retrieval == nil {
		retrieval = &MockRetrievalService{}
	}
	app, err := NewApp(NewPorts(newPayslipService(t), retrieval))
	require.NoError(t, err)
	app.SetDimensions(120, 30)
	return app
}

func TestNewApp(t *testing.T) {
	app := newTestApp(t, nil)

	assert.Equal(t, messages.ViewList, app.CurrentView())
	assert.True(t, app.Ready())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{Retrieval: &MockRetrievalService{}})

	assert.ErrorIs(t, err, ErrMissingPayslipService)
	assert.Nil(t, app)
}

func TestApp_ViewBeforeReady(t *testing.T) {
	app, err := NewApp(NewPorts(newPayslipService(t), &MockRetrievalService{}))
	require.NoError(t, err)

	assert.Equal(t, "Initialising...", app.View())

	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.True(t, app.Ready())
	assert.Contains(t, app.View(), "Payslips")
}

func TestApp_Init(t *testing.T) {
	app := newTestApp(t, nil)

	assert.NotNil(t, app.Init())
}

func TestApp_SelectAndBack(t *testing.T) {
	app := newTestApp(t, nil)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	app.Update(cmd())

	assert.Equal(t, messages.ViewDetails, app.CurrentView())
	assert.Contains(t, app.View(), "Payslip Details")
	assert.Contains(t, app.View(), "Feb 1, 2024")

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	app.Update(cmd())

	assert.Equal(t, messages.ViewList, app.CurrentView())
}

func TestApp_DownloadFlow(t *testing.T) {
	retrieval := &MockRetrievalService{Stored: map[string]bool{}}
	retrieval.AcquireFunc = func(_ context.Context, p domain.Payslip) (string, error) {
		retrieval.Stored[p.ID] = true
		return "/tmp/" + p.File, nil
	}
	app := newTestApp(t, retrieval)
	app.Update(messages.PayslipSelected{Payslip: domain.Payslip{
		ID: "2", FromDate: "2024-02-01", ToDate: "2024-02-29", File: "payslip_2024_02.pdf",
	}})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	require.NotNil(t, cmd)
	app.Update(cmd())

	assert.NoError(t, app.Err())
	assert.Contains(t, app.View(), "File saved to: /tmp/payslip_2024_02.pdf")
}

func TestApp_PreviewFailure(t *testing.T) {
	retrieval := &MockRetrievalService{
		PreviewFunc: func(context.Context, domain.Payslip) error {
			return domain.NewAppError(domain.ErrCodeFilePreviewFailed, "", errors.New("no viewer"))
		},
	}
	app := newTestApp(t, retrieval)
	app.Update(messages.PayslipSelected{Payslip: domain.Payslip{ID: "1", File: "a.pdf"}})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	require.NotNil(t, cmd)
	app.Update(cmd())

	assert.True(t, domain.IsCode(app.Err(), domain.ErrCodeFilePreviewFailed))
	assert.Contains(t, app.View(), domain.ErrCodeFilePreviewFailed.Message())
}

func TestApp_WatchStartedSubscribes(t *testing.T) {
	app := newTestApp(t, nil)
	events := make(chan domain.StorageEvent, 1)
	events <- domain.StorageEvent{Type: domain.StorageEventWritten, Name: "payslip_2024_01.pdf"}

	_, cmd := app.Update(messages.WatchStarted{Events: events})
	require.NotNil(t, cmd)

	msg := cmd()
	changed, ok := msg.(messages.StorageChanged)
	require.True(t, ok)
	assert.Equal(t, "payslip_2024_01.pdf", changed.Event.Name)

	_, next := app.Update(msg)
	assert.NotNil(t, next, "keeps listening after an event")

	close(events)
	assert.Nil(t, next())
}

func TestApp_WatchStartedWithoutWatcher(t *testing.T) {
	app := newTestApp(t, nil)

	_, cmd := app.Update(messages.WatchStarted{})
	assert.Nil(t, cmd)

	_, cmd = app.Update(messages.WatchStarted{Err: errors.New("inotify limit")})
	assert.Nil(t, cmd)
}

func TestApp_StartWatchCallsRetrieval(t *testing.T) {
	called := false
	retrieval := &MockRetrievalService{
		WatchFunc: func(context.Context) (<-chan domain.StorageEvent, error) {
			called = true
			return nil, nil
		},
	}
	app := newTestApp(t, retrieval)

	msg := app.startWatch()()

	assert.True(t, called)
	assert.Equal(t, messages.WatchStarted{}, msg)
}

func TestApp_Quit(t *testing.T) {
	app := newTestApp(t, nil)

	_, cmd := app.Update(messages.Quit{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_WithContext(t *testing.T) {
	app := newTestApp(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Same(t, app, app.WithContext(ctx))
}

// newRestrictedApp wires a real retrieval service on a platform that needs
// a runtime storage grant, asking through the app.
func newRestrictedApp(t *testing.T) (*App, *memory.FileStore) {
	t.Helper()
	platform := domain.Platform{OS: domain.PlatformAndroid, APILevel: 30}
	settings := domain.DefaultAppSettings()
	settings.Platform = platform

	prompt := NewPermissionPrompt()
	store := memory.NewFileStore("/data/app")
	retrieval := services.NewRetrievalService(store, services.NewPermissionGate(platform, prompt),
		document.NewRenderer(), nil, settings).
		WithSleeper(func(context.Context, time.Duration) error { return nil })

	ports := NewPorts(newPayslipService(t), retrieval)
	ports.Permission = prompt
	app, err := NewApp(ports)
	require.NoError(t, err)
	app.SetDimensions(120, 30)

	p, ok := ports.Payslips.GetByID("2")
	require.True(t, ok)
	app.Update(messages.PayslipSelected{Payslip: p})
	return app, store
}

// startDownload presses d and runs the download until it asks for permission.
func startDownload(t *testing.T, app *App) <-chan tea.Msg {
	t.Helper()
	_, download := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	require.NotNil(t, download)

	done := make(chan tea.Msg, 1)
	go func() { done <- download() }()

	app.Update(app.listenPermission()())
	require.True(t, app.PermissionPending())
	return done
}

func awaitCompletion(t *testing.T, app *App, done <-chan tea.Msg) {
	t.Helper()
	select {
	case msg := <-done:
		app.Update(msg)
	case <-time.After(5 * time.Second):
		t.Fatal("download did not finish")
	}
}

func TestApp_RestrictedDownload_Allowed(t *testing.T) {
	app, store := newRestrictedApp(t)
	done := startDownload(t, app)

	assert.Contains(t, app.View(), "Storage Permission Required")

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	assert.NotNil(t, cmd)
	assert.False(t, app.PermissionPending())

	awaitCompletion(t, app, done)
	require.NoError(t, app.Err())
	assert.Equal(t, 1, store.Writes())
	assert.Contains(t, app.View(), "Download Complete")
}

func TestApp_RestrictedDownload_Denied(t *testing.T) {
	app, store := newRestrictedApp(t)
	done := startDownload(t, app)

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})

	awaitCompletion(t, app, done)
	assert.True(t, domain.IsCode(app.Err(), domain.ErrCodePermissionDenied))
	assert.Equal(t, 0, store.Writes())
	assert.Contains(t, app.View(), domain.ErrCodePermissionDenied.Message())
}

func TestApp_RestrictedDownload_IgnoresOtherKeys(t *testing.T) {
	app, _ := newRestrictedApp(t)
	done := startDownload(t, app)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	assert.Nil(t, cmd)
	assert.True(t, app.PermissionPending())

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	awaitCompletion(t, app, done)
	assert.True(t, domain.IsCode(app.Err(), domain.ErrCodePermissionDenied))
}

func TestPermissionPrompt_Cancelled(t *testing.T) {
	prompt := NewPermissionPrompt()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	granted, err := prompt.RequestStoragePermission(ctx)

	assert.False(t, granted)
	assert.ErrorIs(t, err, context.Canceled)
}
