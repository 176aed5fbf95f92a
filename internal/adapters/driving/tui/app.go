package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/payslip-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/payslip-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/payslip-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/payslip-cli/internal/adapters/driving/tui/views/details"
	"github.com/custodia-labs/payslip-cli/internal/adapters/driving/tui/views/payslips"
	"github.com/custodia-labs/payslip-cli/internal/core/domain"
	"github.com/custodia-labs/payslip-cli/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keys   *keymap.KeyMap

	listView    *payslips.View
	detailsView *details.View

	// events streams storage changes once the watch has started.
	events <-chan domain.StorageEvent

	currentView messages.ViewType

	// pending is the unanswered storage permission request, if any.
	pending *messages.PermissionRequested

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keys:        km,
		listView:    payslips.NewView(s, km, ports.Payslips, ports.Retrieval),
		detailsView: details.NewView(s, km, ports.Retrieval),
		currentView: messages.ViewList,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.listView.WithContext(ctx)
	a.detailsView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("payslips"),
		a.listView.Init(),
		a.startWatch(),
		a.listenPermission(),
	)
}

// listenPermission waits for the next storage grant request.
func (a *App) listenPermission() tea.Cmd {
	if a.ports.Permission == nil {
		return nil
	}
	return a.ports.Permission.next()
}

// answerPermission resolves the pending request and listens for the next.
func (a *App) answerPermission(granted bool) tea.Cmd {
	if a.pending == nil {
		return nil
	}
	a.pending.Reply <- granted
	a.pending = nil
	logger.Debug("tui: storage permission granted=%t", granted)
	return a.listenPermission()
}

// startWatch subscribes to storage changes so stored markers stay accurate.
func (a *App) startWatch() tea.Cmd {
	ctx := a.ctx
	retrieval := a.ports.Retrieval
	return func() tea.Msg {
		events, err := retrieval.Watch(ctx)
		return messages.WatchStarted{Events: events, Err: err}
	}
}

// waitForEvent blocks on the next storage event.
func waitForEvent(events <-chan domain.StorageEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return messages.StorageChanged{Event: ev}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.answerPermission(false)
			return a, tea.Quit
		}
		if a.pending != nil {
			switch {
			case keymap.Matches(msg.String(), a.keys.Allow):
				return a, a.answerPermission(true)
			case keymap.Matches(msg.String(), a.keys.Deny):
				return a, a.answerPermission(false)
			}
			return a, nil
		}
		return a, a.forward(msg)

	case messages.PermissionRequested:
		a.pending = &msg
		return a, nil

	case messages.WatchStarted:
		if msg.Err != nil {
			logger.Warn("storage watch unavailable: %v", msg.Err)
			return a, nil
		}
		if msg.Events == nil {
			return a, nil
		}
		a.events = msg.Events
		return a, waitForEvent(a.events)

	case messages.StorageChanged:
		logger.Debug("tui: storage %s %s", msg.Event.Type, msg.Event.Name)
		a.listView.Update(msg)
		a.detailsView.Update(msg)
		if a.events != nil {
			return a, waitForEvent(a.events)
		}
		return a, nil

	case messages.PayslipSelected:
		a.detailsView.SetPayslip(msg.Payslip)
		a.currentView = messages.ViewDetails
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewList {
			a.listView.RefreshStored()
		}
		return a, nil

	case messages.DownloadCompleted:
		a.err = msg.Err
		a.detailsView, cmd = a.detailsView.Update(msg)
		a.listView.RefreshStored()
		return a, cmd

	case messages.PreviewCompleted:
		a.err = msg.Err
		a.detailsView, cmd = a.detailsView.Update(msg)
		a.listView.RefreshStored()
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, a.forward(msg)

	case messages.Quit:
		a.answerPermission(false)
		return a, tea.Quit
	}

	return a, a.forward(msg)
}

// forward hands a message to the active view.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewDetails:
		a.detailsView, cmd = a.detailsView.Update(msg)
	default:
		a.listView, cmd = a.listView.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	if a.pending != nil {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, a.permissionView())
	}

	if a.currentView == messages.ViewDetails {
		return a.detailsView.View()
	}
	return a.listView.View()
}

// permissionView renders the storage permission question.
func (a *App) permissionView() string {
	help := make([]string, 0, 2)
	for _, b := range a.keys.PermissionHelp() {
		help = append(help, b.Help().Key+" "+b.Help().Desc)
	}

	return a.styles.PromptBanner.Render(
		"Storage Permission Required\n" +
			"This app needs access to your storage to download payslips.\n\n" +
			a.styles.Muted.Render(strings.Join(help, " • ")),
	)
}

// PermissionPending reports whether a storage grant is awaiting an answer.
func (a *App) PermissionPending() bool {
	return a.pending != nil
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.listView.SetDimensions(width, height)
	a.detailsView.SetDimensions(width, height)
}
