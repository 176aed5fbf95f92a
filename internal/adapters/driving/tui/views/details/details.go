// Package details provides the payslip details view with download and
// preview actions.
package details

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/payslip-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/payslip-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/payslip-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/payslip-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/payslip-cli/internal/core/domain"
	"github.com/custodia-labs/payslip-cli/internal/core/ports/driving"
)

// bannerKind identifies which banner, if any, is on screen.
type bannerKind int

const (
	bannerNone bannerKind = iota
	bannerSuccess
	bannerError
)

// View is the payslip details view.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusbar *status.Bar

	retrieval driving.RetrievalService
	ctx       context.Context

	payslip  *domain.Payslip
	stored   bool
	busy     bool
	banner   bannerKind
	title    string
	message  string
	canRetry bool

	width  int
	height int
}

// NewView creates a new details view.
func NewView(s *styles.Styles, km *keymap.KeyMap, retrieval driving.RetrievalService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:    s,
		keymap:    km,
		statusbar: status.NewBar(s, km),
		retrieval: retrieval,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
	v.statusbar.SetBindings(km.DetailsHelp())
	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// SetPayslip shows a payslip and clears any banner from a previous one.
func (v *View) SetPayslip(p domain.Payslip) {
	v.payslip = &p
	v.busy = false
	v.clearBanner()
	v.refreshStored()
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the details view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if v.banner != bannerNone {
			return v.handleBannerKey(msg)
		}
		return v.handleKeyMsg(msg)

	case messages.DownloadCompleted:
		if !v.current(msg.PayslipID) {
			return v, nil
		}
		v.busy = false
		if msg.Err != nil {
			v.showError("Download Failed", msg.Err, false)
			return v, nil
		}
		v.stored = true
		v.showSuccess("Download Complete", msg.Message)
		return v, nil

	case messages.PreviewCompleted:
		if !v.current(msg.PayslipID) {
			return v, nil
		}
		v.busy = false
		v.refreshStored()
		if msg.Err != nil {
			v.showError("Preview Failed", msg.Err, true)
			return v, nil
		}
		v.statusbar.Clear()
		return v, nil

	case messages.StorageChanged:
		v.refreshStored()
		return v, nil

	case messages.ErrorOccurred:
		v.showError("Error", msg.Err, false)
		return v, nil
	}

	return v, nil
}

// handleKeyMsg processes keys when no banner is shown. Action keys are
// ignored while an operation is in flight.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()

	switch {
	case keymap.Matches(k, v.keymap.Back):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewList} }

	case keymap.Matches(k, v.keymap.Download):
		return v, v.download()

	case keymap.Matches(k, v.keymap.Preview):
		return v, v.preview()
	}

	return v, nil
}

// handleBannerKey processes keys while a banner awaits acknowledgement.
func (v *View) handleBannerKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()

	switch {
	case keymap.Matches(k, v.keymap.Dismiss):
		v.clearBanner()
	case v.canRetry && keymap.Matches(k, v.keymap.Retry):
		v.clearBanner()
		return v, v.preview()
	}
	return v, nil
}

// download starts an acquisition in the background.
func (v *View) download() tea.Cmd {
	if v.busy || v.payslip == nil || v.retrieval == nil {
		return nil
	}
	v.busy = true
	v.statusbar.SetState(status.StateDownloading)

	p := *v.payslip
	ctx := v.ctx
	retrieval := v.retrieval
	return func() tea.Msg {
		path, err := retrieval.Acquire(ctx, p)
		msg := messages.DownloadCompleted{PayslipID: p.ID, Path: path, Err: err}
		if err == nil {
			msg.Message = retrieval.LocationMessage(path)
		}
		return msg
	}
}

// preview starts a viewer hand-off in the background.
func (v *View) preview() tea.Cmd {
	if v.busy || v.payslip == nil || v.retrieval == nil {
		return nil
	}
	v.busy = true
	v.statusbar.SetState(status.StatePreviewing)

	p := *v.payslip
	ctx := v.ctx
	retrieval := v.retrieval
	return func() tea.Msg {
		return messages.PreviewCompleted{PayslipID: p.ID, Err: retrieval.Preview(ctx, p)}
	}
}

func (v *View) current(id string) bool {
	return v.payslip != nil && v.payslip.ID == id
}

func (v *View) showError(title string, err error, retryable bool) {
	v.banner = bannerError
	v.title = title
	v.message = domain.UserMessage(err)
	v.canRetry = retryable
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(v.message)
	v.statusbar.SetBindings(v.keymap.BannerHelp(retryable))
}

func (v *View) showSuccess(title, message string) {
	v.banner = bannerSuccess
	v.title = title
	v.message = message
	v.canRetry = false
	v.statusbar.SetState(status.StateDone)
	v.statusbar.SetMessage(title)
	v.statusbar.SetBindings(v.keymap.BannerHelp(false))
}

func (v *View) clearBanner() {
	v.banner = bannerNone
	v.title = ""
	v.message = ""
	v.canRetry = false
	v.statusbar.Clear()
	v.statusbar.SetBindings(v.keymap.DetailsHelp())
}

// refreshStored re-checks the file on disk rather than trusting the last
// acquisition, so external deletion is noticed.
func (v *View) refreshStored() {
	if v.payslip == nil || v.retrieval == nil {
		v.stored = false
		return
	}
	v.stored = v.retrieval.IsStored(v.ctx, *v.payslip)
}

// View renders the details view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Payslip Details"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", minInt(v.width-4, 60)))
	b.WriteString("\n\n")

	if v.payslip == nil {
		b.WriteString(v.styles.Muted.Render("No payslip selected"))
		b.WriteString("\n\n")
		b.WriteString(v.statusbar.View())
		return b.String()
	}

	p := v.payslip
	b.WriteString(v.formatField("Period", p.Period()))
	b.WriteString(v.formatField("From", domain.FormatDate(p.FromDate)))
	b.WriteString(v.formatField("To", domain.FormatDate(p.ToDate)))
	b.WriteString(v.formatField("Type", p.FileType().Label()))
	b.WriteString(v.formatField("File", p.File))

	saved := v.styles.Muted.Render("not downloaded")
	if v.stored {
		saved = v.styles.StoredBadge.Render("✓ downloaded")
	}
	b.WriteString(fmt.Sprintf("%s %s\n", v.styles.Label.Render(fmt.Sprintf("%-8s", "Saved:")), saved))

	if v.banner != bannerNone {
		b.WriteString("\n")
		b.WriteString(v.renderBanner())
	}

	b.WriteString("\n\n")
	b.WriteString(v.statusbar.View())
	return b.String()
}

func (v *View) formatField(label, value string) string {
	return fmt.Sprintf("%s %s\n", v.styles.Label.Render(fmt.Sprintf("%-8s", label+":")), v.styles.Normal.Render(value))
}

func (v *View) renderBanner() string {
	style := v.styles.SuccessBanner
	if v.banner == bannerError {
		style = v.styles.ErrorBanner
	}
	return style.Render(v.title + "\n" + v.message)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.statusbar.SetWidth(width)
}

// Payslip returns the displayed payslip.
func (v *View) Payslip() (domain.Payslip, bool) {
	if v.payslip == nil {
		return domain.Payslip{}, false
	}
	return *v.payslip, true
}

// Busy reports whether a download or preview is in flight.
func (v *View) Busy() bool {
	return v.busy
}

// Stored reports whether the payslip's document is on disk.
func (v *View) Stored() bool {
	return v.stored
}

// BannerMessage returns the text of the shown banner, or empty.
func (v *View) BannerMessage() string {
	return v.message
}

// CanRetry reports whether the shown banner offers a retry.
func (v *View) CanRetry() bool {
	return v.canRetry
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
