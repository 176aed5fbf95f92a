// Package payslips provides the payslip list view for the TUI.
package payslips

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/payslip-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/payslip-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/payslip-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/payslip-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/payslip-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/payslip-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/payslip-cli/internal/core/domain"
	"github.com/custodia-labs/payslip-cli/internal/core/ports/driving"
)

// View shows the filterable, sortable payslip list.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.PayslipList
	statusbar *status.Bar

	payslips  driving.PayslipService
	retrieval driving.RetrievalService
	ctx       context.Context

	state  domain.ViewState
	width  int
	height int
}

// NewView creates a new payslip list view. retrieval may be nil, in which
// case no stored markers are shown.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	payslips driving.PayslipService,
	retrieval driving.RetrievalService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:    s,
		keymap:    km,
		input:     input.NewSearchInput(s),
		list:      list.NewPayslipList(s),
		statusbar: status.NewBar(s, km),
		payslips:  payslips,
		retrieval: retrieval,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
	v.statusbar.SetBindings(km.ListHelp())
	v.sync()
	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	v.RefreshStored()
	return nil
}

// Update handles messages for the list view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if v.input.Focused() {
			return v.handleSearchKey(msg)
		}
		return v.handleKeyMsg(msg)

	case messages.StorageChanged:
		v.RefreshStored()
		return v, nil

	case messages.ErrorOccurred:
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(domain.UserMessage(msg.Err))
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keys while the list has focus.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()

	switch {
	case keymap.Matches(k, v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }

	case keymap.Matches(k, v.keymap.Search):
		v.statusbar.Clear()
		return v, v.input.Focus()

	case keymap.Matches(k, v.keymap.ToggleSort):
		v.payslips.ToggleSortOrder()
		v.sync()

	case keymap.Matches(k, v.keymap.CycleYear):
		v.cycleYear()

	case keymap.Matches(k, v.keymap.Select):
		if p, ok := v.list.SelectedPayslip(); ok {
			return v, func() tea.Msg { return messages.PayslipSelected{Payslip: p} }
		}

	default:
		v.list, _ = v.list.Update(msg)
	}

	return v, nil
}

// handleSearchKey feeds keys to the search input and applies the filter.
func (v *View) handleSearchKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // only keys that leave the input matter here
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc, tea.KeyDown:
		v.input.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)

	if result := v.payslips.SetSearchText(v.input.Value()); !result.Valid {
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(result.Error)
		return v, cmd
	}
	v.statusbar.Clear()
	v.sync()
	return v, cmd
}

// cycleYear steps the year filter: all years, then each available year
// newest first, then back to all.
func (v *View) cycleYear() {
	years := v.state.AvailableYears
	if len(years) == 0 {
		return
	}

	next := strconv.Itoa(years[0])
	if current := v.state.Filter.SelectedYear; current != "" {
		next = ""
		for i, y := range years {
			if strconv.Itoa(y) == current && i+1 < len(years) {
				next = strconv.Itoa(years[i+1])
				break
			}
		}
	}

	if result := v.payslips.SetSelectedYear(next); !result.Valid {
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(result.Error)
		return
	}
	v.sync()
}

// sync pulls a fresh snapshot from the service into the components.
func (v *View) sync() {
	v.state = v.payslips.State()
	v.list.SetPayslips(v.state.Filtered)
	v.statusbar.SetCounts(len(v.state.Filtered), len(v.state.Sorted))
}

// RefreshStored re-checks which payslips have a document on disk.
func (v *View) RefreshStored() {
	if v.retrieval == nil {
		return
	}
	for _, p := range v.state.Sorted {
		v.list.SetStored(p.ID, v.retrieval.IsStored(v.ctx, p))
	}
}

// View renders the list view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Payslips"))
	b.WriteString("\n\n")
	b.WriteString(v.input.View())
	b.WriteString("\n")
	b.WriteString(v.renderFilters())
	b.WriteString("\n\n")

	switch {
	case len(v.state.Sorted) == 0:
		b.WriteString(v.styles.Muted.Render("No payslips available."))
	case len(v.state.Filtered) == 0:
		b.WriteString(v.styles.Muted.Render("No payslips found. Try adjusting your filters."))
	default:
		b.WriteString(v.list.View())
	}

	b.WriteString("\n\n")
	b.WriteString(v.statusbar.View())
	return b.String()
}

// renderFilters renders the active sort order and year filter.
func (v *View) renderFilters() string {
	year := v.state.Filter.SelectedYear
	if year == "" {
		year = "All years"
	}
	return v.styles.Muted.Render(fmt.Sprintf("Sort: %s  Year: %s", v.state.SortOrder.Description(), year))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)
	// Title, search box, filters, spacing and status bar
	v.list.SetDimensions(width, height-10)
}

// State returns the snapshot the view is rendering.
func (v *View) State() domain.ViewState {
	return v.state
}

// SearchFocused reports whether keys go to the search input.
func (v *View) SearchFocused() bool {
	return v.input.Focused()
}

// Selected returns the highlighted payslip.
func (v *View) Selected() (domain.Payslip, bool) {
	return v.list.SelectedPayslip()
}

// IsStored reports whether a payslip is marked as stored.
func (v *View) IsStored(id string) bool {
	return v.list.IsStored(id)
}
