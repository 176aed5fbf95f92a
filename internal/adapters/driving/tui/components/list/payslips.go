// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/payslip-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/payslip-cli/internal/core/domain"
)

// PayslipList displays payslips in a navigable list. Payslips whose
// document is on disk carry a stored marker.
type PayslipList struct {
	payslips []domain.Payslip
	stored   map[string]bool
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewPayslipList creates a new payslip list component.
func NewPayslipList(s *styles.Styles) *PayslipList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &PayslipList{
		stored: make(map[string]bool),
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the list.
func (l *PayslipList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *PayslipList) Update(msg tea.Msg) (*PayslipList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		case "home", "g":
			l.selected = 0
		case "end", "G":
			if len(l.payslips) > 0 {
				l.selected = len(l.payslips) - 1
			}
		}
	}
	return l, nil
}

// View renders the visible window of the list.
func (l *PayslipList) View() string {
	if len(l.payslips) == 0 {
		return ""
	}

	visible := l.height - 2
	if visible < 1 {
		visible = 1
	}

	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.payslips) {
		end = len(l.payslips)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, l.renderRow(i))
	}
	return strings.Join(lines, "\n")
}

// renderRow formats one payslip: marker, period, type label, stored badge.
func (l *PayslipList) renderRow(index int) string {
	p := l.payslips[index]

	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	periodWidth := l.width - 20
	if periodWidth < 20 {
		periodWidth = 20
	}
	period := p.Period()
	if len(period) > periodWidth {
		period = period[:periodWidth-3] + "..."
	}

	row := fmt.Sprintf("%s%-*s  %-5s", indicator, periodWidth, period, p.FileType().Label())

	badge := ""
	if l.stored[p.ID] {
		badge = " " + l.styles.StoredBadge.Render("✓")
	}

	if index == l.selected {
		return l.styles.Selected.Render(row) + badge
	}
	return l.styles.Normal.Render(row) + badge
}

// SetPayslips replaces the listed payslips. The selection follows the
// previously selected payslip when it is still present.
func (l *PayslipList) SetPayslips(payslips []domain.Payslip) {
	var current string
	if p, ok := l.SelectedPayslip(); ok {
		current = p.ID
	}

	l.payslips = payslips
	l.selected = 0
	for i, p := range payslips {
		if p.ID == current {
			l.selected = i
			break
		}
	}
}

// Payslips returns the listed payslips.
func (l *PayslipList) Payslips() []domain.Payslip {
	return l.payslips
}

// SetStored marks whether a payslip's document is on disk.
func (l *PayslipList) SetStored(id string, stored bool) {
	if stored {
		l.stored[id] = true
		return
	}
	delete(l.stored, id)
}

// IsStored reports whether a payslip is marked as stored.
func (l *PayslipList) IsStored(id string) bool {
	return l.stored[id]
}

// Selected returns the index of the selected payslip.
func (l *PayslipList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index.
func (l *PayslipList) SetSelected(index int) {
	if index >= 0 && index < len(l.payslips) {
		l.selected = index
	}
}

// SelectedPayslip returns the currently selected payslip.
func (l *PayslipList) SelectedPayslip() (domain.Payslip, bool) {
	if l.selected < 0 || l.selected >= len(l.payslips) {
		return domain.Payslip{}, false
	}
	return l.payslips[l.selected], true
}

// MoveUp moves selection up.
func (l *PayslipList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *PayslipList) MoveDown() {
	if l.selected < len(l.payslips)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *PayslipList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of listed payslips.
func (l *PayslipList) Count() int {
	return len(l.payslips)
}

// IsEmpty returns whether the list is empty.
func (l *PayslipList) IsEmpty() bool {
	return len(l.payslips) == 0
}
