// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the colour palette of the payslip browser.
type Theme struct {
	// Primary accents titles and the selected row.
	Primary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for labels, hints and empty states.
	Muted lipgloss.Color

	// Success marks saved documents and completed downloads.
	Success lipgloss.Color

	// Warning frames questions that block an operation.
	Warning lipgloss.Color

	// Error marks failed operations and invalid input.
	Error lipgloss.Color

	// Border outlines the search input.
	Border lipgloss.Color

	// Bar is the status bar background.
	Bar lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#2563EB"), // Blue
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Success:    lipgloss.Color("#A6E3A1"), // Green
		Warning:    lipgloss.Color("#F9E2AF"), // Yellow
		Error:      lipgloss.Color("#F38BA8"), // Red
		Border:     lipgloss.Color("#45475A"), // Border gray
		Bar:        lipgloss.Color("#181825"), // Near black
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title heads each view.
	Title lipgloss.Style

	// Normal is for field values and list rows.
	Normal lipgloss.Style

	// Muted is for labels, hints and empty states.
	Muted lipgloss.Style

	// Selected highlights the current list row.
	Selected lipgloss.Style

	// Error is for inline error text.
	Error lipgloss.Style

	// Success is for inline confirmations.
	Success lipgloss.Style

	// InputField frames the search input.
	InputField lipgloss.Style

	// StatusBar renders the bottom status line.
	StatusBar lipgloss.Style

	// ErrorBanner frames a failed download or preview.
	ErrorBanner lipgloss.Style

	// SuccessBanner frames a completed download.
	SuccessBanner lipgloss.Style

	// PromptBanner frames the storage permission question.
	PromptBanner lipgloss.Style

	// StoredBadge marks payslips already saved to storage.
	StoredBadge lipgloss.Style

	// Label style for field names in detail views.
	Label lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	banner := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		Padding(0, 1)

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Bar).
			Padding(0, 1),

		ErrorBanner:   banner.BorderForeground(theme.Error).Foreground(theme.Error),
		SuccessBanner: banner.BorderForeground(theme.Success).Foreground(theme.Success),
		PromptBanner:  banner.BorderForeground(theme.Warning).Foreground(theme.Warning),

		StoredBadge: lipgloss.NewStyle().
			Foreground(theme.Success),

		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
