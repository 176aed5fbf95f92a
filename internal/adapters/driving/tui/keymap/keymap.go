// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Back returns to the list.
	Back key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Select opens the highlighted payslip.
	Select key.Binding

	// Search focuses the search input.
	Search key.Binding

	// ToggleSort flips between newest and oldest first.
	ToggleSort key.Binding

	// CycleYear steps through the year filter.
	CycleYear key.Binding

	// Download saves the payslip to storage.
	Download key.Binding

	// Preview opens the payslip in a viewer.
	Preview key.Binding

	// Retry repeats a failed preview.
	Retry key.Binding

	// Dismiss acknowledges a banner.
	Dismiss key.Binding

	// Allow grants storage permission.
	Allow key.Binding

	// Deny refuses storage permission.
	Deny key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		ToggleSort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		CycleYear: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "year"),
		),
		Download: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "download"),
		),
		Preview: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "preview"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "ok"),
		),
		Allow: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "allow"),
		),
		Deny: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "deny"),
		),
	}
}

// ListHelp returns keybindings for the payslip list.
func (k *KeyMap) ListHelp() []key.Binding {
	return []key.Binding{k.Search, k.ToggleSort, k.CycleYear, k.Select, k.Quit}
}

// DetailsHelp returns keybindings for the details view.
func (k *KeyMap) DetailsHelp() []key.Binding {
	return []key.Binding{k.Download, k.Preview, k.Back}
}

// BannerHelp returns keybindings shown under an error banner.
func (k *KeyMap) BannerHelp(retryable bool) []key.Binding {
	if retryable {
		return []key.Binding{k.Retry, k.Dismiss}
	}
	return []key.Binding{k.Dismiss}
}

// PermissionHelp returns keybindings shown under the permission question.
func (k *KeyMap) PermissionHelp() []key.Binding {
	return []key.Binding{k.Allow, k.Deny}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
