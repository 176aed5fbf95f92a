package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/payslip-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/payslip-cli/internal/core/ports/driven"
)

// Ensure PermissionPrompt implements the interface.
var _ driven.PermissionRequester = (*PermissionPrompt)(nil)

// PermissionPrompt asks for storage grants through the running program
// instead of the raw terminal, which bubbletea owns while the TUI is up.
type PermissionPrompt struct {
	requests chan messages.PermissionRequested
}

// NewPermissionPrompt creates a prompt. Requests block until the App
// listening on it answers or the request context ends.
func NewPermissionPrompt() *PermissionPrompt {
	return &PermissionPrompt{requests: make(chan messages.PermissionRequested)}
}

// RequestStoragePermission implements driven.PermissionRequester.
func (p *PermissionPrompt) RequestStoragePermission(ctx context.Context) (bool, error) {
	reply := make(chan bool, 1)

	select {
	case p.requests <- messages.PermissionRequested{Reply: reply}:
	case <-ctx.Done():
		return false, ctx.Err()
	}

	select {
	case granted := <-reply:
		return granted, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// next waits for the next request.
func (p *PermissionPrompt) next() tea.Cmd {
	return func() tea.Msg {
		return <-p.requests
	}
}
