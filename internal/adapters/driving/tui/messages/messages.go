// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/payslip-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewList is the filterable payslip list.
	ViewList ViewType = iota
	// ViewDetails shows a single payslip with its actions.
	ViewDetails
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewList:
		return "list"
	case ViewDetails:
		return "details"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// PayslipSelected is sent when a payslip is chosen from the list.
type PayslipSelected struct {
	Payslip domain.Payslip
}

// DownloadCompleted carries the outcome of an acquisition.
type DownloadCompleted struct {
	PayslipID string
	Path      string
	Message   string
	Err       error
}

// PreviewCompleted carries the outcome of a viewer hand-off.
type PreviewCompleted struct {
	PayslipID string
	Err       error
}

// WatchStarted carries the storage event stream once watching begins.
type WatchStarted struct {
	Events <-chan domain.StorageEvent
	Err    error
}

// StorageChanged reports a document appearing or disappearing on disk.
type StorageChanged struct {
	Event domain.StorageEvent
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// PermissionRequested asks the user for a storage grant. The answer is
// sent on Reply exactly once.
type PermissionRequested struct {
	Reply chan<- bool
}

// Quit signals the application should exit.
type Quit struct{}
