package domain

import (
	"path/filepath"
	"strings"
)

// Payslip describes a single pay period and the document that belongs to it.
// Payslips are immutable once loaded; services hand out copies.
type Payslip struct {
	// ID is the opaque unique identifier.
	ID string

	// FromDate is the first day of the period (YYYY-MM-DD).
	FromDate string

	// ToDate is the last day of the period (YYYY-MM-DD).
	ToDate string

	// File is the logical document name used to derive the type and
	// the storage file name.
	File string
}

// FileType returns the document type derived from the file extension.
func (p Payslip) FileType() FileType {
	return FileTypeOf(p.File)
}

// Period renders the pay period for display, e.g. "Jan 1, 2024 – Jan 31, 2024".
func (p Payslip) Period() string {
	return FormatDateRange(p.FromDate, p.ToDate)
}

// FileType distinguishes the two document kinds the app knows about.
type FileType string

// Supported file types.
const (
	FileTypePDF   FileType = "pdf"
	FileTypeImage FileType = "image"
)

// FileTypeOf detects the file type from a file name. Anything that is not
// a .pdf is treated as an image.
func FileTypeOf(name string) FileType {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if strings.EqualFold(ext, "pdf") {
		return FileTypePDF
	}
	return FileTypeImage
}

// Label returns the human-readable type label.
func (t FileType) Label() string {
	if t == FileTypePDF {
		return "PDF"
	}
	return "Image"
}

// MIMEType returns the MIME type handed to viewers.
func (t FileType) MIMEType() string {
	if t == FileTypePDF {
		return "application/pdf"
	}
	return "text/plain"
}

// SortOrder controls the direction of the by-date ordering.
type SortOrder string

// Available sort orders.
const (
	// SortRecent lists the newest period first.
	SortRecent SortOrder = "recent"

	// SortOldest lists the oldest period first.
	SortOldest SortOrder = "oldest"
)

// IsValid returns true if the sort order is recognised.
func (o SortOrder) IsValid() bool {
	return o == SortRecent || o == SortOldest
}

// Toggle returns the opposite sort order.
func (o SortOrder) Toggle() SortOrder {
	if o == SortOldest {
		return SortRecent
	}
	return SortOldest
}

// String returns the string representation.
func (o SortOrder) String() string {
	return string(o)
}

// Description returns a human-readable description of the order.
func (o SortOrder) Description() string {
	switch o {
	case SortRecent:
		return "Most recent first"
	case SortOldest:
		return "Oldest first"
	default:
		return "Unknown"
	}
}

// ParseSortOrder converts user input into a SortOrder.
func ParseSortOrder(s string) (SortOrder, error) {
	order := SortOrder(strings.ToLower(strings.TrimSpace(s)))
	if !order.IsValid() {
		return "", NewAppError(ErrCodeInvalidInput, "sort order must be \"recent\" or \"oldest\"", ErrInvalidInput)
	}
	return order, nil
}

// FilterState is the session-scoped search and year filter.
type FilterState struct {
	// SearchText is matched against the formatted period dates.
	SearchText string

	// SelectedYear is empty for no filter, otherwise a four digit year.
	SelectedYear string
}

// IsEmpty returns true when no filter is active.
func (f FilterState) IsEmpty() bool {
	return strings.TrimSpace(f.SearchText) == "" && strings.TrimSpace(f.SelectedYear) == ""
}

// ViewState is a consistent snapshot of the derived views for one
// combination of collection, sort order and filter.
type ViewState struct {
	SortOrder      SortOrder
	Filter         FilterState
	AvailableYears []int
	Sorted         []Payslip
	Filtered       []Payslip
}
