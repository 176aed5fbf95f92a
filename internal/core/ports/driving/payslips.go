package driving

import "github.com/custodia-labs/payslip-cli/internal/core/domain"

// PayslipService owns the payslip collection and its derived views.
type PayslipService interface {
	// State returns a consistent snapshot of the current views.
	State() domain.ViewState

	// List returns the filtered and sorted payslips.
	List() []domain.Payslip

	// AvailableYears returns the distinct years in the collection, newest first.
	AvailableYears() []int

	// GetByID returns the payslip with the given ID, if present.
	GetByID(id string) (domain.Payslip, bool)

	// SetSortOrder changes the sort order.
	SetSortOrder(order domain.SortOrder) error

	// ToggleSortOrder flips between recent and oldest first.
	ToggleSortOrder() domain.SortOrder

	// SetSearchText updates the search filter. Invalid text is rejected
	// and leaves the filter unchanged.
	SetSearchText(text string) domain.ValidationResult

	// SetSelectedYear updates the year filter. Empty clears it.
	SetSelectedYear(year string) domain.ValidationResult
}
