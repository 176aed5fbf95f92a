package services

import (
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/custodia-labs/payslip-cli/internal/core/domain"
	"github.com/custodia-labs/payslip-cli/internal/core/ports/driving"
	"github.com/custodia-labs/payslip-cli/internal/logger"
)

// Ensure PayslipService implements the interface.
var _ driving.PayslipService = (*PayslipService)(nil)

// SortedView returns a new slice ordered by FromDate. Equal dates keep
// their input order.
func SortedView(collection []domain.Payslip, order domain.SortOrder) []domain.Payslip {
	type keyed struct {
		payslip domain.Payslip
		day     int64
	}

	items := make([]keyed, len(collection))
	for i, p := range collection {
		var day int64
		if t, err := domain.ParseDate(p.FromDate); err == nil {
			day = t.Unix()
		}
		items[i] = keyed{payslip: p, day: day}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if order == domain.SortOldest {
			return items[i].day < items[j].day
		}
		return items[i].day > items[j].day
	})

	sorted := make([]domain.Payslip, len(items))
	for i := range items {
		sorted[i] = items[i].payslip
	}
	return sorted
}

// AvailableYears returns the distinct FromDate years, newest first.
func AvailableYears(collection []domain.Payslip) []int {
	seen := make(map[int]struct{})
	years := make([]int, 0)
	for _, p := range collection {
		year := domain.YearOf(p.FromDate)
		if year == 0 {
			continue
		}
		if _, ok := seen[year]; ok {
			continue
		}
		seen[year] = struct{}{}
		years = append(years, year)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// FilteredView applies the year filter then the search filter to an
// already sorted slice. An empty or non-numeric year means no year filter.
func FilteredView(sorted []domain.Payslip, selectedYear, searchText string) []domain.Payslip {
	result := sorted

	if year, err := strconv.Atoi(strings.TrimSpace(selectedYear)); err == nil {
		byYear := make([]domain.Payslip, 0, len(result))
		for _, p := range result {
			if domain.YearOf(p.FromDate) == year {
				byYear = append(byYear, p)
			}
		}
		result = byYear
	}

	query := strings.ToLower(strings.TrimSpace(searchText))
	if query != "" {
		matched := make([]domain.Payslip, 0, len(result))
		for _, p := range result {
			if matchesSearch(p, query) {
				matched = append(matched, p)
			}
		}
		result = matched
	}

	return slices.Clone(result)
}

// matchesSearch checks the formatted dates against a lower-cased query.
func matchesSearch(p domain.Payslip, query string) bool {
	from := strings.ToLower(domain.FormatDate(p.FromDate))
	to := strings.ToLower(domain.FormatDate(p.ToDate))
	return strings.Contains(from, query) || strings.Contains(to, query)
}

// PayslipService owns the canonical payslip collection and keeps the
// derived views consistent with the current sort and filter state.
type PayslipService struct {
	mu sync.RWMutex

	collection []domain.Payslip
	byID       map[string]int
	order      domain.SortOrder
	filter     domain.FilterState

	years    []int
	sorted   []domain.Payslip
	filtered []domain.Payslip
}

// NewPayslipService creates a payslip service over the given records.
// Records are copied; duplicate IDs are rejected.
func NewPayslipService(records []domain.Payslip) (*PayslipService, error) {
	collection := slices.Clone(records)
	byID := make(map[string]int, len(collection))
	for i, p := range collection {
		if _, dup := byID[p.ID]; dup {
			return nil, domain.NewAppError(domain.ErrCodeInvalidInput,
				fmt.Sprintf("duplicate payslip id %q", p.ID), domain.ErrInvalidInput)
		}
		byID[p.ID] = i
	}

	s := &PayslipService{
		collection: collection,
		byID:       byID,
		order:      domain.SortRecent,
		years:      AvailableYears(collection),
	}
	s.recompute()
	return s, nil
}

// recompute rebuilds the sort-dependent views (caller must hold lock).
func (s *PayslipService) recompute() {
	s.sorted = SortedView(s.collection, s.order)
	s.filtered = FilteredView(s.sorted, s.filter.SelectedYear, s.filter.SearchText)
	logger.Debug("views: order=%s year=%q search=%q -> %d/%d payslips",
		s.order, s.filter.SelectedYear, s.filter.SearchText, len(s.filtered), len(s.collection))
}

// State returns a consistent snapshot of the current views.
func (s *PayslipService) State() domain.ViewState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.ViewState{
		SortOrder:      s.order,
		Filter:         s.filter,
		AvailableYears: slices.Clone(s.years),
		Sorted:         slices.Clone(s.sorted),
		Filtered:       slices.Clone(s.filtered),
	}
}

// List returns the filtered and sorted payslips.
func (s *PayslipService) List() []domain.Payslip {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.filtered)
}

// AvailableYears returns the distinct years in the collection, newest first.
func (s *PayslipService) AvailableYears() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.years)
}

// GetByID returns the payslip with the given ID, if present.
func (s *PayslipService) GetByID(id string) (domain.Payslip, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return domain.Payslip{}, false
	}
	return s.collection[i], true
}

// SetSortOrder changes the sort order.
func (s *PayslipService) SetSortOrder(order domain.SortOrder) error {
	if !order.IsValid() {
		return domain.NewAppError(domain.ErrCodeInvalidInput,
			fmt.Sprintf("unknown sort order %q", order), domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = order
	s.recompute()
	return nil
}

// ToggleSortOrder flips between recent and oldest first.
func (s *PayslipService) ToggleSortOrder() domain.SortOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = s.order.Toggle()
	s.recompute()
	return s.order
}

// SetSearchText updates the search filter. Invalid text leaves the
// current filter in place.
func (s *PayslipService) SetSearchText(text string) domain.ValidationResult {
	result := domain.ValidateSearchText(text)
	if !result.Valid {
		logger.Warn("rejected search text: %s", result.Error)
		return result
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.SearchText = text
	s.recompute()
	return result
}

// SetSelectedYear updates the year filter. Empty clears it.
func (s *PayslipService) SetSelectedYear(year string) domain.ValidationResult {
	year = strings.TrimSpace(year)
	if year != "" {
		if result := domain.ValidateYear(year); !result.Valid {
			logger.Warn("rejected year filter: %s", result.Error)
			return result
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.SelectedYear = year
	s.recompute()
	return domain.ValidationResult{Valid: true}
}
