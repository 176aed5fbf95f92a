package domain

import (
	"strings"
	"time"
)

// DateLayout is the calendar date layout used by payslip records.
const DateLayout = "2006-01-02"

// displayLayout renders "Jan 5, 2024"; the day is never zero padded.
const displayLayout = "Jan 2, 2006"

// ParseDate parses a YYYY-MM-DD date as a UTC calendar day.
// The result never shifts with the local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
}

// FormatDate renders an ISO date as "Jan 15, 2024".
// Unparseable input is returned unchanged.
func FormatDate(isoDate string) string {
	t, err := ParseDate(isoDate)
	if err != nil {
		return isoDate
	}
	return t.Format(displayLayout)
}

// FormatDateRange renders "Jan 1, 2024 – Jan 31, 2024" using an en dash.
func FormatDateRange(fromDate, toDate string) string {
	return FormatDate(fromDate) + " – " + FormatDate(toDate)
}

// YearOf returns the calendar year of an ISO date, or 0 if it cannot be parsed.
func YearOf(isoDate string) int {
	t, err := ParseDate(isoDate)
	if err != nil {
		return 0
	}
	return t.Year()
}
