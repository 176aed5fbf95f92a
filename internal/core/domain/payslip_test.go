package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTypeOf(t *testing.T) {
	tests := []struct {
		name string
		want FileType
	}{
		{"payslip_jan_2024.pdf", FileTypePDF},
		{"PAYSLIP.PDF", FileTypePDF},
		{"scan.png", FileTypeImage},
		{"scan.jpeg", FileTypeImage},
		{"noextension", FileTypeImage},
		{"archive.pdf.zip", FileTypeImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileTypeOf(tt.name))
		})
	}
}

func TestFileType_Labels(t *testing.T) {
	assert.Equal(t, "PDF", FileTypePDF.Label())
	assert.Equal(t, "Image", FileTypeImage.Label())
	assert.Equal(t, "application/pdf", FileTypePDF.MIMEType())
}

func TestPayslip_Period(t *testing.T) {
	p := Payslip{ID: "1", FromDate: "2024-01-01", ToDate: "2024-01-31", File: "jan.pdf"}

	assert.Equal(t, "Jan 1, 2024 – Jan 31, 2024", p.Period())
	assert.Equal(t, FileTypePDF, p.FileType())
}

func TestSortOrder_Toggle(t *testing.T) {
	assert.Equal(t, SortOldest, SortRecent.Toggle())
	assert.Equal(t, SortRecent, SortOldest.Toggle())
	assert.Equal(t, SortRecent, SortRecent.Toggle().Toggle())
}

func TestParseSortOrder(t *testing.T) {
	order, err := ParseSortOrder(" Oldest ")
	require.NoError(t, err)
	assert.Equal(t, SortOldest, order)

	_, err = ParseSortOrder("sideways")
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrCodeInvalidInput))
}

func TestFilterState_IsEmpty(t *testing.T) {
	assert.True(t, FilterState{}.IsEmpty())
	assert.True(t, FilterState{SearchText: "  "}.IsEmpty())
	assert.False(t, FilterState{SelectedYear: "2024"}.IsEmpty())
}
