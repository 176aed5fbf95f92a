package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/payslip-cli/internal/core/domain"
)

// rowIDs returns the first column of the table rows.
func rowIDs(out string) []string {
	var ids []string
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 || fields[0] == "ID" || !strings.Contains(line, ".pdf") {
			continue
		}
		ids = append(ids, fields[0])
	}
	return ids
}

func TestListCmd_Default(t *testing.T) {
	setupTestServices(t, testRecords())

	out, err := runCommand(t, "list")

	require.NoError(t, err)
	assert.Equal(t, []string{"3", "2", "1", "6"}, rowIDs(out))
	assert.Contains(t, out, "Mar 1, 2024 – Mar 31, 2024")
	assert.Contains(t, out, "4 of 4 payslips (Most recent first)")
}

func TestRootCmd_ListsByDefault(t *testing.T) {
	setupTestServices(t, testRecords())

	out, err := runCommand(t, "--sort", "oldest")

	require.NoError(t, err)
	assert.Equal(t, []string{"6", "1", "2", "3"}, rowIDs(out))
}

func TestListCmd_Filters(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"year", []string{"list", "--year", "2023"}, []string{"6"}},
		{"search", []string{"list", "-q", "feb"}, []string{"2"}},
		{"year and search", []string{"list", "-y", "2024", "-q", "ma", "-s", "oldest"}, []string{"3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestServices(t, testRecords())

			out, err := runCommand(t, tt.args...)

			require.NoError(t, err)
			assert.Equal(t, tt.want, rowIDs(out))
		})
	}
}

func TestListCmd_EmptyStates(t *testing.T) {
	setupTestServices(t, nil)
	out, err := runCommand(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No payslips available.")

	setupTestServices(t, testRecords())
	out, err = runCommand(t, "list", "--search", "zzz")
	require.NoError(t, err)
	assert.Contains(t, out, "No payslips found. Try adjusting your filters.")
}

func TestListCmd_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"sort", []string{"list", "--sort", "sideways"}},
		{"year", []string{"list", "--year", "abc"}},
		{"search", []string{"list", "--search", "<script>"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestServices(t, testRecords())

			_, err := runCommand(t, tt.args...)

			assert.True(t, domain.IsCode(err, domain.ErrCodeInvalidInput))
		})
	}
}

func TestListCmd_NotConfigured(t *testing.T) {
	setupTestServices(t, nil)
	payslipService = nil

	_, err := runCommand(t, "list")

	assert.ErrorIs(t, err, errNotConfigured)
}

func TestYearsCmd(t *testing.T) {
	setupTestServices(t, testRecords())

	out, err := runCommand(t, "years")

	require.NoError(t, err)
	assert.Equal(t, "2024\n2023\n", out)
}

func TestShowCmd(t *testing.T) {
	env := setupTestServices(t, testRecords())

	out, err := runCommand(t, "show", "2")

	require.NoError(t, err)
	assert.Contains(t, out, "Period:    Feb 1, 2024 – Feb 29, 2024")
	assert.Contains(t, out, "Type:      PDF")
	assert.Contains(t, out, "Saved to:  "+testStorageRoot+"/payslip_2024_02.pdf (no)")
	assert.Empty(t, env.store.Files())
}

func TestShowCmd_NotFound(t *testing.T) {
	setupTestServices(t, testRecords())

	_, err := runCommand(t, "show", "99")

	assert.True(t, domain.IsCode(err, domain.ErrCodePayslipNotFound))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
