package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/payslip-cli/internal/core/domain"
)

func outputIDs(ps []PayslipOutput) []string {
	ids := make([]string, len(ps))
	for i, p := range ps {
		ids[i] = p.ID
	}
	return ids
}

func TestServer_handleList(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to most recent first", func(t *testing.T) {
		server := newTestServer(t, nil)

		_, out, err := server.handleList(ctx, nil, ListInput{})

		require.NoError(t, err)
		assert.Equal(t, []string{"3", "2", "1", "6"}, outputIDs(out.Payslips))
		assert.Equal(t, 4, out.Count)
		assert.Equal(t, 4, out.Total)
		assert.Equal(t, []int{2024, 2023}, out.AvailableYears)
		assert.Equal(t, "Mar 1, 2024 – Mar 31, 2024", out.Payslips[0].Period)
		assert.Equal(t, "PDF", out.Payslips[0].Type)
	})

	t.Run("filters and sorts", func(t *testing.T) {
		server := newTestServer(t, nil)

		_, out, err := server.handleList(ctx, nil, ListInput{Sort: "oldest", Year: "2024", Search: "ma"})

		require.NoError(t, err)
		assert.Equal(t, []string{"3"}, outputIDs(out.Payslips))
		assert.Equal(t, 4, out.Total)
	})

	t.Run("calls are independent", func(t *testing.T) {
		server := newTestServer(t, nil)
		_, _, err := server.handleList(ctx, nil, ListInput{Year: "2023"})
		require.NoError(t, err)

		_, out, err := server.handleList(ctx, nil, ListInput{})

		require.NoError(t, err)
		assert.Equal(t, 4, out.Count)
	})

	t.Run("rejects invalid sort", func(t *testing.T) {
		server := newTestServer(t, nil)

		_, _, err := server.handleList(ctx, nil, ListInput{Sort: "sideways"})

		assert.True(t, domain.IsCode(err, domain.ErrCodeInvalidInput))
	})

	t.Run("rejects invalid year", func(t *testing.T) {
		server := newTestServer(t, nil)

		_, _, err := server.handleList(ctx, nil, ListInput{Year: "1850"})

		assert.True(t, domain.IsCode(err, domain.ErrCodeInvalidInput))
	})

	t.Run("rejects invalid search", func(t *testing.T) {
		server := newTestServer(t, nil)

		_, _, err := server.handleList(ctx, nil, ListInput{Search: "<script>"})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejected input leaves the view untouched", func(t *testing.T) {
		server := newTestServer(t, nil)
		_, _, err := server.handleList(ctx, nil, ListInput{Year: "2024", Search: "jan"})
		require.NoError(t, err)

		_, _, err = server.handleList(ctx, nil, ListInput{Sort: "oldest", Year: "2023", Search: "<script>"})
		require.Error(t, err)

		state := server.ports.Payslips.State()
		assert.Equal(t, domain.SortRecent, state.SortOrder)
		assert.Equal(t, "2024", state.Filter.SelectedYear)
		assert.Equal(t, "jan", state.Filter.SearchText)
	})

	t.Run("reports stored documents", func(t *testing.T) {
		server := newTestServer(t, &mockRetrievalService{stored: map[string]bool{"2": true}})

		_, out, err := server.handleList(ctx, nil, ListInput{})

		require.NoError(t, err)
		assert.True(t, out.Payslips[1].Stored)
		assert.Equal(t, "/storage/payslip_2024_02.pdf", out.Payslips[1].Path)
		assert.False(t, out.Payslips[0].Stored)
		assert.Empty(t, out.Payslips[0].Path)
	})
}

func TestServer_handleGet(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t, nil)

	_, out, err := server.handleGet(ctx, nil, IDInput{ID: "6"})
	require.NoError(t, err)
	assert.Equal(t, "2023-12-01", out.FromDate)
	assert.Equal(t, "payslip_2023_12.pdf", out.File)

	_, _, err = server.handleGet(ctx, nil, IDInput{ID: "99"})
	assert.True(t, domain.IsCode(err, domain.ErrCodePayslipNotFound))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestServer_handleDownload(t *testing.T) {
	ctx := context.Background()

	t.Run("saves the document", func(t *testing.T) {
		retrieval := &mockRetrievalService{}
		server := newTestServer(t, retrieval)

		_, out, err := server.handleDownload(ctx, nil, IDInput{ID: "1"})

		require.NoError(t, err)
		assert.Equal(t, "/storage/payslip_2024_01.pdf", out.Path)
		assert.Equal(t, "File saved to: /storage/payslip_2024_01.pdf", out.Message)
		assert.True(t, retrieval.stored["1"])
	})

	t.Run("surfaces the user message", func(t *testing.T) {
		cause := domain.NewAppError(domain.ErrCodeInsufficientStorage, "", errors.New("full"))
		server := newTestServer(t, &mockRetrievalService{err: cause})

		_, _, err := server.handleDownload(ctx, nil, IDInput{ID: "1"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrCodeInsufficientStorage.Message())
		assert.True(t, domain.IsCode(err, domain.ErrCodeInsufficientStorage))
	})

	t.Run("unknown id", func(t *testing.T) {
		server := newTestServer(t, &mockRetrievalService{})

		_, _, err := server.handleDownload(ctx, nil, IDInput{ID: "nope"})

		assert.True(t, domain.IsCode(err, domain.ErrCodePayslipNotFound))
	})
}
