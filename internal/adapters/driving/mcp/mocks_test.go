package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/payslip-cli/internal/core/domain"
	"github.com/custodia-labs/payslip-cli/internal/core/ports/driving"
	"github.com/custodia-labs/payslip-cli/internal/core/services"
)

// mockRetrievalService is a mock implementation of driving.RetrievalService.
type mockRetrievalService struct {
	stored map[string]bool
	err    error
}

var _ driving.RetrievalService = (*mockRetrievalService)(nil)

func (m *mockRetrievalService) Acquire(_ context.Context, p domain.Payslip) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if m.stored == nil {
		m.stored = make(map[string]bool)
	}
	m.stored[p.ID] = true
	return "/storage/" + p.File, nil
}

func (m *mockRetrievalService) Preview(context.Context, domain.Payslip) error {
	return m.err
}

func (m *mockRetrievalService) CanonicalPath(p domain.Payslip) (string, error) {
	return "/storage/" + p.File, nil
}

func (m *mockRetrievalService) IsStored(_ context.Context, p domain.Payslip) bool {
	return m.stored[p.ID]
}

func (m *mockRetrievalService) LocationMessage(path string) string {
	return "File saved to: " + path
}

func (m *mockRetrievalService) Watch(context.Context) (<-chan domain.StorageEvent, error) {
	return nil, nil
}

func testPayslips() []domain.Payslip {
	return []domain.Payslip{
		{ID: "1", FromDate: "2024-01-01", ToDate: "2024-01-31", File: "payslip_2024_01.pdf"},
		{ID: "2", FromDate: "2024-02-01", ToDate: "2024-02-29", File: "payslip_2024_02.pdf"},
		{ID: "3", FromDate: "2024-03-01", ToDate: "2024-03-31", File: "payslip_2024_03.pdf"},
		{ID: "6", FromDate: "2023-12-01", ToDate: "2023-12-31", File: "payslip_2023_12.pdf"},
	}
}

func newPayslipService(t *testing.T) *services.PayslipService {
	t.Helper()
	svc, err := services.NewPayslipService(testPayslips())
	require.NoError(t, err)
	return svc
}

func newTestServer(t *testing.T, retrieval driving.RetrievalService) *Server {
	t.Helper()
	server, err := NewServer(&Ports{Payslips: newPayslipService(t), Retrieval: retrieval})
	require.NoError(t, err)
	return server
}
