package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/payslip-cli/internal/core/domain"
	"github.com/custodia-labs/payslip-cli/internal/core/ports/driving"
	"github.com/custodia-labs/payslip-cli/internal/core/services"
)

// MockRetrievalService implements driving.RetrievalService for testing.
type MockRetrievalService struct {
	AcquireFunc func(ctx context.Context, p domain.Payslip) (string, error)
	PreviewFunc func(ctx context.Context, p domain.Payslip) error
	WatchFunc   func(ctx context.Context) (<-chan domain.StorageEvent, error)
	Stored      map[string]bool
}

func (m *MockRetrievalService) Acquire(ctx context.Context, p domain.Payslip) (string, error) {
	if m.AcquireFunc != nil {
		return m.AcquireFunc(ctx, p)
	}
	return "/tmp/" + p.File, nil
}

func (m *MockRetrievalService) Preview(ctx context.Context, p domain.Payslip) error {
	if m.PreviewFunc != nil {
		return m.PreviewFunc(ctx, p)
	}
	return nil
}

func (m *MockRetrievalService) CanonicalPath(p domain.Payslip) (string, error) {
	return "/tmp/" + p.File, nil
}

func (m *MockRetrievalService) IsStored(_ context.Context, p domain.Payslip) bool {
	return m.Stored[p.ID]
}

func (m *MockRetrievalService) LocationMessage(path string) string {
	return "File saved to: " + path
}

func (m *MockRetrievalService) Watch(ctx context.Context) (<-chan domain.StorageEvent, error) {
	if m.WatchFunc != nil {
		return m.WatchFunc(ctx)
	}
	return nil, nil
}

var _ driving.RetrievalService = (*MockRetrievalService)(nil)

func newPayslipService(t *testing.T) *services.PayslipService {
	t.Helper()
	svc, err := services.NewPayslipService([]domain.Payslip{
		{ID: "1", FromDate: "2024-01-01", ToDate: "2024-01-31", File: "payslip_2024_01.pdf"},
		{ID: "2", FromDate: "2024-02-01", ToDate: "2024-02-29", File: "payslip_2024_02.pdf"},
	})
	require.NoError(t, err)
	return svc
}

func TestNewPorts(t *testing.T) {
	payslips := newPayslipService(t)
	retrieval := &MockRetrievalService{}

	ports := NewPorts(payslips, retrieval)

	assert.Equal(t, payslips, ports.Payslips)
	assert.Equal(t, retrieval, ports.Retrieval)
	assert.NoError(t, ports.Validate())
}

func TestPorts_Validate(t *testing.T) {
	payslips := newPayslipService(t)

	tests := []struct {
		name  string
		ports *Ports
		want  error
	}{
		{"nil ports", nil, ErrInvalidPorts},
		{"missing payslips", &Ports{Retrieval: &MockRetrievalService{}}, ErrMissingPayslipService},
		{"missing retrieval", &Ports{Payslips: payslips}, ErrMissingRetrievalService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.ports.Validate(), tt.want)
		})
	}
}
