package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil payslip service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingPayslipService)
	})

	t.Run("payslips only creates server", func(t *testing.T) {
		server, err := NewServer(&Ports{Payslips: newPayslipService(t)})
		require.NoError(t, err)
		assert.NotNil(t, server)
	})

	t.Run("with retrieval creates server", func(t *testing.T) {
		assert.NotNil(t, newTestServer(t, &mockRetrievalService{}))
	})
}

func TestPorts_Validate(t *testing.T) {
	assert.ErrorIs(t, (&Ports{}).Validate(), ErrMissingPayslipService)
	assert.ErrorIs(t, (&Ports{Retrieval: &mockRetrievalService{}}).Validate(), ErrMissingPayslipService)
	assert.NoError(t, (&Ports{Payslips: newPayslipService(t)}).Validate())
}
