package mcp

import (
	"github.com/custodia-labs/payslip-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Payslips owns the collection and its sorted, filtered views.
	Payslips driving.PayslipService

	// Retrieval saves payslip documents. Optional; without it the
	// download tool is not registered.
	Retrieval driving.RetrievalService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Payslips == nil {
		return ErrMissingPayslipService
	}
	return nil
}
