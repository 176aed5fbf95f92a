// Package tui provides an interactive terminal user interface for browsing
// payslips. It implements a driving adapter following hexagonal architecture
// principles.
package tui

import (
	"github.com/custodia-labs/payslip-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Payslips owns the collection and its sorted, filtered views.
	Payslips driving.PayslipService

	// Retrieval saves and opens payslip documents.
	Retrieval driving.RetrievalService

	// Permission receives storage grant requests raised during downloads.
	// Optional: without it the retrieval service's own requester is used.
	Permission *PermissionPrompt
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(payslips driving.PayslipService, retrieval driving.RetrievalService) *Ports {
	return &Ports{
		Payslips:  payslips,
		Retrieval: retrieval,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Payslips == nil {
		return ErrMissingPayslipService
	}
	if p.Retrieval == nil {
		return ErrMissingRetrievalService
	}
	return nil
}
