// Package mcp provides an MCP (Model Context Protocol) server adapter for
// browsing and saving payslips from AI assistants.
package mcp

import "errors"

// ErrMissingPayslipService is returned when the payslip service is not provided.
var ErrMissingPayslipService = errors.New("mcp: payslip service is required")
