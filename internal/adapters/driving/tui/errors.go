package tui

import "errors"

// ErrMissingPayslipService is returned when the payslip service is not provided.
var ErrMissingPayslipService = errors.New("tui: payslip service is required")

// ErrMissingRetrievalService is returned when the retrieval service is not provided.
var ErrMissingRetrievalService = errors.New("tui: retrieval service is required")

// ErrInvalidPorts is returned when no ports are provided at all.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
