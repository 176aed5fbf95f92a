package services

import (
	"context"

	"github.com/custodia-labs/payslip-cli/internal/core/domain"
	"github.com/custodia-labs/payslip-cli/internal/core/ports/driven"
	"github.com/custodia-labs/payslip-cli/internal/logger"
)

// PermissionGate decides whether documents may be written to storage.
type PermissionGate struct {
	platform  domain.Platform
	requester driven.PermissionRequester
}

// NewPermissionGate creates a gate for the platform. The requester is only
// consulted on platforms that need a runtime grant and may be nil elsewhere.
func NewPermissionGate(platform domain.Platform, requester driven.PermissionRequester) *PermissionGate {
	return &PermissionGate{
		platform:  platform,
		requester: requester,
	}
}

// RequestStoragePermission reports whether writing is allowed. It never
// fails: a request that cannot be made counts as a refusal.
func (g *PermissionGate) RequestStoragePermission(ctx context.Context) bool {
	if !g.platform.RequiresStoragePermission() {
		return true
	}
	if g.requester == nil {
		logger.Warn("permission: %s requires a storage grant but no requester is configured", g.platform)
		return false
	}

	granted, err := g.requester.RequestStoragePermission(ctx)
	if err != nil {
		logger.Warn("permission request error: %v", err)
		return false
	}
	logger.Debug("permission: storage grant on %s = %t", g.platform, granted)
	return granted
}
