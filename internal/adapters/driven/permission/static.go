package permission

import (
	"context"

	"github.com/custodia-labs/payslip-cli/internal/core/ports/driven"
)

// Ensure Static implements the interface.
var _ driven.PermissionRequester = Static{}

// Static answers every request the same way.
type Static struct {
	Granted bool
}

// RequestStoragePermission implements driven.PermissionRequester.
func (s Static) RequestStoragePermission(_ context.Context) (bool, error) {
	return s.Granted, nil
}
