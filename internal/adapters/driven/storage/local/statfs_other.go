//go:build !linux && !darwin && !freebsd && !windows

package local

import (
	"errors"

	"github.com/custodia-labs/payslip-cli/internal/core/domain"
)

// diskUsage is unsupported on this platform.
func diskUsage(string) (domain.FSInfo, error) {
	return domain.FSInfo{}, errors.New("disk usage not supported on this platform")
}
