//go:build windows

package local

import (
	"golang.org/x/sys/windows"

	"github.com/custodia-labs/payslip-cli/internal/core/domain"
)

// diskUsage reads filesystem capacity with GetDiskFreeSpaceEx.
func diskUsage(path string) (domain.FSInfo, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return domain.FSInfo{}, err
	}

	var freeToCaller, total, totalFree uint64
	if err := windows.GetDiskFreeSpaceEx(p, &freeToCaller, &total, &totalFree); err != nil {
		return domain.FSInfo{}, err
	}
	return domain.FSInfo{
		FreeSpace:  int64(freeToCaller),
		TotalSpace: int64(total),
	}, nil
}
