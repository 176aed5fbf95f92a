//go:build linux || darwin || freebsd

package local

import (
	"golang.org/x/sys/unix"

	"github.com/custodia-labs/payslip-cli/internal/core/domain"
)

// diskUsage reads filesystem capacity with statfs(2).
func diskUsage(path string) (domain.FSInfo, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return domain.FSInfo{}, err
	}

	// Bavail counts blocks available to unprivileged users.
	bsize := int64(st.Bsize)
	return domain.FSInfo{
		FreeSpace:  int64(st.Bavail) * bsize,
		TotalSpace: int64(st.Blocks) * bsize,
	}, nil
}
