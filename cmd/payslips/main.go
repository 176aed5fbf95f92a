// Command payslips lists, downloads and previews payslips.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/payslip-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/payslip-cli/internal/core/domain"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, errorMessage(err))
		stop()
		os.Exit(1)
	}
}

// errorMessage prefers the user-facing message of classified errors.
func errorMessage(err error) string {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return domain.UserMessage(err)
	}
	return err.Error()
}
