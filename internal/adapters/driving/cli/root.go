// Package cli provides the cobra command tree for the payslips binary.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/payslip-cli/internal/core/ports/driven"
	"github.com/custodia-labs/payslip-cli/internal/core/ports/driving"
	"github.com/custodia-labs/payslip-cli/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Options are the global flag values handed to the bootstrap function.
type Options struct {
	// ConfigDir overrides ~/.payslips.
	ConfigDir string
}

// Services are the driving ports the commands call into.
type Services struct {
	Payslips  driving.PayslipService
	Retrieval driving.RetrievalService
	Settings  driving.SettingsService

	// Permissions lets interactive surfaces take over storage grant
	// prompts. Optional.
	Permissions PermissionRouter
}

// PermissionRouter redirects storage grant requests to another requester
// until the returned restore func is called.
type PermissionRouter interface {
	Route(requester driven.PermissionRequester) (restore func())
}

// Bootstrap builds the services once global flags are parsed.
type Bootstrap func(opts Options) (*Services, error)

var (
	bootstrap        Bootstrap
	payslipService   driving.PayslipService
	retrievalService driving.RetrievalService
	settingsService  driving.SettingsService
	permissionRouter PermissionRouter

	verboseFlag   bool
	configDirFlag string
)

// errNotConfigured is returned when a command runs without its service.
var errNotConfigured = errors.New("service not configured")

var rootCmd = &cobra.Command{
	Use:   "payslips",
	Short: "Browse, download and preview your payslips",
	Long: `payslips lists your payslips, filters them by year or date text,
and saves a copy of any payslip to local storage for viewing.

Run without arguments for the list, or use "payslips tui" for the
interactive browser.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		if cmd.Name() == "help" || cmd.Name() == "version" || bootstrap == nil {
			return nil
		}

		services, err := bootstrap(Options{ConfigDir: configDirFlag})
		if err != nil {
			return fmt.Errorf("failed to initialise: %w", err)
		}
		SetServices(services)
		return nil
	},
	RunE: runList,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "print debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "configuration directory (default ~/.payslips)")
	addListFlags(rootCmd)
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap registers the function that builds services after flag parsing.
func SetBootstrap(fn Bootstrap) {
	bootstrap = fn
}

// SetServices installs the driving ports used by commands.
func SetServices(s *Services) {
	if s == nil {
		return
	}
	payslipService = s.Payslips
	retrievalService = s.Retrieval
	settingsService = s.Settings
	permissionRouter = s.Permissions
}

// Execute runs the root command. Command output goes to stdout so listings
// can be piped; cobra would otherwise print to stderr.
func Execute(ctx context.Context) error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.ExecuteContext(ctx)
}
