package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/payslip-cli/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive payslip browser.

List:
  ↑/k, ↓/j - Navigate
  /        - Search by month or date
  s        - Toggle newest/oldest first
  y        - Cycle the year filter
  Enter    - Open details
  q        - Quit

Details:
  d        - Download to local storage
  p        - Preview in the default viewer
  r        - Retry a failed preview
  Enter    - Dismiss a message
  Esc      - Back to the list`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := tui.NewPorts(payslipService, retrievalService)
	if permissionRouter != nil {
		// bubbletea owns stdin while running; ask through the app instead.
		ports.Permission = tui.NewPermissionPrompt()
		restore := permissionRouter.Route(ports.Permission)
		defer restore()
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if err := app.WithContext(cmd.Context()).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
