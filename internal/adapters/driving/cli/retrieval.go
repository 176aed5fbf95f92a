package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/payslip-cli/internal/logger"
)

var downloadCmd = &cobra.Command{
	Use:   "download [payslip-id]",
	Short: "Save a payslip to local storage",
	Long: `Save a payslip to local storage. An existing copy is replaced.

The storage location depends on the platform.os setting; see
"payslips settings".`,
	Args: cobra.ExactArgs(1),
	RunE: runDownload,
}

var previewCmd = &cobra.Command{
	Use:   "preview [payslip-id]",
	Short: "Open a payslip in the default viewer",
	Long:  `Open a payslip in the default viewer, downloading it first if needed.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(previewCmd)
}

func runDownload(cmd *cobra.Command, args []string) error {
	if retrievalService == nil {
		return fmt.Errorf("retrieval: %w", errNotConfigured)
	}
	payslip, err := lookupPayslip(args[0])
	if err != nil {
		return err
	}

	path, err := retrievalService.Acquire(cmd.Context(), payslip)
	if err != nil {
		logger.Error(err, "download "+payslip.ID)
		return err
	}

	cmd.Println("Download Complete")
	cmd.Println(retrievalService.LocationMessage(path))
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	if retrievalService == nil {
		return fmt.Errorf("retrieval: %w", errNotConfigured)
	}
	payslip, err := lookupPayslip(args[0])
	if err != nil {
		return err
	}

	if err := retrievalService.Preview(cmd.Context(), payslip); err != nil {
		logger.Error(err, "preview "+payslip.ID)
		return err
	}

	cmd.Printf("Opened payslip %s (%s)\n", payslip.ID, payslip.Period())
	return nil
}
