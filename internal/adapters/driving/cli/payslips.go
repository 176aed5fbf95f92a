package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/payslip-cli/internal/core/domain"
)

var (
	listSort   string
	listYear   string
	listSearch string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List payslips",
	Long: `List payslips, newest first by default.

Examples:
  payslips list --year 2024
  payslips list --sort oldest --search mar`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var yearsCmd = &cobra.Command{
	Use:   "years",
	Short: "List years that have payslips",
	Args:  cobra.NoArgs,
	RunE:  runYears,
}

var showCmd = &cobra.Command{
	Use:   "show [payslip-id]",
	Short: "Show payslip details",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	addListFlags(listCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(yearsCmd)
	rootCmd.AddCommand(showCmd)
}

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&listSort, "sort", "s", string(domain.SortRecent), "sort order: recent or oldest")
	cmd.Flags().StringVarP(&listYear, "year", "y", "", "only show payslips starting in this year")
	cmd.Flags().StringVarP(&listSearch, "search", "q", "", "match text in the formatted dates, e.g. \"mar\"")
}

func runList(cmd *cobra.Command, _ []string) error {
	if payslipService == nil {
		return fmt.Errorf("payslips: %w", errNotConfigured)
	}

	order, err := domain.ParseSortOrder(listSort)
	if err != nil {
		return err
	}
	if err := payslipService.SetSortOrder(order); err != nil {
		return err
	}
	if result := payslipService.SetSelectedYear(listYear); !result.Valid {
		return domain.NewAppError(domain.ErrCodeInvalidInput, result.Error, domain.ErrInvalidInput)
	}
	if result := payslipService.SetSearchText(listSearch); !result.Valid {
		return domain.NewAppError(domain.ErrCodeInvalidInput, result.Error, domain.ErrInvalidInput)
	}

	state := payslipService.State()
	if len(state.Filtered) == 0 {
		if state.Filter.IsEmpty() {
			cmd.Println("No payslips available.")
		} else {
			cmd.Println("No payslips found. Try adjusting your filters.")
		}
		return nil
	}

	cmd.Printf("%-6s %-30s %-5s %s\n", "ID", "PERIOD", "TYPE", "FILE")
	for _, p := range state.Filtered {
		cmd.Printf("%-6s %-30s %-5s %s\n", p.ID, p.Period(), p.FileType().Label(), p.File)
	}
	cmd.Printf("\n%d of %d payslips (%s)\n", len(state.Filtered), len(state.Sorted), state.SortOrder.Description())
	return nil
}

func runYears(cmd *cobra.Command, _ []string) error {
	if payslipService == nil {
		return fmt.Errorf("payslips: %w", errNotConfigured)
	}

	years := payslipService.AvailableYears()
	if len(years) == 0 {
		cmd.Println("No payslips available.")
		return nil
	}
	for _, year := range years {
		cmd.Println(year)
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	payslip, err := lookupPayslip(args[0])
	if err != nil {
		return err
	}

	cmd.Println("Payslip Details")
	cmd.Println("===============")
	cmd.Printf("ID:        %s\n", payslip.ID)
	cmd.Printf("Period:    %s\n", payslip.Period())
	cmd.Printf("From:      %s\n", domain.FormatDate(payslip.FromDate))
	cmd.Printf("To:        %s\n", domain.FormatDate(payslip.ToDate))
	cmd.Printf("File:      %s\n", payslip.File)
	cmd.Printf("Type:      %s\n", payslip.FileType().Label())

	if retrievalService != nil {
		if path, err := retrievalService.CanonicalPath(payslip); err == nil {
			stored := "no"
			if retrievalService.IsStored(cmd.Context(), payslip) {
				stored = "yes"
			}
			cmd.Printf("Saved to:  %s (%s)\n", path, stored)
		}
	}
	return nil
}

// lookupPayslip resolves an id from the command line.
func lookupPayslip(id string) (domain.Payslip, error) {
	if payslipService == nil {
		return domain.Payslip{}, fmt.Errorf("payslips: %w", errNotConfigured)
	}

	id = strings.TrimSpace(id)
	payslip, ok := payslipService.GetByID(id)
	if !ok {
		return domain.Payslip{}, domain.NewAppError(domain.ErrCodePayslipNotFound, "",
			fmt.Errorf("payslip %q: %w", id, domain.ErrNotFound))
	}
	return payslip, nil
}
