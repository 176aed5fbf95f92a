package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change storage, platform and retrieval settings.

Settings are stored in config.toml inside the config directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a single setting.

Keys:
  storage.root             storage root directory (default ~/.payslips/storage)
  storage.min_free_bytes   free space required before saving
  platform.os              ios, android or desktop
  platform.api_level       Android API level; below 33 asks for permission
  retrieval.max_attempts   attempts per download, including the first
  retrieval.base_delay     first retry delay, doubled each retry (e.g. 500ms)
  catalogue.path           YAML payslip catalogue (default: bundled)
  viewer.opens_per_second  viewer launch rate limit`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return fmt.Errorf("settings: %w", errNotConfigured)
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Storage]")
	cmd.Printf("  Root: %s\n", valueOrDefault(settings.Storage.Root, "~/.payslips/storage"))
	cmd.Printf("  Minimum free space: %d bytes\n", settings.Storage.MinFreeBytes)
	cmd.Println()

	cmd.Println("[Platform]")
	cmd.Printf("  OS: %s\n", settings.Platform.OS)
	cmd.Printf("  API level: %d\n", settings.Platform.APILevel)
	permission := "not required"
	if settings.Platform.RequiresStoragePermission() {
		permission = "required"
	}
	cmd.Printf("  Storage permission: %s\n", permission)
	cmd.Println()

	cmd.Println("[Retrieval]")
	cmd.Printf("  Max attempts: %d\n", settings.Retrieval.MaxAttempts)
	cmd.Printf("  Base delay: %s\n", settings.Retrieval.BaseDelay)
	cmd.Println()

	cmd.Println("[Catalogue]")
	cmd.Printf("  Path: %s\n", valueOrDefault(settings.Catalogue.Path, "(bundled)"))
	cmd.Println()

	cmd.Println("[Viewer]")
	cmd.Printf("  Opens per second: %g\n", settings.Viewer.OpensPerSecond)

	if err := settingsService.Validate(); err != nil {
		cmd.Println()
		cmd.Printf("Warning: %v\n", err)
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return fmt.Errorf("settings: %w", errNotConfigured)
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return err
	}
	cmd.Printf("Set %s = %s\n", args[0], args[1])
	return nil
}

func valueOrDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
