package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change persisted settings.

Environment variables (CONSULTA_<KEY>, and REACT_APP_API_URL for api_url)
take precedence over the settings file.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a setting",
	Long: `Validate and persist a single setting.

Keys:
  api_url       API base URL
  api_timeout   request timeout, e.g. 30s
  api_rate      maximum requests per second (0 = unlimited)
  download_dir  where exports and reports are saved
  locale        es-CO or en-US style language tag
  currency      ISO 4217 code, e.g. COP
  timezone      IANA zone, e.g. America/Bogota
  log_level     debug, info, warn or error`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsUnsetCmd = &cobra.Command{
	Use:   "unset [key]",
	Short: "Remove a setting, restoring its default",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsUnset,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsUnsetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	defaults := settingsService.GetDefaults()

	cmd.Println("Current Settings")
	cmd.Println("================")
	if path := settingsService.Path(); path != "" {
		cmd.Printf("File: %s\n", path)
	}
	cmd.Println()

	for _, key := range settingsService.Keys() {
		value := settings.Value(key)
		suffix := ""
		if value == defaults.Value(key) {
			suffix = " (default)"
		}
		if value == "" {
			value = "(not set)"
		}
		cmd.Printf("  %-13s %s%s\n", key, value, suffix)
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if !domain.IsSettingKey(key) {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s\n", key)
	return nil
}

func runSettingsUnset(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Unset(args[0]); err != nil {
		return fmt.Errorf("failed to unset %s: %w", args[0], err)
	}

	cmd.Printf("Unset %s\n", args[0])
	return nil
}
