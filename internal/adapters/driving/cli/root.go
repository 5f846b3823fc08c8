// Package cli provides the consulta command line interface.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/present"
	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
	"github.com/riosdeldesierto/consulta-clientes/internal/core/ports/driving"
	"github.com/riosdeldesierto/consulta-clientes/internal/logger"
)

// version is set at build time.
var version = "dev"

// Endpoint exposes the API base URL in use.
type Endpoint interface {
	BaseURL() string
	SetBaseURL(raw string)
}

// Services holds the core services the commands drive.
type Services struct {
	Lookup    driving.LookupService
	Export    driving.ExportService
	Report    driving.ReportService
	Settings  driving.SettingsService
	Formatter *present.Formatter
	Endpoint  Endpoint
}

var (
	lookupService   driving.LookupService
	exportService   driving.ExportService
	reportService   driving.ReportService
	settingsService driving.SettingsService
	formatter       = present.DefaultFormatter()
	endpoint        Endpoint
)

var (
	verbose bool
	apiURL  string
)

var rootCmd = &cobra.Command{
	Use:   "consulta",
	Short: "Customer lookup client",
	Long: `consulta looks customers up by document type and number, shows their
purchase history, exports them as CSV, Excel or TXT and generates the
loyalty report.

Run 'consulta tui' for the interactive client.`,
	SilenceUsage:      true,
	PersistentPreRunE: applyGlobalFlags,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "API base URL (overrides settings)")
}

func applyGlobalFlags(cmd *cobra.Command, _ []string) error {
	if verbose {
		logger.SetVerbose(true)
	}

	if !cmd.Flags().Changed("api-url") {
		return nil
	}
	parsed, err := domain.ParseSetting(domain.SettingAPIURL, apiURL)
	if err != nil {
		return err
	}
	if endpoint == nil {
		return fmt.Errorf("api client not configured")
	}
	endpoint.SetBaseURL(parsed.(string))
	logger.Debug("api url overridden: %s", endpoint.BaseURL())
	return nil
}

// SetServices sets the services used by the commands.
func SetServices(s Services) {
	lookupService = s.Lookup
	exportService = s.Export
	reportService = s.Report
	settingsService = s.Settings
	endpoint = s.Endpoint
	if s.Formatter != nil {
		formatter = s.Formatter
	}
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.Execute()
}
