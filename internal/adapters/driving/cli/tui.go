package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/present"
	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/tui"
	"github.com/riosdeldesierto/consulta-clientes/internal/core/ports/driving"
	"github.com/riosdeldesierto/consulta-clientes/internal/logger"
)

// TUIConfig holds configuration for the TUI command.
type TUIConfig struct {
	// Session is the root store shared by every panel.
	Session driving.Session

	// Watch blocks, calling onChange whenever the settings file changes.
	Watch func(ctx context.Context, onChange func()) error

	// Reload re-applies the settings and returns the new API base URL
	// and formatter.
	Reload func() (string, *present.Formatter, error)
}

// tuiConfig holds the current TUI configuration.
var tuiConfig *TUIConfig

// isTerminal reports whether stdout is attached to a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal client",
	Long: `Launch the interactive customer lookup client.

Controls:
  Tab / Shift+Tab  Switch panel
  ↑ / ↓            Change document type (search panel)
  Enter            Search / Generate report
  c, e, t          Export CSV, Excel or TXT (detail panel)
  ↑/k, ↓/j         Scroll purchases (detail panel)
  Esc              Dismiss the alert
  Ctrl+C           Quit

Settings changes are picked up while the client runs.`,
	RunE: runTUI,
}

// SetTUIConfig sets the configuration for the TUI command.
func SetTUIConfig(config *TUIConfig) {
	tuiConfig = config
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	if tuiConfig == nil || tuiConfig.Session == nil {
		return errors.New("TUI session not configured")
	}
	if !isTerminal() {
		return errors.New("the interactive client needs a terminal; use 'consulta buscar' instead")
	}

	// Log lines would corrupt the alternate screen.
	if !verbose {
		logger.SetOutput(io.Discard)
		defer logger.SetOutput(os.Stderr)
	}

	ports := tui.NewPorts(lookupService, exportService, reportService, tuiConfig.Session)
	ports.Formatter = formatter
	ports.Watch = tuiConfig.Watch
	ports.Reload = tuiConfig.Reload
	if endpoint != nil {
		ports.BaseURL = endpoint.BaseURL
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := app.Run(ctx); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
