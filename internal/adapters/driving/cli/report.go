package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
)

var reportCmd = &cobra.Command{
	Use:   "reporte",
	Short: "Generate the loyalty report",
	Long: `Generates the Excel report of customers eligible for loyalty benefits and
saves it as reporte_fidelizacion_<YYYY-MM-DD>.xlsx in the download directory.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}

	path, err := reportService.GenerateLoyaltyReport(cmd.Context())
	if err != nil {
		return err
	}
	cmd.Println(domain.MsgExported(path))
	return nil
}
