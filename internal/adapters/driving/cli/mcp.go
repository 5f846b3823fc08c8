package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/mcp"
	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Expose customer lookup to AI assistants",
	Long: `Serve the document type catalog and customer search over the Model
Context Protocol.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve lookups over MCP",
	Long: `Serve customer lookups to an MCP client.

Tools:
  listar_tipos_documento   document types a customer can be searched by
  buscar_cliente           customer and purchase history by document type id and number

Resources:
  consulta://tipos-documento
  consulta://clientes/{tipoDocumentoId}/{numeroDocumento}

Exports and the loyalty report are not offered; use 'consulta exportar' and
'consulta reporte'. Amounts and dates follow the locale, currency and
timezone settings, and requests go to the configured api_url.

The server speaks JSON-RPC on stdin/stdout unless --port is given, in which
case it serves streamable HTTP on that port:

  consulta mcp serve
  consulta mcp serve --port 8080`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	if port < 0 || port > 65535 {
		return fmt.Errorf("%w: port %d out of range", domain.ErrInvalidInput, port)
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Lookup:    lookupService,
		Formatter: formatter,
	})
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		cmd.Printf("Serving MCP on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
