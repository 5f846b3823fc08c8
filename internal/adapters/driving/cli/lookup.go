package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/present"
	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
)

var (
	typesJSON    bool
	searchType   string
	searchJSON   bool
	exportType   string
	exportFormat string
)

var typesCmd = &cobra.Command{
	Use:   "tipos",
	Short: "List document types",
	Long:  `Lists the document types a customer can be searched by. The first one is the default.`,
	Args:  cobra.NoArgs,
	RunE:  runTypes,
}

var searchCmd = &cobra.Command{
	Use:   "buscar [numero-documento]",
	Short: "Search a customer by document",
	Long: `Searches a customer by document type and number and prints the customer
with their purchase history.

The document type is given by id, code or name; it defaults to the first
type of the catalog.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

var exportCmd = &cobra.Command{
	Use:   "exportar [numero-documento]",
	Short: "Export a customer",
	Long: `Searches a customer and saves the server-generated export as
cliente_<numero>.<csv|xlsx|txt> in the download directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	typesCmd.Flags().BoolVar(&typesJSON, "json", false, "output as JSON")

	searchCmd.Flags().StringVarP(&searchType, "tipo", "t", "", "document type id, code or name")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output as JSON")

	exportCmd.Flags().StringVarP(&exportType, "tipo", "t", "", "document type id, code or name")
	exportCmd.Flags().StringVarP(&exportFormat, "formato", "f", "", "export format: csv, excel or txt")

	rootCmd.AddCommand(typesCmd, searchCmd, exportCmd)
}

func runTypes(cmd *cobra.Command, _ []string) error {
	if lookupService == nil {
		return errors.New("lookup service not configured")
	}

	types, err := lookupService.LoadDocumentTypes(cmd.Context())
	if err != nil {
		return err
	}

	if typesJSON {
		return printJSON(cmd, types)
	}

	cmd.Println("Tipos de documento:")
	for i, t := range types {
		marker := " "
		if i == 0 {
			marker = "*"
		}
		cmd.Printf("  %s [%s] %s\n", marker, t.ID, present.DocumentTypeLabel(t))
	}
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	customer, err := findCustomer(cmd.Context(), searchType, args[0])
	if err != nil {
		return err
	}

	detail := formatter.Customer(customer)
	if searchJSON {
		return printJSON(cmd, detail)
	}

	cmd.Println(domain.MsgCustomerFound)
	cmd.Println()
	printCustomer(cmd, detail)
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportService == nil {
		return errors.New("export service not configured")
	}
	if exportFormat == "" {
		return fmt.Errorf("--formato is required (%s)", formatNames())
	}
	format, err := domain.ParseExportFormat(exportFormat)
	if err != nil {
		return fmt.Errorf("%w (%s)", err, formatNames())
	}

	customer, err := findCustomer(cmd.Context(), exportType, args[0])
	if err != nil {
		return err
	}

	path, err := exportService.ExportCustomer(cmd.Context(), customer, format)
	if err != nil {
		return err
	}
	cmd.Println(domain.MsgExported(path))
	return nil
}

// findCustomer resolves the document type and runs the search.
func findCustomer(ctx context.Context, typeRef, number string) (*domain.Customer, error) {
	if lookupService == nil {
		return nil, errors.New("lookup service not configured")
	}

	docType, err := resolveDocumentType(ctx, typeRef)
	if err != nil {
		return nil, err
	}

	customer, err := lookupService.Search(ctx, domain.SearchQuery{
		DocumentTypeID: docType.ID,
		DocumentNumber: number,
	})
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, errors.New(domain.MsgCustomerNotFound)
	}
	return customer, nil
}

// resolveDocumentType matches ref against the catalog by id, code or name.
// An empty ref selects the first type.
func resolveDocumentType(ctx context.Context, ref string) (domain.DocumentType, error) {
	types, err := lookupService.LoadDocumentTypes(ctx)
	if err != nil {
		return domain.DocumentType{}, err
	}

	ref = strings.TrimSpace(ref)
	if ref == "" {
		docType, ok := domain.DefaultDocumentType(types)
		if !ok {
			return domain.DocumentType{}, domain.ErrNoDocumentTypes
		}
		return docType, nil
	}

	if docType, ok := domain.FindDocumentType(types, domain.ID(ref)); ok {
		return docType, nil
	}
	for _, t := range types {
		if strings.EqualFold(t.Code, ref) || strings.EqualFold(t.Name, ref) {
			return t, nil
		}
	}
	return domain.DocumentType{}, fmt.Errorf("%w: unknown document type %q", domain.ErrInvalidInput, ref)
}

func formatNames() string {
	names := make([]string, 0, len(domain.AllExportFormats()))
	for _, f := range domain.AllExportFormats() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func printCustomer(cmd *cobra.Command, d present.CustomerDetail) {
	cmd.Printf("Nombre:              %s\n", d.Name)
	cmd.Printf("Tipo de Documento:   %s\n", d.DocumentType)
	cmd.Printf("Número de Documento: %s\n", d.DocumentNumber)
	cmd.Printf("Correo:              %s\n", d.Email)
	cmd.Printf("Teléfono:            %s\n", d.Phone)
	cmd.Printf("Fecha de Registro:   %s\n", d.RegisteredAt)
	cmd.Printf("Total de Compras:    %d\n", d.PurchaseCount)
	if d.TotalAmount != "" {
		cmd.Printf("Monto Total:         %s\n", d.TotalAmount)
	}
	cmd.Println()

	if d.NoPurchases {
		cmd.Println(domain.MsgNoPurchases)
		return
	}

	rows := make([][]string, 0, len(d.Purchases))
	for _, p := range d.Purchases {
		rows = append(rows, []string{p.Invoice, p.Date, p.Description, p.Amount, p.StatusLabel})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Factura", "Fecha", "Descripción", "Monto", "Estado").
		Rows(rows...)

	cmd.Println("Historial de Compras")
	cmd.Println(t.String())
}
