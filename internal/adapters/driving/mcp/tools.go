package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/present"
	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
)

// ListTypesInput is the input schema for the listar_tipos_documento tool.
type ListTypesInput struct{}

// ListTypesOutput is the output schema for the listar_tipos_documento tool.
type ListTypesOutput struct {
	Types []DocumentTypeOutput `json:"tipos"`
	Count int                  `json:"total"`
}

// DocumentTypeOutput represents a single document type.
type DocumentTypeOutput struct {
	ID          string `json:"id"`
	Code        string `json:"codigo,omitempty"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion,omitempty"`
	Label       string `json:"etiqueta"`
}

// SearchInput is the input schema for the buscar_cliente tool.
type SearchInput struct {
	DocumentTypeID string `json:"tipo_documento_id" jsonschema:"id of the document type, from listar_tipos_documento"`
	DocumentNumber string `json:"numero_documento" jsonschema:"the customer's document number"`
}

// Tool names.
const (
	toolListTypes = "listar_tipos_documento"
	toolSearch    = "buscar_cliente"
)

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        toolListTypes,
		Description: "List the document types a customer can be searched by",
	}, s.handleListTypes)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        toolSearch,
		Description: "Find a customer by document type and number, with their purchase history",
	}, s.handleSearch)
}

// handleListTypes handles the listar_tipos_documento tool invocation.
func (s *Server) handleListTypes(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListTypesInput,
) (*mcp.CallToolResult, ListTypesOutput, error) {
	types, err := s.lookup.LoadDocumentTypes(ctx)
	if err != nil {
		return nil, ListTypesOutput{}, userError(err, domain.MsgNoDocumentTypes)
	}

	output := ListTypesOutput{
		Types: make([]DocumentTypeOutput, len(types)),
		Count: len(types),
	}
	for i, t := range types {
		output.Types[i] = DocumentTypeOutput{
			ID:          t.ID.String(),
			Code:        t.Code,
			Name:        t.Name,
			Description: t.Description,
			Label:       present.DocumentTypeLabel(t),
		}
	}

	return nil, output, nil
}

// handleSearch handles the buscar_cliente tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, present.CustomerDetail, error) {
	customer, err := s.search(ctx, input.DocumentTypeID, input.DocumentNumber)
	if err != nil {
		return nil, present.CustomerDetail{}, err
	}
	return nil, s.formatter.Customer(customer), nil
}

func (s *Server) search(ctx context.Context, typeID, number string) (*domain.Customer, error) {
	customer, err := s.lookup.Search(ctx, domain.SearchQuery{
		DocumentTypeID: domain.ID(typeID),
		DocumentNumber: number,
	})
	if err != nil {
		return nil, userError(err, domain.MsgSearchFailed)
	}
	if customer == nil {
		return nil, errors.New(domain.MsgCustomerNotFound)
	}
	return customer, nil
}

// userError reduces err to the operator message shown by the other clients.
func userError(err error, fallback string) error {
	return errors.New(domain.UserMessage(err, fallback))
}
