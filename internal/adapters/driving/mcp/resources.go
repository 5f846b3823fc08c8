package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for consulta resources.
	uriScheme = "consulta://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the document type catalog.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "tipos-documento",
		Name:        "tipos-documento",
		Description: "Document type catalog",
		MIMEType:    "application/json",
	}, s.handleTypesResource)

	// Template for a customer detail.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "clientes/{tipoDocumentoId}/{numeroDocumento}",
		Name:        "cliente",
		Description: "Customer detail with purchase history",
		MIMEType:    "application/json",
	}, s.handleCustomerResource)
}

// handleTypesResource returns the document type catalog.
func (s *Server) handleTypesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	_, output, err := s.handleListTypes(ctx, nil, ListTypesInput{})
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, output.Types)
}

// handleCustomerResource returns the detail of the customer named by the URI.
func (s *Server) handleCustomerResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	typeID, number := extractCustomerKey(req.Params.URI)
	if typeID == "" || number == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	customer, err := s.search(ctx, typeID, number)
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, s.formatter.Customer(customer))
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractCustomerKey extracts the type id and document number from a URI
// like consulta://clientes/{tipoDocumentoId}/{numeroDocumento}.
func extractCustomerKey(uri string) (string, string) {
	const prefix = uriScheme + "clientes/"

	if !strings.HasPrefix(uri, prefix) {
		return "", ""
	}

	parts := strings.Split(strings.TrimPrefix(uri, prefix), "/")
	if len(parts) != 2 {
		return "", ""
	}
	return parts[0], parts[1]
}
