package driven

import (
	"context"

	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
)

// CustomerAPI is the remote customer service.
// Implementations perform exactly one request per call and never retry.
//
// Non-2xx responses are returned as *domain.APIError. Requests that got no
// response at all wrap domain.ErrUnreachable.
type CustomerAPI interface {
	// ListDocumentTypes returns the document type catalog.
	// An empty catalog is a valid result, not an error.
	ListDocumentTypes(ctx context.Context) ([]domain.DocumentType, error)

	// SearchCustomer looks up a customer by document type and number.
	SearchCustomer(ctx context.Context, documentTypeID domain.ID, documentNumber string) (*domain.Customer, error)

	// ExportCustomer returns the customer rendered by the server in the given format.
	ExportCustomer(ctx context.Context, customerID domain.ID, format domain.ExportFormat) ([]byte, error)

	// GenerateLoyaltyReport returns the loyalty spreadsheet.
	GenerateLoyaltyReport(ctx context.Context) ([]byte, error)

	// BaseURL returns the API base URL currently in use.
	BaseURL() string
}
