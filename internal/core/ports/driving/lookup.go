package driving

import (
	"context"

	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
)

// LookupService loads the document type catalog and searches customers.
// Failures are returned as *domain.FlowError carrying the operator message.
type LookupService interface {
	// LoadDocumentTypes returns the catalog. An empty catalog is reported
	// as a load failure wrapping domain.ErrNoDocumentTypes.
	LoadDocumentTypes(ctx context.Context) ([]domain.DocumentType, error)

	// Search validates the query and looks the customer up.
	// Blank input fails with domain.ErrValidation without any request.
	Search(ctx context.Context, query domain.SearchQuery) (*domain.Customer, error)
}
