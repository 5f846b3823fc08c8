package services

import (
	"context"
	"strings"

	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
	"github.com/riosdeldesierto/consulta-clientes/internal/core/ports/driven"
	"github.com/riosdeldesierto/consulta-clientes/internal/core/ports/driving"
	"github.com/riosdeldesierto/consulta-clientes/internal/logger"
)

// Ensure LookupService implements the interface.
var _ driving.LookupService = (*LookupService)(nil)

// LookupService loads the document type catalog and searches customers.
// Results are never cached; every call issues a fresh request.
type LookupService struct {
	api driven.CustomerAPI
}

// NewLookupService creates a new lookup service.
func NewLookupService(api driven.CustomerAPI) *LookupService {
	return &LookupService{api: api}
}

// LoadDocumentTypes returns the document type catalog.
func (s *LookupService) LoadDocumentTypes(ctx context.Context) ([]domain.DocumentType, error) {
	logger.Section("Document Types")

	types, err := s.api.ListDocumentTypes(ctx)
	if err != nil {
		logger.Debug("Loading document types failed: %v", err)
		return nil, domain.NewFlowError(
			domain.KindLoadFailure,
			domain.MsgDocumentTypesUnavailable(s.api.BaseURL()),
			err,
		)
	}

	if len(types) == 0 {
		logger.Debug("Server returned an empty catalog")
		return nil, domain.NewFlowError(domain.KindLoadFailure, domain.MsgNoDocumentTypes, domain.ErrNoDocumentTypes)
	}

	logger.Debug("Loaded %d document types, default %q", len(types), types[0].Name)
	return types, nil
}

// Search validates the query and looks up the customer.
func (s *LookupService) Search(ctx context.Context, query domain.SearchQuery) (*domain.Customer, error) {
	logger.Section("Customer Search")

	typeID := domain.ID(strings.TrimSpace(query.DocumentTypeID.String()))
	number := strings.TrimSpace(query.DocumentNumber)
	if typeID.IsZero() || number == "" {
		logger.Debug("Incomplete query, no request sent")
		return nil, domain.NewFlowError(domain.KindValidation, domain.MsgIncompleteFields, domain.ErrValidation)
	}

	logger.Debug("Type: %s, Number: %q", typeID, number)
	customer, err := s.api.SearchCustomer(ctx, typeID, number)
	if err != nil {
		flowErr := ClassifySearchError(err)
		logger.Debug("Search failed (%s): %v", flowErr.Kind, err)
		return nil, flowErr
	}
	if customer == nil {
		return nil, domain.NewFlowError(domain.KindNotFound, domain.MsgCustomerNotFound, domain.ErrNotFound)
	}

	logger.Debug("Found customer %s with %d purchases", customer.ID, len(customer.Purchases))
	return customer, nil
}
