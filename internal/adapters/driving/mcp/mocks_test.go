package mcp

import (
	"context"

	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
)

// mockLookupService is a mock implementation of driving.LookupService.
type mockLookupService struct {
	types     []domain.DocumentType
	typesErr  error
	customer  *domain.Customer
	searchErr error
	lastQuery domain.SearchQuery
}

func (m *mockLookupService) LoadDocumentTypes(_ context.Context) ([]domain.DocumentType, error) {
	return m.types, m.typesErr
}

func (m *mockLookupService) Search(_ context.Context, query domain.SearchQuery) (*domain.Customer, error) {
	m.lastQuery = query
	return m.customer, m.searchErr
}

func sampleTypes() []domain.DocumentType {
	return []domain.DocumentType{
		{ID: "1", Code: "CC", Name: "Cédula de Ciudadanía"},
		{ID: "2", Code: "NIT", Name: "NIT", Description: "Número de Identificación Tributaria"},
	}
}

func sampleCustomer() *domain.Customer {
	return &domain.Customer{
		ID:             "7",
		DocumentType:   domain.DocumentType{ID: "1", Code: "CC", Name: "Cédula de Ciudadanía"},
		DocumentNumber: "123",
		FirstName:      "Ana",
		LastName:       "Gómez",
	}
}
