package services

import (
	"context"
	"sync"

	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
	"github.com/riosdeldesierto/consulta-clientes/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockCustomerAPI implements driven.CustomerAPI for testing.
type mockCustomerAPI struct {
	mu sync.Mutex

	types    []domain.DocumentType
	typesErr error

	customer  *domain.Customer
	searchErr error

	exportData []byte
	exportErr  error

	reportData []byte
	reportErr  error

	baseURL string

	typesCalls  int
	searchCalls int
	exportCalls int
	reportCalls int

	lastTypeID  domain.ID
	lastNumber  string
	lastExport  domain.ID
	lastFormat  domain.ExportFormat
}

var _ driven.CustomerAPI = (*mockCustomerAPI)(nil)

func (m *mockCustomerAPI) ListDocumentTypes(_ context.Context) ([]domain.DocumentType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.typesCalls++
	return m.types, m.typesErr
}

func (m *mockCustomerAPI) SearchCustomer(_ context.Context, typeID domain.ID, number string) (*domain.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searchCalls++
	m.lastTypeID = typeID
	m.lastNumber = number
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	return m.customer, nil
}

func (m *mockCustomerAPI) ExportCustomer(_ context.Context, id domain.ID, format domain.ExportFormat) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.exportCalls++
	m.lastExport = id
	m.lastFormat = format
	return m.exportData, m.exportErr
}

func (m *mockCustomerAPI) GenerateLoyaltyReport(_ context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reportCalls++
	return m.reportData, m.reportErr
}

func (m *mockCustomerAPI) BaseURL() string {
	if m.baseURL == "" {
		return domain.DefaultAPIURL
	}
	return m.baseURL
}

// mockFileSaver implements driven.FileSaver for testing.
type mockFileSaver struct {
	saved   map[string][]byte
	saveErr error
}

var _ driven.FileSaver = (*mockFileSaver)(nil)

func newMockFileSaver() *mockFileSaver {
	return &mockFileSaver{saved: make(map[string][]byte)}
}

func (m *mockFileSaver) Save(name string, data []byte) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	m.saved[name] = data
	return "/exports/" + name, nil
}

// --- Fixtures ---

func sampleTypes() []domain.DocumentType {
	return []domain.DocumentType{
		{ID: "1", Code: "CC", Name: "Cédula de Ciudadanía"},
		{ID: "2", Code: "NIT", Name: "NIT"},
	}
}

func sampleCustomer() *domain.Customer {
	return &domain.Customer{
		ID:             "7",
		DocumentNumber: "123",
		FirstName:      "Ana",
		LastName:       "Pérez",
	}
}
