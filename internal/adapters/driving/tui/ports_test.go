package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
	"github.com/riosdeldesierto/consulta-clientes/internal/core/services"
)

// MockLookupService implements driving.LookupService for testing.
type MockLookupService struct {
	LoadFunc   func(ctx context.Context) ([]domain.DocumentType, error)
	SearchFunc func(ctx context.Context, query domain.SearchQuery) (*domain.Customer, error)
}

func (m *MockLookupService) LoadDocumentTypes(ctx context.Context) ([]domain.DocumentType, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	return []domain.DocumentType{{ID: "1", Code: "CC", Name: "Cédula de Ciudadanía"}}, nil
}

func (m *MockLookupService) Search(ctx context.Context, query domain.SearchQuery) (*domain.Customer, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	return &domain.Customer{ID: "7", FirstName: "Ana", DocumentNumber: query.DocumentNumber}, nil
}

// MockExportService implements driving.ExportService for testing.
type MockExportService struct{}

func (m *MockExportService) ExportCustomer(
	_ context.Context, c *domain.Customer, f domain.ExportFormat,
) (string, error) {
	return "/exports/" + domain.CustomerExportFileName(c.DocumentNumber, f), nil
}

// MockReportService implements driving.ReportService for testing.
type MockReportService struct{}

func (m *MockReportService) GenerateLoyaltyReport(context.Context) (string, error) {
	return "/exports/reporte.xlsx", nil
}

func TestNewPorts(t *testing.T) {
	ports := NewPorts(&MockLookupService{}, &MockExportService{}, &MockReportService{}, services.NewSession())

	require.NotNil(t, ports)
	assert.NoError(t, ports.Validate())
	assert.Nil(t, ports.Formatter)
	assert.Nil(t, ports.Watch)
}

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name  string
		ports *Ports
		want  error
	}{
		{
			name:  "missing lookup",
			ports: NewPorts(nil, &MockExportService{}, &MockReportService{}, services.NewSession()),
			want:  ErrMissingLookupService,
		},
		{
			name:  "missing export",
			ports: NewPorts(&MockLookupService{}, nil, &MockReportService{}, services.NewSession()),
			want:  ErrMissingExportService,
		},
		{
			name:  "missing report",
			ports: NewPorts(&MockLookupService{}, &MockExportService{}, nil, services.NewSession()),
			want:  ErrMissingReportService,
		},
		{
			name:  "missing session",
			ports: NewPorts(&MockLookupService{}, &MockExportService{}, &MockReportService{}, nil),
			want:  ErrMissingSession,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.ports.Validate(), tt.want)
		})
	}
}
