package driving

import (
	"context"

	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
)

// ExportService saves server-rendered customer exports.
type ExportService interface {
	// ExportCustomer downloads the customer in format and saves it.
	// Returns the saved file path.
	ExportCustomer(ctx context.Context, customer *domain.Customer, format domain.ExportFormat) (string, error)
}

// ReportService generates the loyalty report.
type ReportService interface {
	// GenerateLoyaltyReport downloads the report and saves it.
	// Returns the saved file path.
	GenerateLoyaltyReport(ctx context.Context) (string, error)
}
