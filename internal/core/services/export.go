package services

import (
	"context"
	"fmt"

	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
	"github.com/riosdeldesierto/consulta-clientes/internal/core/ports/driven"
	"github.com/riosdeldesierto/consulta-clientes/internal/core/ports/driving"
	"github.com/riosdeldesierto/consulta-clientes/internal/logger"
)

// Ensure ExportService implements the interface.
var _ driving.ExportService = (*ExportService)(nil)

// ExportService downloads server-rendered customer files and saves them.
type ExportService struct {
	api   driven.CustomerAPI
	saver driven.FileSaver
}

// NewExportService creates a new export service.
func NewExportService(api driven.CustomerAPI, saver driven.FileSaver) *ExportService {
	return &ExportService{api: api, saver: saver}
}

// ExportCustomer exports customer in format and returns the saved path.
// Every failure is logged and reported with the same export message.
// Exporting a customer without purchases is allowed.
func (s *ExportService) ExportCustomer(
	ctx context.Context, customer *domain.Customer, format domain.ExportFormat,
) (string, error) {
	logger.Section("Customer Export")

	if customer == nil {
		return "", s.fail(domain.ErrNoCustomer, "export without customer")
	}
	if !format.IsValid() {
		return "", s.fail(fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format), "export customer %s", customer.ID)
	}

	logger.Debug("Customer: %s, Format: %s", customer.ID, format)
	data, err := s.api.ExportCustomer(ctx, customer.ID, format)
	if err != nil {
		return "", s.fail(err, "export customer %s as %s", customer.ID, format)
	}

	name := domain.CustomerExportFileName(customer.DocumentNumber, format)
	path, err := s.saver.Save(name, data)
	if err != nil {
		return "", s.fail(err, "save %s", name)
	}

	logger.Debug("Saved %d bytes to %s", len(data), path)
	return path, nil
}

func (s *ExportService) fail(err error, format string, args ...any) error {
	logger.Error(err, format, args...)
	return domain.NewFlowError(domain.KindExportFailure, domain.MsgExportFailed, fmt.Errorf("%w: %w", domain.ErrExportFailed, err))
}
