package services

import (
	"context"
	"time"

	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
	"github.com/riosdeldesierto/consulta-clientes/internal/core/ports/driven"
	"github.com/riosdeldesierto/consulta-clientes/internal/core/ports/driving"
	"github.com/riosdeldesierto/consulta-clientes/internal/logger"
)

// Ensure ReportService implements the interface.
var _ driving.ReportService = (*ReportService)(nil)

// ReportService generates the loyalty report.
// Eligibility is decided by the server; the client only saves the file.
type ReportService struct {
	api   driven.CustomerAPI
	saver driven.FileSaver
	now   func() time.Time
}

// NewReportService creates a new report service.
func NewReportService(api driven.CustomerAPI, saver driven.FileSaver) *ReportService {
	return &ReportService{api: api, saver: saver, now: time.Now}
}

// SetClock replaces the clock used to date the report file name.
func (s *ReportService) SetClock(now func() time.Time) {
	s.now = now
}

// GenerateLoyaltyReport downloads the report and returns the saved path.
func (s *ReportService) GenerateLoyaltyReport(ctx context.Context) (string, error) {
	logger.Section("Loyalty Report")

	data, err := s.api.GenerateLoyaltyReport(ctx)
	if err != nil {
		logger.Debug("Report generation failed: %v", err)
		if domain.IsNotFound(err) {
			return "", domain.NewFlowError(domain.KindNotFound, domain.MsgNoLoyalCustomers, err)
		}
		return "", domain.NewFlowError(domain.KindGeneric, domain.MsgReportFailed, err)
	}

	name := domain.LoyaltyReportFileName(s.now())
	path, err := s.saver.Save(name, data)
	if err != nil {
		logger.Error(err, "save %s", name)
		return "", domain.NewFlowError(domain.KindGeneric, domain.MsgReportFailed, err)
	}

	logger.Debug("Saved %d bytes to %s", len(data), path)
	return path, nil
}
