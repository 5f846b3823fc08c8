// Package tui provides the interactive terminal client for customer lookup.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"context"

	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/present"
	"github.com/riosdeldesierto/consulta-clientes/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Lookup loads document types and searches customers.
	Lookup driving.LookupService

	// Export saves customer exports.
	Export driving.ExportService

	// Report generates the loyalty report.
	Report driving.ReportService

	// Session holds the current customer and alert.
	Session driving.Session

	// Formatter renders amounts and dates. Optional.
	Formatter *present.Formatter

	// BaseURL reports the API in use for the status bar. Optional.
	BaseURL func() string

	// Watch blocks, calling onChange whenever the settings change. Optional.
	Watch func(ctx context.Context, onChange func()) error

	// Reload re-applies the settings after a change and returns the new
	// API base URL and formatter. Optional; required for Watch to matter.
	Reload func() (string, *present.Formatter, error)
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	lookup driving.LookupService,
	export driving.ExportService,
	report driving.ReportService,
	session driving.Session,
) *Ports {
	return &Ports{
		Lookup:  lookup,
		Export:  export,
		Report:  report,
		Session: session,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Lookup == nil {
		return ErrMissingLookupService
	}
	if p.Export == nil {
		return ErrMissingExportService
	}
	if p.Report == nil {
		return ErrMissingReportService
	}
	if p.Session == nil {
		return ErrMissingSession
	}
	return nil
}
