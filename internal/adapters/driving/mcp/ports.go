package mcp

import (
	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/present"
	"github.com/riosdeldesierto/consulta-clientes/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Lookup loads document types and searches customers.
	Lookup driving.LookupService

	// Formatter renders amounts and dates. Defaults to es-CO/COP.
	Formatter *present.Formatter
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Lookup == nil {
		return ErrMissingLookupService
	}
	return nil
}
