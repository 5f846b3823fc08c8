// Package mcp provides an MCP (Model Context Protocol) server adapter for consulta.
// It lets AI assistants list document types and look customers up.
package mcp

import "errors"

// ErrMissingLookupService is returned when the lookup service is not provided.
var ErrMissingLookupService = errors.New("mcp: lookup service is required")
