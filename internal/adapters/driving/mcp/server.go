package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/present"
	"github.com/riosdeldesierto/consulta-clientes/internal/core/ports/driving"
	"github.com/riosdeldesierto/consulta-clientes/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

// instructions tells the assistant how the two tools fit together.
const instructions = "Customer lookup for the customer service team. " +
	"Call " + toolListTypes + " first and pass the id of a document type to " + toolSearch +
	" together with the document number. Amounts are formatted in the configured currency. " +
	"Customers are also readable as " + uriScheme + "clientes/{tipoDocumentoId}/{numeroDocumento}."

// shutdownTimeout bounds how long in-flight HTTP sessions get to finish.
const shutdownTimeout = 5 * time.Second

// Server answers document type and customer queries for MCP clients.
// Exports and the loyalty report write local files and are left to the
// CLI and TUI.
type Server struct {
	lookup    driving.LookupService
	formatter *present.Formatter
	server    *mcp.Server
}

// NewServer builds the server and registers its tools and resources.
// The formatter defaults to es-CO/COP when ports carries none.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	f := ports.Formatter
	if f == nil {
		f = present.DefaultFormatter()
	}

	s := &Server{
		lookup:    ports.Lookup,
		formatter: f,
		server: mcp.NewServer(
			&mcp.Implementation{Name: "consulta", Version: Version},
			&mcp.ServerOptions{Instructions: instructions},
		),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run serves a single client over stdin/stdout until ctx is cancelled
// or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Handler returns the streamable HTTP handler. Every request shares the
// same server.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, nil)
}

// RunHTTP serves Handler on addr until ctx is cancelled.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("mcp http shutdown: %v", err)
		}
	}()

	logger.Debug("mcp http listening on %s", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
