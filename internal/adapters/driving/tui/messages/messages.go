// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/present"
	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
)

// DocumentTypesLoaded carries the document type catalog back to the search view.
type DocumentTypesLoaded struct {
	Types []domain.DocumentType
	Err   error
}

// SearchCompleted carries a search response back to the search view.
// Generation identifies the request; responses for older requests are dropped.
type SearchCompleted struct {
	Generation uint64
	Customer   *domain.Customer
	Err        error
}

// ExportCompleted carries an export result back to the detail view.
type ExportCompleted struct {
	Format domain.ExportFormat
	Path   string
	Err    error
}

// ReportCompleted carries a loyalty report result back to the report view.
type ReportCompleted struct {
	Path string
	Err  error
}

// CustomerFound is raised by the search view for the app to store.
type CustomerFound struct {
	Customer *domain.Customer
}

// Failed is raised by any view to show an error alert.
type Failed struct {
	Message string
}

// Notified is raised by any view to show a non-error alert.
type Notified struct {
	Message  string
	Severity domain.Severity
}

// AlertExpired is delivered when an alert's display time has passed.
type AlertExpired struct {
	Generation uint64
}

// ConfigReloaded is sent after the config file changed on disk.
type ConfigReloaded struct {
	BaseURL   string
	Formatter *present.Formatter
	Err       error
}

// Panel identifies a focusable section of the screen.
type Panel int

const (
	// PanelSearch is the search form.
	PanelSearch Panel = iota
	// PanelDetail is the customer detail.
	PanelDetail
	// PanelReport is the loyalty report action.
	PanelReport
)

// String returns the string representation of the panel.
func (p Panel) String() string {
	switch p {
	case PanelSearch:
		return "search"
	case PanelDetail:
		return "detail"
	case PanelReport:
		return "report"
	default:
		return "unknown"
	}
}

// Fail returns a command raising Failed.
func Fail(message string) tea.Cmd {
	return func() tea.Msg {
		return Failed{Message: message}
	}
}

// Notify returns a command raising Notified.
func Notify(message string, severity domain.Severity) tea.Cmd {
	return func() tea.Msg {
		return Notified{Message: message, Severity: severity}
	}
}

// Found returns a command raising CustomerFound.
func Found(customer *domain.Customer) tea.Cmd {
	return func() tea.Msg {
		return CustomerFound{Customer: customer}
	}
}
