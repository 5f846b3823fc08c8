// Package alert renders the transient alert line and schedules its expiry.
package alert

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/tui/messages"
	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/tui/styles"
	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
)

// Render returns the alert styled by severity, or "" when nothing is shown.
func Render(s *styles.Styles, a domain.Alert, width int) string {
	if !a.Visible() {
		return ""
	}
	if s == nil {
		s = styles.DefaultStyles()
	}

	style := s.ForSeverity(a.Severity)
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(a.Message)
}

// ttl is how long an alert is shown. Tests shorten it.
var ttl = domain.AlertTTL

// Schedule returns a command that reports the alert with the given
// generation as expired once the alert lifetime has passed.
func Schedule(generation uint64) tea.Cmd {
	return tea.Tick(ttl, expired(generation))
}

func expired(generation uint64) func(time.Time) tea.Msg {
	return func(time.Time) tea.Msg {
		return messages.AlertExpired{Generation: generation}
	}
}
