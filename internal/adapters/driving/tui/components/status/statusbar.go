// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/tui/keymap"
	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/tui/messages"
	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/tui/styles"
)

// State represents the current application state for display.
type State string

const (
	StateLoading    State = "loading"
	StateReady      State = "ready"
	StateSearching  State = "searching"
	StateExporting  State = "exporting"
	StateGenerating State = "generating"
	StateError      State = "error"
)

// Bar displays application status, the API in use and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	message string
	panel   messages.Panel
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		panel:  messages.PanelSearch,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is mostly passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the state and message.
func (s *Bar) renderLeft() string {
	var state string
	switch s.state {
	case StateLoading:
		state = s.styles.Muted.Render("Cargando tipos de documento...")
	case StateSearching:
		state = s.styles.Muted.Render("Buscando...")
	case StateExporting:
		state = s.styles.Muted.Render("Exportando...")
	case StateGenerating:
		state = s.styles.Muted.Render("Generando...")
	case StateError:
		state = s.styles.Error.Render("Sin conexión")
	default:
		state = s.styles.Normal.Render("Listo")
	}

	if s.message == "" {
		return state
	}
	return state + s.styles.Muted.Render(" · "+s.message)
}

// renderRight renders keybinding hints for the focused panel.
func (s *Bar) renderRight() string {
	var bindings []key.Binding
	switch s.panel {
	case messages.PanelDetail:
		bindings = s.keymap.DetailHelp()
	case messages.PanelReport:
		bindings = s.keymap.ReportHelp()
	default:
		bindings = s.keymap.SearchHelp()
	}
	bindings = append(bindings, s.keymap.ShortHelp()...)

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets the message shown after the state.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetPanel selects which hints are shown.
func (s *Bar) SetPanel(panel messages.Panel) {
	s.panel = panel
}

// Panel returns the panel whose hints are shown.
func (s *Bar) Panel() messages.Panel {
	return s.panel
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to default state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
	s.panel = messages.PanelSearch
}
