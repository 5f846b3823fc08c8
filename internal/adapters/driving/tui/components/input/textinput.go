// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/tui/styles"
)

// MaxDocumentLength bounds the document number input.
const MaxDocumentLength = 32

// DocumentInput wraps a bubbles textinput for the document number.
// A disabled input ignores key presses.
type DocumentInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
	enabled   bool
}

// NewDocumentInput creates a new document number input.
func NewDocumentInput(s *styles.Styles) *DocumentInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Ingrese el número de documento"
	ti.Focus()
	ti.CharLimit = MaxDocumentLength
	ti.Width = 32

	return &DocumentInput{
		textinput: ti,
		styles:    s,
		width:     50,
		enabled:   true,
	}
}

// Init initialises the input.
func (d *DocumentInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (d *DocumentInput) Update(msg tea.Msg) (*DocumentInput, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok && !d.enabled {
		return d, nil
	}
	var cmd tea.Cmd
	d.textinput, cmd = d.textinput.Update(msg)
	return d, cmd
}

// View renders the input.
func (d *DocumentInput) View() string {
	label := d.styles.Label.Render("Número de Documento: ")
	field := d.textinput.View()
	if !d.enabled {
		field = d.styles.Muted.Render(d.textinput.Value())
	}
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, d.styles.InputField.Render(field))
}

// Value returns the current input value.
func (d *DocumentInput) Value() string {
	return d.textinput.Value()
}

// SetValue sets the input value.
func (d *DocumentInput) SetValue(value string) {
	d.textinput.SetValue(value)
}

// SetEnabled enables or disables editing.
func (d *DocumentInput) SetEnabled(enabled bool) {
	d.enabled = enabled
}

// Enabled returns whether the input accepts key presses.
func (d *DocumentInput) Enabled() bool {
	return d.enabled
}

// Focus sets focus on the input.
func (d *DocumentInput) Focus() tea.Cmd {
	return d.textinput.Focus()
}

// Blur removes focus from the input.
func (d *DocumentInput) Blur() {
	d.textinput.Blur()
}

// Focused returns whether the input is focused.
func (d *DocumentInput) Focused() bool {
	return d.textinput.Focused()
}

// SetWidth sets the width of the input.
func (d *DocumentInput) SetWidth(width int) {
	d.width = width
	// Account for label and padding
	inputWidth := width - 30
	if inputWidth < 16 {
		inputWidth = 16
	}
	d.textinput.Width = inputWidth
}

// Width returns the current width.
func (d *DocumentInput) Width() int {
	return d.width
}

// Reset clears the input.
func (d *DocumentInput) Reset() {
	d.textinput.Reset()
}
