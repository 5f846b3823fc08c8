// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// NextPanel moves focus to the next section.
	NextPanel key.Binding

	// PrevPanel moves focus to the previous section.
	PrevPanel key.Binding

	// Dismiss closes the current alert.
	Dismiss key.Binding

	// Search submits the search form.
	Search key.Binding

	// PrevType selects the previous document type.
	PrevType key.Binding

	// NextType selects the next document type.
	NextType key.Binding

	// Up scrolls the purchase list up.
	Up key.Binding

	// Down scrolls the purchase list down.
	Down key.Binding

	// ExportCSV exports the customer as CSV.
	ExportCSV key.Binding

	// ExportExcel exports the customer as a spreadsheet.
	ExportExcel key.Binding

	// ExportTXT exports the customer as plain text.
	ExportTXT key.Binding

	// Generate generates the loyalty report.
	Generate key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "salir"),
		),
		NextPanel: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "siguiente sección"),
		),
		PrevPanel: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "sección anterior"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cerrar alerta"),
		),
		Search: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "buscar"),
		),
		PrevType: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "tipo anterior"),
		),
		NextType: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "tipo siguiente"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "subir"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "bajar"),
		),
		ExportCSV: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "exportar CSV"),
		),
		ExportExcel: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "exportar Excel"),
		),
		ExportTXT: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "exportar TXT"),
		),
		Generate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "generar reporte"),
		),
	}
}

// ShortHelp returns the bindings available everywhere.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPanel, k.Dismiss, k.Quit}
}

// SearchHelp returns keybindings for the search form.
func (k *KeyMap) SearchHelp() []key.Binding {
	return []key.Binding{k.PrevType, k.NextType, k.Search}
}

// DetailHelp returns keybindings for the customer detail.
func (k *KeyMap) DetailHelp() []key.Binding {
	return []key.Binding{k.ExportCSV, k.ExportExcel, k.ExportTXT, k.Up, k.Down}
}

// ReportHelp returns keybindings for the loyalty report.
func (k *KeyMap) ReportHelp() []key.Binding {
	return []key.Binding{k.Generate}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
