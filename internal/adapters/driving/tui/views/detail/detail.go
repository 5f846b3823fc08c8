// Package detail provides the customer detail view for the TUI.
package detail

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/present"
	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/tui/components/list"
	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/tui/keymap"
	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/tui/messages"
	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/tui/styles"
	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
	"github.com/riosdeldesierto/consulta-clientes/internal/core/ports/driving"
)

// MsgEmpty is shown before any customer has been found.
const MsgEmpty = "Busque un cliente para ver su información."

// View shows the current customer, its purchases and the export actions.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	formatter *present.Formatter
	table     *list.PurchaseTable

	export driving.ExportService
	ctx    context.Context

	customer *domain.Customer
	detail   present.CustomerDetail

	// exporting is the format in flight, or "" when idle.
	exporting domain.ExportFormat

	focused bool
	width   int
	height  int
}

// NewView creates a new detail view.
func NewView(s *styles.Styles, km *keymap.KeyMap, f *present.Formatter, export driving.ExportService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	if f == nil {
		f = present.DefaultFormatter()
	}

	return &View{
		styles:    s,
		keymap:    km,
		formatter: f,
		table:     list.NewPurchaseTable(s),
		export:    export,
		ctx:       context.Background(),
		width:     80,
		height:    20,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetCustomer replaces the displayed customer.
func (v *View) SetCustomer(c *domain.Customer) {
	v.customer = c
	v.project()
}

// SetFormatter changes how amounts and dates are rendered.
func (v *View) SetFormatter(f *present.Formatter) {
	if f == nil {
		return
	}
	v.formatter = f
	v.project()
}

func (v *View) project() {
	if v.customer == nil {
		v.detail = present.CustomerDetail{}
		v.table.SetRows(nil)
		return
	}
	v.detail = v.formatter.Customer(v.customer)
	v.table.SetRows(v.detail.Purchases)
}

// Update handles messages for the detail view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.ExportCompleted:
		return v, v.handleExportCompleted(msg)

	case tea.KeyMsg:
		if !v.focused {
			return v, nil
		}
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()

	switch {
	case keymap.Matches(key, v.keymap.ExportCSV):
		return v, v.Export(domain.ExportCSV)
	case keymap.Matches(key, v.keymap.ExportExcel):
		return v, v.Export(domain.ExportExcel)
	case keymap.Matches(key, v.keymap.ExportTXT):
		return v, v.Export(domain.ExportTXT)
	case keymap.Matches(key, v.keymap.Up):
		v.table.MoveUp()
	case keymap.Matches(key, v.keymap.Down):
		v.table.MoveDown()
	}

	return v, nil
}

// Export starts downloading the current customer in format.
// Exports are disabled while one is in flight.
func (v *View) Export(format domain.ExportFormat) tea.Cmd {
	if v.customer == nil || v.exporting != "" {
		return nil
	}

	v.exporting = format
	customer := v.customer
	export := v.export
	ctx := v.ctx
	return func() tea.Msg {
		if export == nil {
			return messages.ExportCompleted{Format: format, Err: ErrNoExportService}
		}
		path, err := export.ExportCustomer(ctx, customer, format)
		return messages.ExportCompleted{Format: format, Path: path, Err: err}
	}
}

func (v *View) handleExportCompleted(msg messages.ExportCompleted) tea.Cmd {
	if v.exporting == "" {
		return nil
	}
	v.exporting = ""

	if msg.Err != nil {
		return messages.Fail(domain.UserMessage(msg.Err, domain.MsgExportFailed))
	}
	return messages.Notify(domain.MsgExported(msg.Path), domain.SeverityInfo)
}

// View renders the detail view.
func (v *View) View() string {
	panel := v.styles.PanelFor(v.focused).Width(max(v.width-2, 0))

	if v.customer == nil {
		return panel.Render(lipgloss.JoinVertical(lipgloss.Left,
			v.styles.Title.Render("Información del Cliente"),
			"",
			v.styles.Muted.Render(MsgEmpty),
		))
	}

	sections := []string{
		v.styles.Title.Render("Información del Cliente"),
		"",
		v.renderFields(),
		"",
		v.renderActions(),
		"",
	}
	if v.detail.NoPurchases {
		sections = append(sections, v.styles.Info.Render(domain.MsgNoPurchases))
	} else {
		sections = append(sections, v.table.View())
	}

	return panel.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (v *View) renderFields() string {
	d := v.detail
	fields := [][2]string{
		{"Nombre", d.Name},
		{"Tipo de Documento", d.DocumentType},
		{"Número de Documento", d.DocumentNumber},
		{"Correo", d.Email},
		{"Teléfono", d.Phone},
		{"Fecha de Registro", d.RegisteredAt},
		{"Total de Compras", fmt.Sprintf("%d", d.PurchaseCount)},
	}
	if d.TotalAmount != "" {
		fields = append(fields, [2]string{"Monto Total", d.TotalAmount})
	}

	lines := make([]string, 0, len(fields))
	for _, field := range fields {
		label := v.styles.Label.Render(fmt.Sprintf("%-20s", field[0]+":"))
		lines = append(lines, label+" "+v.styles.Normal.Render(field[1]))
	}
	return strings.Join(lines, "\n")
}

func (v *View) renderActions() string {
	keys := map[domain.ExportFormat]string{
		domain.ExportCSV:   v.keymap.ExportCSV.Help().Key,
		domain.ExportExcel: v.keymap.ExportExcel.Help().Key,
		domain.ExportTXT:   v.keymap.ExportTXT.Help().Key,
	}

	buttons := make([]string, 0, len(domain.AllExportFormats()))
	for _, format := range domain.AllExportFormats() {
		label := fmt.Sprintf("[%s] %s", keys[format], format.Label())
		switch {
		case v.exporting == format:
			buttons = append(buttons, v.styles.DisabledButton.Render("Exportando..."))
		case v.exporting != "":
			buttons = append(buttons, v.styles.DisabledButton.Render(label))
		default:
			buttons = append(buttons, v.styles.Button.Render(label))
		}
	}
	return strings.Join(buttons, " ")
}

// SetFocused gives or removes keyboard focus.
func (v *View) SetFocused(focused bool) {
	v.focused = focused
}

// Focused returns whether the view receives keys.
func (v *View) Focused() bool {
	return v.focused
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	// Fields, actions and borders
	v.table.SetDimensions(width-4, height-14)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Customer returns the displayed customer, or nil.
func (v *View) Customer() *domain.Customer {
	return v.customer
}

// Detail returns the projection of the displayed customer.
func (v *View) Detail() present.CustomerDetail {
	return v.detail
}

// Exporting returns the format being exported, or "" when idle.
func (v *View) Exporting() domain.ExportFormat {
	return v.exporting
}
