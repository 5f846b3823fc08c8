// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/present"
	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/tui/styles"
	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
)

// Column widths, except description which takes the remaining width.
const (
	invoiceWidth = 14
	dateWidth    = 12
	amountWidth  = 16
	statusWidth  = 12
	minDescWidth = 10
)

// PurchaseTable displays a customer's purchases as a scrollable table.
type PurchaseTable struct {
	rows     []present.PurchaseRow
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewPurchaseTable creates a new purchase table component.
func NewPurchaseTable(s *styles.Styles) *PurchaseTable {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &PurchaseTable{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the table.
func (p *PurchaseTable) Init() tea.Cmd {
	return nil
}

// Update handles scrolling.
func (p *PurchaseTable) Update(msg tea.Msg) (*PurchaseTable, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			p.MoveUp()
		case "down", "j":
			p.MoveDown()
		}
	}
	return p, nil
}

// View renders the table.
func (p *PurchaseTable) View() string {
	if len(p.rows) == 0 {
		return p.styles.Muted.Render(domain.MsgNoPurchases)
	}

	descWidth := p.descriptionWidth()
	lines := make([]string, 0, len(p.rows)+3)

	title := p.styles.Subtitle.Render(fmt.Sprintf("Historial de Compras (%d)", len(p.rows)))
	header := p.styles.Label.Render(
		"  " + cell("Factura", invoiceWidth) + cell("Fecha", dateWidth) +
			cell("Descripción", descWidth) + cell("Monto", amountWidth) + cell("Estado", statusWidth),
	)
	lines = append(lines, title, header)

	start, end := p.visibleRange()
	for i := start; i < end; i++ {
		lines = append(lines, p.renderRow(i, descWidth))
	}

	if end-start < len(p.rows) {
		lines = append(lines, p.styles.Muted.Render(fmt.Sprintf("  %d-%d de %d", start+1, end, len(p.rows))))
	}

	return strings.Join(lines, "\n")
}

func (p *PurchaseTable) renderRow(index, descWidth int) string {
	row := p.rows[index]

	indicator := "  "
	if index == p.selected {
		indicator = "> "
	}

	text := indicator + cell(row.Invoice, invoiceWidth) + cell(row.Date, dateWidth) +
		cell(row.Description, descWidth) + cell(row.Amount, amountWidth)
	status := p.styles.ForStatus(row.Status).Render(row.StatusLabel)

	if index == p.selected {
		return p.styles.Selected.Render(text) + status
	}
	return p.styles.Normal.Render(text) + status
}

// visibleRange returns the half-open range of rows that fit the height.
func (p *PurchaseTable) visibleRange() (int, int) {
	// Title, header and the position footer
	visible := p.height - 3
	if visible < 1 {
		visible = 1
	}

	start := 0
	if p.selected >= visible {
		start = p.selected - visible + 1
	}
	end := start + visible
	if end > len(p.rows) {
		end = len(p.rows)
	}
	return start, end
}

func (p *PurchaseTable) descriptionWidth() int {
	w := p.width - 2 - invoiceWidth - dateWidth - amountWidth - statusWidth
	if w < minDescWidth {
		return minDescWidth
	}
	return w
}

// cell pads or truncates s to exactly width cells.
func cell(s string, width int) string {
	if lipgloss.Width(s) >= width {
		s = truncate(s, width-1)
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}

func truncate(s string, width int) string {
	if width <= 1 {
		return ""
	}
	runes := []rune(s)
	for lipgloss.Width(string(runes)) > width-1 && len(runes) > 0 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// SetRows replaces the rows and resets the selection.
func (p *PurchaseTable) SetRows(rows []present.PurchaseRow) {
	p.rows = rows
	p.selected = 0
}

// Rows returns the current rows.
func (p *PurchaseTable) Rows() []present.PurchaseRow {
	return p.rows
}

// Selected returns the index of the selected row.
func (p *PurchaseTable) Selected() int {
	return p.selected
}

// MoveUp moves selection up.
func (p *PurchaseTable) MoveUp() {
	if p.selected > 0 {
		p.selected--
	}
}

// MoveDown moves selection down.
func (p *PurchaseTable) MoveDown() {
	if p.selected < len(p.rows)-1 {
		p.selected++
	}
}

// SetDimensions sets the component dimensions.
func (p *PurchaseTable) SetDimensions(width, height int) {
	p.width = width
	p.height = height
}

// Width returns the current width.
func (p *PurchaseTable) Width() int {
	return p.width
}

// Height returns the current height.
func (p *PurchaseTable) Height() int {
	return p.height
}

// Count returns the number of rows.
func (p *PurchaseTable) Count() int {
	return len(p.rows)
}

// IsEmpty returns whether the table has no rows.
func (p *PurchaseTable) IsEmpty() bool {
	return len(p.rows) == 0
}
