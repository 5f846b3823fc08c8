// Package report provides the loyalty report panel for the TUI.
package report

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/tui/keymap"
	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/tui/messages"
	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/tui/styles"
	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
	"github.com/riosdeldesierto/consulta-clientes/internal/core/ports/driving"
)

// View is the loyalty report panel. It works independently of any customer.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	reports driving.ReportService
	ctx     context.Context

	generating bool
	focused    bool
	width      int
}

// NewView creates a new report view.
func NewView(s *styles.Styles, km *keymap.KeyMap, reports driving.ReportService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:  s,
		keymap:  km,
		reports: reports,
		ctx:     context.Background(),
		width:   80,
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

// Update handles messages for the report view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.ReportCompleted:
		if !v.generating {
			return v, nil
		}
		v.generating = false
		if msg.Err != nil {
			return v, messages.Fail(domain.UserMessage(msg.Err, domain.MsgReportFailed))
		}
		return v, messages.Notify(domain.MsgExported(msg.Path), domain.SeveritySuccess)

	case tea.KeyMsg:
		if v.focused && keymap.Matches(msg.String(), v.keymap.Generate) {
			return v, v.Generate()
		}
	}

	return v, nil
}

// Generate starts the report. Ignored while a report is in flight.
func (v *View) Generate() tea.Cmd {
	if v.generating {
		return nil
	}

	v.generating = true
	reports := v.reports
	ctx := v.ctx
	return func() tea.Msg {
		if reports == nil {
			return messages.ReportCompleted{Err: ErrNoReportService}
		}
		path, err := reports.GenerateLoyaltyReport(ctx)
		return messages.ReportCompleted{Path: path, Err: err}
	}
}

// View renders the report panel.
func (v *View) View() string {
	button := v.styles.Button.Render("Generar Reporte")
	if v.generating {
		button = v.styles.DisabledButton.Render("Generando...")
	}

	width := max(v.width-2, 0)
	content := lipgloss.JoinVertical(lipgloss.Left,
		v.styles.Title.Render("Reporte de Fidelización"),
		"",
		v.styles.Muted.Width(max(width-4, 10)).Render(domain.MsgLoyaltyDescription),
		"",
		button,
	)
	return v.styles.PanelFor(v.focused).Width(width).Render(content)
}

// SetFocused gives or removes keyboard focus.
func (v *View) SetFocused(focused bool) {
	v.focused = focused
}

// Focused returns whether the view receives keys.
func (v *View) Focused() bool {
	return v.focused
}

// SetWidth sets the view width.
func (v *View) SetWidth(width int) {
	v.width = width
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Generating returns whether a report is in flight.
func (v *View) Generating() bool {
	return v.generating
}
