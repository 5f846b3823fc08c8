package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/tui/components/alert"
	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/tui/components/status"
	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/tui/keymap"
	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/tui/messages"
	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/tui/styles"
	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/tui/views/detail"
	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/tui/views/report"
	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/tui/views/search"
	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
	"github.com/riosdeldesierto/consulta-clientes/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
//
// App is the only writer of the session: views raise CustomerFound,
// Failed and Notified, and App applies them.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	searchView *search.View
	detailView *detail.View
	reportView *report.View
	statusbar  *status.Bar

	// focus is the panel receiving keys.
	focus messages.Panel

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its first size.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	app := &App{
		ports:      ports,
		ctx:        context.Background(),
		styles:     s,
		keymap:     km,
		searchView: search.NewView(s, km, ports.Lookup),
		detailView: detail.NewView(s, km, ports.Formatter, ports.Export),
		reportView: report.NewView(s, km, ports.Report),
		statusbar:  status.NewBar(s, km),
		focus:      messages.PanelSearch,
	}

	if ports.BaseURL != nil {
		app.statusbar.SetMessage(ports.BaseURL())
	}
	app.detailView.SetCustomer(ports.Session.Customer())
	app.applyFocus()

	return app, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	a.detailView.WithContext(ctx)
	a.reportView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It starts loading the document type catalog.
func (a *App) Init() tea.Cmd {
	a.syncStatus()
	return tea.Batch(
		tea.SetWindowTitle("Consulta de Clientes"),
		a.searchView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		cmd = a.handleKeyMsg(msg)

	case messages.DocumentTypesLoaded, messages.SearchCompleted:
		a.searchView, cmd = a.searchView.Update(msg)

	case messages.ExportCompleted:
		a.detailView, cmd = a.detailView.Update(msg)

	case messages.ReportCompleted:
		a.reportView, cmd = a.reportView.Update(msg)

	case messages.CustomerFound:
		gen := a.ports.Session.CustomerFound(msg.Customer)
		a.detailView.SetCustomer(msg.Customer)
		cmd = alert.Schedule(gen)

	case messages.Failed:
		cmd = alert.Schedule(a.ports.Session.Fail(msg.Message))

	case messages.Notified:
		cmd = alert.Schedule(a.ports.Session.Notify(msg.Message, msg.Severity))

	case messages.AlertExpired:
		a.ports.Session.Expire(msg.Generation)

	case messages.ConfigReloaded:
		cmd = a.handleConfigReloaded(msg)

	default:
		// Cursor blink and other component messages
		a.searchView, cmd = a.searchView.Update(msg)
	}

	a.syncStatus()
	return a, cmd
}

func (a *App) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	switch {
	case keymap.Matches(key, a.keymap.Quit):
		return tea.Quit
	case keymap.Matches(key, a.keymap.NextPanel):
		return a.cycleFocus(1)
	case keymap.Matches(key, a.keymap.PrevPanel):
		return a.cycleFocus(-1)
	case keymap.Matches(key, a.keymap.Dismiss):
		a.ports.Session.Dismiss()
		return nil
	}

	var cmd tea.Cmd
	switch a.focus {
	case messages.PanelSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.PanelDetail:
		a.detailView, cmd = a.detailView.Update(msg)
	case messages.PanelReport:
		a.reportView, cmd = a.reportView.Update(msg)
	}
	return cmd
}

func (a *App) handleConfigReloaded(msg messages.ConfigReloaded) tea.Cmd {
	if msg.Err != nil {
		logger.Warn("settings reload failed: %v", msg.Err)
		return nil
	}

	logger.Info("settings reloaded, API at %s", msg.BaseURL)
	if msg.BaseURL != "" {
		a.statusbar.SetMessage(msg.BaseURL)
	}
	if msg.Formatter != nil {
		a.detailView.SetFormatter(msg.Formatter)
	}
	return a.searchView.LoadTypes()
}

// panels lists the focusable sections in tab order. The detail panel
// only exists while the session holds a customer.
func (a *App) panels() []messages.Panel {
	if a.ports.Session.Customer() == nil {
		return []messages.Panel{messages.PanelSearch, messages.PanelReport}
	}
	return []messages.Panel{messages.PanelSearch, messages.PanelDetail, messages.PanelReport}
}

// cycleFocus moves focus by delta panels, wrapping around.
func (a *App) cycleFocus(delta int) tea.Cmd {
	panels := a.panels()
	idx := 0
	for i, p := range panels {
		if p == a.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(panels)) % len(panels)
	a.focus = panels[idx]
	return a.applyFocus()
}

func (a *App) applyFocus() tea.Cmd {
	cmd := a.searchView.SetFocused(a.focus == messages.PanelSearch)
	a.detailView.SetFocused(a.focus == messages.PanelDetail)
	a.reportView.SetFocused(a.focus == messages.PanelReport)
	a.statusbar.SetPanel(a.focus)
	return cmd
}

// syncStatus derives the status bar state from the views.
func (a *App) syncStatus() {
	switch {
	case a.searchView.State() == domain.SearchSearching:
		a.statusbar.SetState(status.StateSearching)
	case a.detailView.Exporting() != "":
		a.statusbar.SetState(status.StateExporting)
	case a.reportView.Generating():
		a.statusbar.SetState(status.StateGenerating)
	case a.searchView.State() == domain.SearchTypesLoading:
		a.statusbar.SetState(status.StateLoading)
	case a.searchView.State() == domain.SearchTypesFailed:
		a.statusbar.SetState(status.StateError)
	default:
		a.statusbar.SetState(status.StateReady)
	}
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Iniciando..."
	}

	sections := []string{
		a.styles.Title.Render("Consulta de Clientes"),
	}
	if line := alert.Render(a.styles, a.ports.Session.Alert(), a.width); line != "" {
		sections = append(sections, line)
	}
	sections = append(sections, a.searchView.View())
	if a.ports.Session.Customer() != nil {
		sections = append(sections, a.detailView.View())
	}
	sections = append(sections, a.reportView.View(), a.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Run starts the TUI application and blocks until it exits.
// When the ports carry a settings watcher, changes are applied live.
func (a *App) Run(ctx context.Context) error {
	a.WithContext(ctx)

	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(ctx))

	if a.ports.Watch != nil && a.ports.Reload != nil {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			err := a.ports.Watch(watchCtx, func() {
				baseURL, f, err := a.ports.Reload()
				p.Send(messages.ConfigReloaded{BaseURL: baseURL, Formatter: f, Err: err})
			})
			if err != nil {
				logger.Warn("settings watch stopped: %v", err)
			}
		}()
	}

	_, err := p.Run()
	return err
}

// Focus returns the panel receiving keys.
func (a *App) Focus() messages.Panel {
	return a.focus
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions and lays out the panels.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	// Title, alert, status bar and the search and report panels
	detailHeight := height - 22
	if detailHeight < 12 {
		detailHeight = 12
	}

	a.searchView.SetDimensions(width, 9)
	a.detailView.SetDimensions(width, detailHeight)
	a.reportView.SetWidth(width)
	a.statusbar.SetWidth(width)
}
