// Package search provides the customer search form for the TUI.
package search

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/present"
	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/tui/components/input"
	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/tui/keymap"
	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/tui/messages"
	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/tui/styles"
	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
	"github.com/riosdeldesierto/consulta-clientes/internal/core/ports/driving"
)

// View is the search form: a document type selector, the document number
// input and the search button.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	input  *input.DocumentInput

	lookup driving.LookupService
	ctx    context.Context

	state    domain.SearchState
	types    []domain.DocumentType
	selected int

	// generation identifies the latest search; older responses are dropped.
	generation uint64

	focused bool
	width   int
	height  int
}

// NewView creates a new search view.
func NewView(s *styles.Styles, km *keymap.KeyMap, lookup driving.LookupService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:  s,
		keymap:  km,
		input:   input.NewDocumentInput(s),
		lookup:  lookup,
		ctx:     context.Background(),
		state:   domain.SearchTypesLoading,
		focused: true,
		width:   80,
		height:  10,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init starts loading the document type catalog.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.input.Init(), v.LoadTypes())
}

// LoadTypes (re)loads the catalog. Searching is disabled until it arrives
// and any search still in flight is abandoned.
func (v *View) LoadTypes() tea.Cmd {
	if v.state == domain.SearchSearching {
		v.generation++
		v.input.SetEnabled(true)
	}
	v.state = domain.SearchTypesLoading
	lookup := v.lookup
	ctx := v.ctx
	return func() tea.Msg {
		if lookup == nil {
			return messages.DocumentTypesLoaded{Err: ErrNoLookupService}
		}
		types, err := lookup.LoadDocumentTypes(ctx)
		return messages.DocumentTypesLoaded{Types: types, Err: err}
	}
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.DocumentTypesLoaded:
		return v, v.handleTypesLoaded(msg)

	case messages.SearchCompleted:
		return v, v.handleSearchCompleted(msg)

	case tea.KeyMsg:
		if !v.focused {
			return v, nil
		}
		return v.handleKeyMsg(msg)
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleTypesLoaded(msg messages.DocumentTypesLoaded) tea.Cmd {
	if msg.Err != nil || len(msg.Types) == 0 {
		v.state = domain.SearchTypesFailed
		v.types = nil
		v.selected = 0
		return messages.Fail(domain.UserMessage(msg.Err, domain.MsgNoDocumentTypes))
	}

	v.types = msg.Types
	v.selected = 0
	v.state = domain.SearchReady
	return nil
}

func (v *View) handleSearchCompleted(msg messages.SearchCompleted) tea.Cmd {
	if msg.Generation != v.generation || v.state != domain.SearchSearching {
		return nil
	}

	v.state = domain.SearchReady
	v.input.SetEnabled(true)

	if msg.Err != nil {
		return messages.Fail(domain.UserMessage(msg.Err, domain.MsgSearchFailed))
	}
	if msg.Customer == nil {
		return messages.Fail(domain.MsgCustomerNotFound)
	}
	return messages.Found(msg.Customer)
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()

	switch {
	case keymap.Matches(key, v.keymap.Search):
		return v, v.Submit()
	case keymap.Matches(key, v.keymap.PrevType):
		v.moveType(-1)
		return v, nil
	case keymap.Matches(key, v.keymap.NextType):
		v.moveType(1)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) moveType(delta int) {
	if v.state == domain.SearchSearching || len(v.types) == 0 {
		return
	}
	next := v.selected + delta
	if next < 0 || next >= len(v.types) {
		return
	}
	v.selected = next
}

// Submit starts a search if the form accepts one.
// Blank input raises the validation alert without contacting the server.
func (v *View) Submit() tea.Cmd {
	if !v.state.CanSubmit() {
		return nil
	}

	docType, ok := v.SelectedType()
	number := strings.TrimSpace(v.input.Value())
	if !ok || number == "" {
		return messages.Fail(domain.MsgIncompleteFields)
	}

	v.generation++
	v.state = domain.SearchSearching
	v.input.SetEnabled(false)

	gen := v.generation
	query := domain.SearchQuery{DocumentTypeID: docType.ID, DocumentNumber: number}
	lookup := v.lookup
	ctx := v.ctx
	return func() tea.Msg {
		if lookup == nil {
			return messages.SearchCompleted{Generation: gen, Err: ErrNoLookupService}
		}
		customer, err := lookup.Search(ctx, query)
		return messages.SearchCompleted{Generation: gen, Customer: customer, Err: err}
	}
}

// View renders the search form.
func (v *View) View() string {
	sections := []string{
		v.styles.Title.Render("Buscar Cliente"),
		"",
		v.renderTypeSelector(),
		v.input.View(),
		"",
		v.renderButton(),
	}

	return v.styles.PanelFor(v.focused).
		Width(max(v.width-2, 0)).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (v *View) renderTypeSelector() string {
	label := v.styles.Label.Render("Tipo de Documento: ")

	var value string
	switch v.state {
	case domain.SearchTypesLoading:
		value = v.styles.Muted.Render("Cargando...")
	case domain.SearchTypesFailed:
		value = v.styles.Error.Render("No disponible")
	default:
		docType, _ := v.SelectedType()
		prev, next := " ", " "
		if v.selected > 0 {
			prev = "◀"
		}
		if v.selected < len(v.types)-1 {
			next = "▶"
		}
		value = v.styles.Muted.Render(prev) + " " +
			v.styles.Normal.Render(present.DocumentTypeLabel(docType)) + " " +
			v.styles.Muted.Render(next)
	}

	return label + value
}

func (v *View) renderButton() string {
	switch v.state {
	case domain.SearchSearching:
		return v.styles.DisabledButton.Render("Buscando...")
	case domain.SearchReady:
		return v.styles.Button.Render("Buscar")
	default:
		return v.styles.DisabledButton.Render("Buscar")
	}
}

// SetFocused gives or removes keyboard focus.
func (v *View) SetFocused(focused bool) tea.Cmd {
	v.focused = focused
	if focused {
		return v.input.Focus()
	}
	v.input.Blur()
	return nil
}

// Focused returns whether the view receives keys.
func (v *View) Focused() bool {
	return v.focused
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(width - 4)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// State returns the search flow state.
func (v *View) State() domain.SearchState {
	return v.state
}

// Types returns the loaded catalog.
func (v *View) Types() []domain.DocumentType {
	return v.types
}

// SelectedType returns the selected document type.
func (v *View) SelectedType() (domain.DocumentType, bool) {
	if v.selected < 0 || v.selected >= len(v.types) {
		return domain.DocumentType{}, false
	}
	return v.types[v.selected], true
}

// Generation returns the identifier of the latest search.
func (v *View) Generation() uint64 {
	return v.generation
}

// Query returns the document number typed so far.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the document number.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
}
