package report

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riosdeldesierto/consulta-clientes/internal/adapters/driving/tui/messages"
	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
)

// MockReportService implements driving.ReportService for testing.
type MockReportService struct {
	GenerateFunc func(ctx context.Context) (string, error)
	Calls        int
}

func (m *MockReportService) GenerateLoyaltyReport(ctx context.Context) (string, error) {
	m.Calls++
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx)
	}
	return "/exports/reporte_fidelizacion_2024-03-15.xlsx", nil
}

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func TestNewView(t *testing.T) {
	view := NewView(nil, nil, nil)

	require.NotNil(t, view)
	assert.False(t, view.Generating())
	assert.False(t, view.Focused())
	assert.Nil(t, view.Init())
}

func TestView_View(t *testing.T) {
	view := NewView(nil, nil, &MockReportService{})
	view.SetWidth(200)

	out := view.View()

	assert.Contains(t, out, "Reporte de Fidelización")
	assert.Contains(t, out, "Generar Reporte")
	assert.Contains(t, out, "fidelización")
}

func TestView_Generate_Success(t *testing.T) {
	mock := &MockReportService{}
	view := NewView(nil, nil, mock)
	view.SetFocused(true)

	_, cmd := view.Update(enter)

	require.NotNil(t, cmd)
	assert.True(t, view.Generating())
	assert.Contains(t, view.View(), "Generando...")

	completed, ok := cmd().(messages.ReportCompleted)
	require.True(t, ok)
	assert.Equal(t, 1, mock.Calls)

	_, cmd = view.Update(completed)
	assert.False(t, view.Generating())
	require.NotNil(t, cmd)
	assert.Equal(t, messages.Notified{
		Message:  domain.MsgExported("/exports/reporte_fidelizacion_2024-03-15.xlsx"),
		Severity: domain.SeveritySuccess,
	}, cmd())
}

func TestView_Generate_DisabledWhileInFlight(t *testing.T) {
	view := NewView(nil, nil, &MockReportService{})
	view.SetFocused(true)

	view.Update(enter)
	_, cmd := view.Update(enter)

	assert.Nil(t, cmd)
}

func TestView_Generate_Unfocused(t *testing.T) {
	view := NewView(nil, nil, &MockReportService{})

	_, cmd := view.Update(enter)

	assert.Nil(t, cmd)
	assert.False(t, view.Generating())
}

func TestView_Generate_NoService(t *testing.T) {
	view := NewView(nil, nil, nil)

	cmd := view.Generate()

	completed := cmd().(messages.ReportCompleted)
	assert.ErrorIs(t, completed.Err, ErrNoReportService)
}

func TestView_ReportCompleted_NoLoyalCustomers(t *testing.T) {
	view := NewView(nil, nil, nil)
	view.Generate()
	flowErr := domain.NewFlowError(domain.KindNotFound, domain.MsgNoLoyalCustomers, errors.New("404"))

	_, cmd := view.Update(messages.ReportCompleted{Err: flowErr})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.Failed{Message: domain.MsgNoLoyalCustomers}, cmd())
}

func TestView_ReportCompleted_UnclassifiedError(t *testing.T) {
	view := NewView(nil, nil, nil)
	view.Generate()

	_, cmd := view.Update(messages.ReportCompleted{Err: errors.New("boom")})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.Failed{Message: domain.MsgReportFailed}, cmd())
}

func TestView_ReportCompleted_WhenIdle(t *testing.T) {
	view := NewView(nil, nil, nil)

	_, cmd := view.Update(messages.ReportCompleted{Path: "/x"})

	assert.Nil(t, cmd)
}

func TestView_SetWidth(t *testing.T) {
	view := NewView(nil, nil, nil)

	view.SetWidth(120)

	assert.Equal(t, 120, view.Width())
}
