package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
)

func TestPanel_String(t *testing.T) {
	assert.Equal(t, "search", PanelSearch.String())
	assert.Equal(t, "detail", PanelDetail.String())
	assert.Equal(t, "report", PanelReport.String())
	assert.Equal(t, "unknown", Panel(99).String())
}

func TestFail(t *testing.T) {
	msg := Fail(domain.MsgCustomerNotFound)()

	assert.Equal(t, Failed{Message: domain.MsgCustomerNotFound}, msg)
}

func TestNotify(t *testing.T) {
	msg := Notify("Archivo guardado", domain.SeverityInfo)()

	assert.Equal(t, Notified{Message: "Archivo guardado", Severity: domain.SeverityInfo}, msg)
}

func TestFound(t *testing.T) {
	customer := &domain.Customer{ID: "7"}

	msg := Found(customer)()

	found, ok := msg.(CustomerFound)
	assert.True(t, ok)
	assert.Same(t, customer, found.Customer)
}
