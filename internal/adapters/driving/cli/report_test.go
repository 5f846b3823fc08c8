package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
)

func TestReportCmd_PrintsPath(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "reporte")

	require.NoError(t, err)
	assert.Contains(t, out, domain.MsgExported("/exports/reporte_fidelizacion_2024-03-01.xlsx"))
}

func TestReportCmd_NoLoyalCustomers(t *testing.T) {
	ts := setupTestServices(t)
	ts.report.Err = domain.NewFlowError(domain.KindBadRequest, domain.MsgNoLoyalCustomers, domain.ErrValidation)

	_, err := execute(t, "reporte")

	require.Error(t, err)
	assert.Equal(t, domain.MsgNoLoyalCustomers, err.Error())
}

func TestReportCmd_RequiresService(t *testing.T) {
	setupTestServices(t)
	reportService = nil

	_, err := execute(t, "reporte")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "report service not configured")
}

func TestReportCmd_RejectsArgs(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "reporte", "extra")

	require.Error(t, err)
}
