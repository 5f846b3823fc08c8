package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
)

func TestTypesCmd_ListsCatalogWithDefaultMarked(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "tipos")

	require.NoError(t, err)
	assert.Contains(t, out, "Tipos de documento:")
	assert.Contains(t, out, "* [1] Cédula de Ciudadanía (CC)")
	assert.Contains(t, out, "  [2] NIT")
}

func TestTypesCmd_JSON(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "tipos", "--json")

	require.NoError(t, err)
	assert.Contains(t, out, `"codigo": "NIT"`)
	assert.NotContains(t, out, "Tipos de documento:")
}

func TestTypesCmd_PropagatesError(t *testing.T) {
	ts := setupTestServices(t)
	ts.lookup.TypesErr = errors.New("boom")

	_, err := execute(t, "tipos")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestTypesCmd_RequiresService(t *testing.T) {
	setupTestServices(t)
	lookupService = nil

	_, err := execute(t, "tipos")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "lookup service not configured")
}

func TestSearchCmd_UsesDefaultType(t *testing.T) {
	ts := setupTestServices(t)

	out, err := execute(t, "buscar", "123")

	require.NoError(t, err)
	assert.Equal(t, domain.ID("1"), ts.lookup.LastQuery.DocumentTypeID)
	assert.Equal(t, "123", ts.lookup.LastQuery.DocumentNumber)
	assert.Contains(t, out, domain.MsgCustomerFound)
	assert.Contains(t, out, "Ana Gómez")
	assert.Contains(t, out, "Historial de Compras")
	assert.Contains(t, out, "FAC-001")
}

func TestSearchCmd_ResolvesTypeByCode(t *testing.T) {
	ts := setupTestServices(t)

	_, err := execute(t, "buscar", "900123", "--tipo", "nit")

	require.NoError(t, err)
	assert.Equal(t, domain.ID("2"), ts.lookup.LastQuery.DocumentTypeID)
}

func TestSearchCmd_ResolvesTypeByID(t *testing.T) {
	ts := setupTestServices(t)

	_, err := execute(t, "buscar", "123", "-t", "2")

	require.NoError(t, err)
	assert.Equal(t, domain.ID("2"), ts.lookup.LastQuery.DocumentTypeID)
}

func TestSearchCmd_UnknownType(t *testing.T) {
	ts := setupTestServices(t)

	_, err := execute(t, "buscar", "123", "--tipo", "PASAPORTE")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, ts.lookup.Searches)
}

func TestSearchCmd_EmptyCatalog(t *testing.T) {
	ts := setupTestServices(t)
	ts.lookup.Types = nil

	_, err := execute(t, "buscar", "123")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoDocumentTypes)
}

func TestSearchCmd_NotFound(t *testing.T) {
	ts := setupTestServices(t)
	ts.lookup.Customer = nil

	_, err := execute(t, "buscar", "999")

	require.Error(t, err)
	assert.Equal(t, domain.MsgCustomerNotFound, err.Error())
}

func TestSearchCmd_NoPurchases(t *testing.T) {
	ts := setupTestServices(t)
	ts.lookup.Customer.Purchases = nil

	out, err := execute(t, "buscar", "123")

	require.NoError(t, err)
	assert.Contains(t, out, domain.MsgNoPurchases)
	assert.NotContains(t, out, "Historial de Compras")
}

func TestSearchCmd_JSON(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "buscar", "123", "--json")

	require.NoError(t, err)
	assert.Contains(t, out, `"numero_documento": "123"`)
	assert.Contains(t, out, `"numero_factura": "FAC-001"`)
	assert.NotContains(t, out, domain.MsgCustomerFound)
}

func TestExportCmd_SavesFile(t *testing.T) {
	ts := setupTestServices(t)

	out, err := execute(t, "exportar", "123", "--formato", "excel")

	require.NoError(t, err)
	assert.Equal(t, domain.ExportExcel, ts.export.LastFormat)
	assert.Contains(t, out, domain.MsgExported("/exports/cliente_123.xlsx"))
}

func TestExportCmd_RequiresFormat(t *testing.T) {
	ts := setupTestServices(t)

	_, err := execute(t, "exportar", "123")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--formato is required (csv, excel, txt)")
	assert.Zero(t, ts.export.Calls)
}

func TestExportCmd_RejectsUnknownFormat(t *testing.T) {
	ts := setupTestServices(t)

	_, err := execute(t, "exportar", "123", "-f", "pdf")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	assert.Zero(t, ts.lookup.Searches)
}

func TestExportCmd_PropagatesExportError(t *testing.T) {
	ts := setupTestServices(t)
	ts.export.Err = domain.NewFlowError(domain.KindExportFailure, domain.MsgExportFailed, domain.ErrExportFailed)

	_, err := execute(t, "exportar", "123", "-f", "csv")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExportFailed)
}

func TestResolveDocumentType_ByName(t *testing.T) {
	setupTestServices(t)

	docType, err := resolveDocumentType(t.Context(), "cédula de ciudadanía")

	require.NoError(t, err)
	assert.Equal(t, domain.ID("1"), docType.ID)
}
