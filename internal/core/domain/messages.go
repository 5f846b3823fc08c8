package domain

import "fmt"

// Operator-facing messages. The client is used by a Spanish-speaking
// customer service team, so these match what the web client showed.
const (
	MsgCustomerFound      = "Cliente encontrado exitosamente"
	MsgIncompleteFields   = "Por favor complete todos los campos"
	MsgCustomerNotFound   = "Cliente no encontrado"
	MsgInvalidData        = "Datos inválidos"
	MsgSearchFailed       = "Error al buscar el cliente. Por favor intente nuevamente."
	MsgCannotConnect      = "No se pudo conectar con el servidor. Verifique que el backend esté corriendo."
	MsgNoDocumentTypes    = "No se pudieron cargar los tipos de documento"
	MsgExportFailed       = "Error al exportar la información del cliente"
	MsgNoLoyalCustomers   = "No hay clientes que cumplan los criterios de fidelización"
	MsgReportFailed       = "Error al generar el reporte. Por favor intente nuevamente."
	MsgNoPurchases        = "Este cliente no tiene compras registradas."
	MsgLoyaltyDescription = "Genera un reporte en Excel con los clientes elegibles para fidelización. " +
		"Se incluyen clientes con compras superiores a $5'000.000 COP en el último mes."
)

// MsgDocumentTypesUnavailable names the backend the operator should check.
func MsgDocumentTypesUnavailable(baseURL string) string {
	return fmt.Sprintf("Error al cargar tipos de documento. Verifique que el backend esté corriendo en %s", baseURL)
}

// MsgExported confirms where an export was written.
func MsgExported(path string) string {
	return "Archivo guardado en " + path
}
