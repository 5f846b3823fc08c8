package driving

import "github.com/riosdeldesierto/consulta-clientes/internal/core/domain"

// Session is the top-level store for the interactive client.
// It holds at most one customer and one alert; every transition replaces
// the previous value.
type Session interface {
	// Customer returns the current customer, or nil.
	Customer() *domain.Customer

	// Alert returns the current alert.
	Alert() domain.Alert

	// CustomerFound replaces the customer and raises the success alert.
	CustomerFound(customer *domain.Customer) uint64

	// Fail raises an error alert with message.
	Fail(message string) uint64

	// Notify replaces the alert and returns its generation.
	Notify(message string, severity domain.Severity) uint64

	// Dismiss clears the alert immediately.
	Dismiss()

	// Expire clears the alert if generation is still the current one.
	// Returns true when the alert was cleared.
	Expire(generation uint64) bool

	// Generation returns the current alert generation.
	Generation() uint64
}
