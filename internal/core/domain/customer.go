package domain

import (
	"github.com/shopspring/decimal"
)

// PurchaseStatus is the lifecycle state of a purchase.
// Values outside the known set are kept verbatim.
type PurchaseStatus string

// Known purchase states.
const (
	PurchaseCompleted PurchaseStatus = "completada"
	PurchasePending   PurchaseStatus = "pendiente"
	PurchaseCancelled PurchaseStatus = "cancelada"
)

// String returns the string representation.
func (s PurchaseStatus) String() string {
	return string(s)
}

// IsCompleted returns true for completed purchases.
func (s PurchaseStatus) IsCompleted() bool {
	return s == PurchaseCompleted
}

// Purchase is a recorded transaction belonging to a customer.
// It is read-only on the client.
type Purchase struct {
	ID            ID              `json:"id"`
	InvoiceNumber string          `json:"numero_factura"`
	PurchasedAt   Timestamp       `json:"fecha_compra"`
	Description   *string         `json:"descripcion"`
	Amount        decimal.Decimal `json:"monto"`
	Status        PurchaseStatus  `json:"estado"`
}

// Customer is a customer record as returned by the search endpoint.
type Customer struct {
	ID             ID           `json:"id"`
	DocumentType   DocumentType `json:"tipo_documento"`
	DocumentNumber string       `json:"numero_documento"`
	FirstName      string       `json:"nombre"`
	LastName       string       `json:"apellido"`
	FullName       string       `json:"nombre_completo,omitempty"`
	Email          string       `json:"correo"`
	Phone          string       `json:"telefono"`
	RegisteredAt   Timestamp    `json:"fecha_registro"`
	Purchases      []Purchase   `json:"compras"`

	// TotalPurchases is the server's count of completed purchases, if sent.
	TotalPurchases *int `json:"total_compras,omitempty"`

	// TotalAmount is the server's sum of completed purchases, if sent.
	TotalAmount decimal.NullDecimal `json:"monto_total_compras"`
}

// HasPurchases reports whether the customer has any purchase on record.
func (c *Customer) HasPurchases() bool {
	return len(c.Purchases) > 0
}

// PurchaseCount is the count shown next to the identity fields:
// total_compras when present and non-zero, otherwise the number of purchases.
func (c *Customer) PurchaseCount() int {
	if c.TotalPurchases != nil && *c.TotalPurchases != 0 {
		return *c.TotalPurchases
	}
	return len(c.Purchases)
}

// CompletedCount returns the number of completed purchases.
func (c *Customer) CompletedCount() int {
	n := 0
	for i := range c.Purchases {
		if c.Purchases[i].Status.IsCompleted() {
			n++
		}
	}
	return n
}

// DisplayName returns the full name, building it when the server omitted it.
func (c *Customer) DisplayName() string {
	if c.FullName != "" {
		return c.FullName
	}
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	default:
		return c.FirstName + " " + c.LastName
	}
}
