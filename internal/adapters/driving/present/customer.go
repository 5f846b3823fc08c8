package present

import (
	"strings"

	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
)

// CustomerDetail is a customer projected into display strings.
type CustomerDetail struct {
	ID             string `json:"id"`
	Name           string `json:"nombre"`
	DocumentType   string `json:"tipo_documento"`
	DocumentNumber string `json:"numero_documento"`
	Email          string `json:"correo"`
	Phone          string `json:"telefono"`
	RegisteredAt   string `json:"fecha_registro"`

	// PurchaseCount is total_compras when sent, else the number of purchases.
	PurchaseCount  int `json:"total_compras"`
	CompletedCount int `json:"compras_completadas"`

	// TotalAmount is empty unless the server sent a non-zero total.
	TotalAmount string `json:"monto_total_compras,omitempty"`

	Purchases   []PurchaseRow `json:"compras"`
	NoPurchases bool          `json:"sin_compras"`
}

// PurchaseRow is one purchase projected into display strings.
type PurchaseRow struct {
	Invoice     string                `json:"numero_factura"`
	Date        string                `json:"fecha_compra"`
	Description string                `json:"descripcion"`
	Amount      string                `json:"monto"`
	Status      domain.PurchaseStatus `json:"estado"`
	StatusLabel string                `json:"estado_etiqueta"`
}

// Customer projects c. It is a pure function of c and the formatter settings.
func (f *Formatter) Customer(c *domain.Customer) CustomerDetail {
	if c == nil {
		return CustomerDetail{NoPurchases: true}
	}

	detail := CustomerDetail{
		ID:             c.ID.String(),
		Name:           orPlaceholder(c.DisplayName()),
		DocumentType:   orPlaceholder(c.DocumentType.Name),
		DocumentNumber: orPlaceholder(c.DocumentNumber),
		Email:          orPlaceholder(c.Email),
		Phone:          orPlaceholder(c.Phone),
		RegisteredAt:   f.LongDateTime(c.RegisteredAt.In(f.loc)),
		PurchaseCount:  c.PurchaseCount(),
		CompletedCount: c.CompletedCount(),
		NoPurchases:    !c.HasPurchases(),
	}

	if c.TotalAmount.Valid && !c.TotalAmount.Decimal.IsZero() {
		detail.TotalAmount = f.Money(c.TotalAmount.Decimal)
	}

	detail.Purchases = make([]PurchaseRow, 0, len(c.Purchases))
	for i := range c.Purchases {
		detail.Purchases = append(detail.Purchases, f.Purchase(&c.Purchases[i]))
	}

	return detail
}

// Purchase projects a single purchase.
func (f *Formatter) Purchase(p *domain.Purchase) PurchaseRow {
	description := Placeholder
	if p.Description != nil && strings.TrimSpace(*p.Description) != "" {
		description = *p.Description
	}

	return PurchaseRow{
		Invoice:     orPlaceholder(p.InvoiceNumber),
		Date:        f.ShortDate(p.PurchasedAt.In(f.loc)),
		Description: description,
		Amount:      f.Money(p.Amount),
		Status:      p.Status,
		StatusLabel: StatusLabel(p.Status),
	}
}

// StatusLabel capitalises known statuses and shows unknown ones verbatim.
func StatusLabel(s domain.PurchaseStatus) string {
	switch s {
	case domain.PurchaseCompleted:
		return "Completada"
	case domain.PurchasePending:
		return "Pendiente"
	case domain.PurchaseCancelled:
		return "Cancelada"
	case "":
		return Placeholder
	default:
		return string(s)
	}
}

// DocumentTypeLabel renders a catalog entry as "Nombre (CODIGO)".
func DocumentTypeLabel(t domain.DocumentType) string {
	name := orPlaceholder(t.Name)
	if t.Code == "" || t.Code == t.Name {
		return name
	}
	return name + " (" + t.Code + ")"
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}
