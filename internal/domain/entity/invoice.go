package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura.
const (
	InvoiceStatusDraft     = "DRAFT"
	InvoiceStatusSent      = "SENT"
	InvoiceStatusPaid      = "PAID"
	InvoiceStatusCancelled = "CANCELLED"
)

// ValidInvoiceStatus indica si el estado pertenece al conjunto soportado.
func ValidInvoiceStatus(s string) bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusCancelled:
		return true
	}
	return false
}

// Invoice factura derivada de un pedido. Total es una instantánea del pedido
// al momento de crear la factura; no se recalcula si el pedido cambia después.
type Invoice struct {
	ID         string
	CustomerID string
	EmployeeID string
	OrderID    string
	Number     string // INV-<año>-<seq3>, único
	Date       time.Time
	Total      decimal.Decimal
	Status     string // DRAFT, SENT, PAID, CANCELLED
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FormatInvoiceNumber construye el número legible INV-<año>-<consecutivo>,
// con el consecutivo a tres dígitos (crece más allá de 999 sin truncarse).
func FormatInvoiceNumber(year, seq int) string {
	return fmt.Sprintf("INV-%d-%03d", year, seq)
}
