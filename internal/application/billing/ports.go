package billing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bakeapp-api/internal/domain/entity"
	"github.com/jhoicas/bakeapp-api/internal/domain/repository"
)

// BillingTxRunner ejecuta la creación de factura (consecutivo + cabecera) en
// una transacción: el número reservado y la fila se confirman juntos.
type BillingTxRunner interface {
	RunInvoice(ctx context.Context, fn func(invoices repository.InvoiceRepository) error) error
}

// InvoiceLineForPDF línea enriquecida con el nombre del producto.
type InvoiceLineForPDF struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// InvoicePDFData todo lo que el generador necesita para la representación gráfica.
type InvoicePDFData struct {
	Invoice  *entity.Invoice
	Customer *entity.CustomerProfile
	Employee *entity.EmployeeProfile
	Lines    []InvoiceLineForPDF
}

// InvoicePDFGenerator puerto del render de PDF (implementado con Maroto).
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, data InvoicePDFData) ([]byte, error)
}
