package billing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bakeapp-api/internal/domain"
	"github.com/jhoicas/bakeapp-api/internal/domain/entity"
	"github.com/jhoicas/bakeapp-api/internal/domain/repository"
)

// PDFUseCase genera la representación gráfica (PDF) de una factura.
type PDFUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	employeeRepo repository.EmployeeRepository
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	generator    InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	employeeRepo repository.EmployeeRepository,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		employeeRepo: employeeRepo,
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		generator:    generator,
	}
}

// DownloadInvoicePDF recupera factura, cliente, empleado y líneas del pedido
// facturado y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la factura no existe.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) (pdfBytes []byte, filename string, err error) {
	if !entity.ValidID(invoiceID) {
		return nil, "", fmt.Errorf("%w: id de factura malformado %q", domain.ErrInvalidInput, invoiceID)
	}
	invoice, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if invoice == nil {
		return nil, "", domain.ErrNotFound
	}

	customer, err := uc.customerRepo.GetByID(invoice.CustomerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	employee, err := uc.employeeRepo.GetByID(invoice.EmployeeID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener empleado: %w", err)
	}

	// Líneas del pedido facturado, enriquecidas con el nombre del producto
	order, err := uc.orderRepo.GetByID(invoice.OrderID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener pedido: %w", err)
	}
	var lines []InvoiceLineForPDF
	if order != nil {
		lines = make([]InvoiceLineForPDF, 0, len(order.Items))
		for _, it := range order.Items {
			name := "Producto " + it.ProductID // fallback
			if product, pErr := uc.productRepo.GetByID(it.ProductID); pErr == nil && product != nil {
				name = product.Name
			}
			lines = append(lines, InvoiceLineForPDF{
				ProductName: name,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
				Subtotal:    it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))),
			})
		}
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, InvoicePDFData{
		Invoice:  invoice,
		Customer: customer,
		Employee: employee,
		Lines:    lines,
	})
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("factura_%s.pdf", invoice.Number)
	return pdfBytes, filename, nil
}
