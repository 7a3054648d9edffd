package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest factura nueva: referencias a cliente, pedido y empleado.
// El total se calcula del pedido; el número lo asigna el consecutivo anual.
type CreateInvoiceRequest struct {
	CustomerID string `json:"customer_id" validate:"required"`
	OrderID    string `json:"order_id" validate:"required"`
	EmployeeID string `json:"employee_id" validate:"required"`
}

// UpdateInvoiceRequest patch de factura; nil significa "sin cambio".
// No tiene efecto en cascada sobre el pedido referenciado.
type UpdateInvoiceRequest struct {
	CustomerID *string          `json:"customer_id"`
	OrderID    *string          `json:"order_id"`
	EmployeeID *string          `json:"employee_id"`
	Status     *string          `json:"status" validate:"omitempty,oneof=DRAFT SENT PAID CANCELLED"`
	Total      *decimal.Decimal `json:"total"`
}

// InvoiceResponse factura completa.
type InvoiceResponse struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	EmployeeID string          `json:"employee_id"`
	OrderID    string          `json:"order_id"`
	Number     string          `json:"number"`
	Date       time.Time       `json:"date"`
	Total      decimal.Decimal `json:"total"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// InvoiceListResponse listado paginado de facturas.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
