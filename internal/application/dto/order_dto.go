package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea de pedido. UnitPrice es opcional: si falta o es cero
// se congela el precio de catálogo vigente del producto.
type OrderItemRequest struct {
	ProductID string           `json:"product_id" validate:"required"`
	Quantity  int              `json:"quantity" validate:"required,min=1"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest alta de pedido: cliente + al menos una línea.
type CreateOrderRequest struct {
	CustomerID string             `json:"customer_id" validate:"required"`
	Items      []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderRequest patch de pedido. Status se sobrescribe sin validar
// transición; una lista de Items no vacía reemplaza todas las líneas.
type UpdateOrderRequest struct {
	Status       *string            `json:"status" validate:"omitempty,oneof=PENDING CONFIRMED CANCELLED DELIVERED"`
	Items        []OrderItemRequest `json:"items" validate:"omitempty,dive"`
	HandledBy    *string            `json:"handled_by"`
	DeliveryDate *time.Time         `json:"delivery_date"`
}

// OrderItemResponse línea de pedido en respuestas.
type OrderItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderResponse pedido con líneas y total derivado.
type OrderResponse struct {
	ID           string              `json:"id"`
	CustomerID   string              `json:"customer_id"`
	Items        []OrderItemResponse `json:"items"`
	Status       string              `json:"status"`
	HandledBy    string              `json:"handled_by,omitempty"`
	DeliveryDate *time.Time          `json:"delivery_date,omitempty"`
	Total        decimal.Decimal     `json:"total"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// OrderListResponse listado paginado de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
