package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido. No hay máquina de estados: cualquier estado es
// alcanzable desde cualquier otro (contrato heredado del sistema original).
const (
	OrderStatusPending   = "PENDING"
	OrderStatusConfirmed = "CONFIRMED"
	OrderStatusCancelled = "CANCELLED"
	OrderStatusDelivered = "DELIVERED"
)

// ValidOrderStatus indica si el estado pertenece al conjunto soportado.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusCancelled, OrderStatusDelivered:
		return true
	}
	return false
}

// Order representa un pedido de un cliente con sus líneas.
type Order struct {
	ID           string
	CustomerID   string
	Items        []OrderItem
	Status       string
	HandledBy    string // empleado asignado, opcional
	DeliveryDate *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OrderItem línea de pedido: producto + cantidad + precio unitario congelado
// al momento de crearla.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Total suma cantidad × precio de todas las líneas.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
