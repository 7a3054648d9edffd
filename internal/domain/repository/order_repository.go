package repository

import "github.com/jhoicas/bakeapp-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order y sus líneas.
// Create y ReplaceItems tocan cabecera y líneas; ejecutados sobre una tx son atómicos.
type OrderRepository interface {
	// Create inserta cabecera y líneas.
	Create(order *entity.Order) error
	// GetByID devuelve el pedido con sus líneas, o nil si no existe.
	GetByID(id string) (*entity.Order, error)
	List(limit, offset int) ([]*entity.Order, error)
	ListByCustomer(customerID string) ([]*entity.Order, error)
	ListByEmployee(employeeID string) ([]*entity.Order, error)
	// Update actualiza solo la cabecera (status, handled_by, delivery_date).
	Update(order *entity.Order) error
	// ReplaceItems borra todas las líneas y escribe las nuevas.
	ReplaceItems(orderID string, items []entity.OrderItem) error
}
