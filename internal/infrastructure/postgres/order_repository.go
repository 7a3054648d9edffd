package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/bakeapp-api/internal/domain/entity"
	"github.com/jhoicas/bakeapp-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepository)(nil)

// OrderRepository implementación PostgreSQL de repository.OrderRepository
// (tablas orders + order_items).
type OrderRepository struct {
	db Querier
}

// NewOrderRepository crea el repositorio sobre un pool o una transacción.
func NewOrderRepository(db Querier) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserta cabecera y líneas. Sobre una transacción ambas escrituras son atómicas.
func (r *OrderRepository) Create(order *entity.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	query := `
		INSERT INTO orders (id, customer_id, status, handled_by, delivery_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(context.Background(), query,
		order.ID, order.CustomerID, order.Status, nullIfEmpty(order.HandledBy),
		order.DeliveryDate, order.CreatedAt, order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insertar pedido: %w", err)
	}
	return r.insertItems(order.ID, order.Items)
}

// GetByID devuelve el pedido con sus líneas, o nil si no existe.
func (r *OrderRepository) GetByID(id string) (*entity.Order, error) {
	query := orderSelect + ` WHERE id = $1`

	o, err := scanOrder(r.db.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	o.Items, err = r.loadItems(o.ID)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// List devuelve una página de pedidos (con líneas) ordenada por fecha de creación.
func (r *OrderRepository) List(limit, offset int) ([]*entity.Order, error) {
	query := orderSelect + ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryMany(query, limit, offset)
}

// ListByCustomer devuelve los pedidos del cliente, más recientes primero.
func (r *OrderRepository) ListByCustomer(customerID string) ([]*entity.Order, error) {
	query := orderSelect + ` WHERE customer_id = $1 ORDER BY created_at DESC`
	return r.queryMany(query, customerID)
}

// ListByEmployee devuelve los pedidos gestionados por el empleado, más recientes primero.
func (r *OrderRepository) ListByEmployee(employeeID string) ([]*entity.Order, error) {
	query := orderSelect + ` WHERE handled_by = $1 ORDER BY created_at DESC`
	return r.queryMany(query, employeeID)
}

// Update actualiza solo la cabecera; las líneas se reemplazan con ReplaceItems.
func (r *OrderRepository) Update(order *entity.Order) error {
	order.UpdatedAt = time.Now()
	query := `
		UPDATE orders
		SET status = $2, handled_by = $3, delivery_date = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		order.ID, order.Status, nullIfEmpty(order.HandledBy), order.DeliveryDate, order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("actualizar pedido: %w", err)
	}
	return nil
}

// ReplaceItems borra todas las líneas del pedido y escribe las nuevas.
func (r *OrderRepository) ReplaceItems(orderID string, items []entity.OrderItem) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM order_items WHERE order_id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("borrar líneas del pedido: %w", err)
	}
	return r.insertItems(orderID, items)
}

const orderSelect = `
	SELECT id, customer_id, status, handled_by, delivery_date, created_at, updated_at
	FROM orders`

func (r *OrderRepository) insertItems(orderID string, items []entity.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5)`
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.New().String()
		}
		items[i].OrderID = orderID
		_, err := r.db.Exec(context.Background(), query,
			items[i].ID, orderID, items[i].ProductID, items[i].Quantity, items[i].UnitPrice)
		if err != nil {
			return fmt.Errorf("insertar línea de pedido: %w", err)
		}
	}
	return nil
}

func (r *OrderRepository) loadItems(orderID string) ([]entity.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity, unit_price
		FROM order_items WHERE order_id = $1 ORDER BY id`

	rows, err := r.db.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("listar líneas del pedido: %w", err)
	}
	defer rows.Close()

	var items []entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("escanear línea de pedido: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *OrderRepository) queryMany(query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("listar pedidos: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range orders {
		if o.Items, err = r.loadItems(o.ID); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	var handledBy *string
	err := row.Scan(&o.ID, &o.CustomerID, &o.Status, &handledBy, &o.DeliveryDate, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("escanear pedido: %w", err)
	}
	o.HandledBy = derefStr(handledBy)
	return &o, nil
}
