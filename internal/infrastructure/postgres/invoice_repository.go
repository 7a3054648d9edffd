package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/bakeapp-api/internal/domain"
	"github.com/jhoicas/bakeapp-api/internal/domain/entity"
	"github.com/jhoicas/bakeapp-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepository)(nil)

// InvoiceRepository implementación PostgreSQL de repository.InvoiceRepository.
type InvoiceRepository struct {
	db Querier
}

// NewInvoiceRepository crea el repositorio sobre un pool o una transacción.
func NewInvoiceRepository(db Querier) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// NextNumber reserva el siguiente consecutivo del año. El upsert sobre
// invoice_sequences incrementa y lee en una sola sentencia: dos transacciones
// concurrentes serializan sobre la fila del año y nunca ven el mismo valor.
func (r *InvoiceRepository) NextNumber(year int) (int, error) {
	query := `
		INSERT INTO invoice_sequences (year, last_number)
		VALUES ($1, 1)
		ON CONFLICT (year) DO UPDATE
		SET last_number = invoice_sequences.last_number + 1
		RETURNING last_number`

	var seq int
	if err := r.db.QueryRow(context.Background(), query, year).Scan(&seq); err != nil {
		return 0, fmt.Errorf("reservar consecutivo de factura: %w", err)
	}
	return seq, nil
}

// Create inserta la factura. Número duplicado (índice único) se traduce a domain.ErrDuplicate.
func (r *InvoiceRepository) Create(invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	now := time.Now()
	invoice.CreatedAt = now
	invoice.UpdatedAt = now

	query := `
		INSERT INTO invoices (id, customer_id, employee_id, order_id, number, date, total, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(context.Background(), query,
		invoice.ID, invoice.CustomerID, invoice.EmployeeID, invoice.OrderID,
		invoice.Number, invoice.Date, invoice.Total, invoice.Status,
		invoice.CreatedAt, invoice.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insertar factura: %w", err)
	}
	return nil
}

// GetByID busca por ID; devuelve (nil, nil) si no existe.
func (r *InvoiceRepository) GetByID(id string) (*entity.Invoice, error) {
	query := invoiceSelect + ` WHERE id = $1`
	inv, err := scanInvoice(r.db.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return inv, nil
}

// List devuelve una página de facturas, más recientes primero.
func (r *InvoiceRepository) List(limit, offset int) ([]*entity.Invoice, error) {
	query := invoiceSelect + ` ORDER BY date DESC, number DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar facturas: %w", err)
	}
	defer rows.Close()

	var invoices []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

// Update actualiza los campos mutables de la factura (el número nunca cambia).
func (r *InvoiceRepository) Update(invoice *entity.Invoice) error {
	invoice.UpdatedAt = time.Now()
	query := `
		UPDATE invoices
		SET customer_id = $2, employee_id = $3, order_id = $4, date = $5, total = $6, status = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		invoice.ID, invoice.CustomerID, invoice.EmployeeID, invoice.OrderID,
		invoice.Date, invoice.Total, invoice.Status, invoice.UpdatedAt)
	if err != nil {
		return fmt.Errorf("actualizar factura: %w", err)
	}
	return nil
}

// Delete elimina la factura; el booleano indica si existía. El pedido referenciado no se toca.
func (r *InvoiceRepository) Delete(id string) (bool, error) {
	tag, err := r.db.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("eliminar factura: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

const invoiceSelect = `
	SELECT id, customer_id, employee_id, order_id, number, date, total, status, created_at, updated_at
	FROM invoices`

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(&inv.ID, &inv.CustomerID, &inv.EmployeeID, &inv.OrderID,
		&inv.Number, &inv.Date, &inv.Total, &inv.Status, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("escanear factura: %w", err)
	}
	return &inv, nil
}
