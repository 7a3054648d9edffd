package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/bakeapp-api/internal/application/auth"
	"github.com/jhoicas/bakeapp-api/internal/application/billing"
	"github.com/jhoicas/bakeapp-api/internal/application/usecase"
	"github.com/jhoicas/bakeapp-api/internal/domain/repository"
)

// Ensure TxRunner implements the application-level transaction ports.
var _ auth.TxRunner = (*TxRunner)(nil)
var _ usecase.OrderTxRunner = (*TxRunner)(nil)
var _ billing.BillingTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunRegister inicia una transacción con repos de usuario y perfiles:
// identidad y variante de perfil se confirman juntas o ninguna.
func (r *TxRunner) RunRegister(ctx context.Context, fn func(
	users repository.UserRepository,
	profiles repository.ProfileStores,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	users := NewUserRepository(tx)
	profiles := repository.ProfileStores{
		Customer: NewCustomerRepository(tx),
		Employee: NewEmployeeRepository(tx),
		Supplier: NewSupplierRepository(tx),
	}

	if err := fn(users, profiles); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunOrder inicia una transacción para escrituras de pedido (cabecera + líneas).
func (r *TxRunner) RunOrder(ctx context.Context, fn func(orders repository.OrderRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewOrderRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunInvoice inicia una transacción para la creación de facturas
// (reserva del consecutivo + inserción de la cabecera).
func (r *TxRunner) RunInvoice(ctx context.Context, fn func(invoices repository.InvoiceRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewInvoiceRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
