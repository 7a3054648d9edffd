package usecase

import (
	"context"

	"github.com/jhoicas/bakeapp-api/internal/domain/repository"
)

// OrderTxRunner ejecuta escrituras de pedido (cabecera + líneas) dentro de una
// transacción, para que un fallo a mitad de camino no deje líneas huérfanas.
type OrderTxRunner interface {
	RunOrder(ctx context.Context, fn func(orders repository.OrderRepository) error) error
}
