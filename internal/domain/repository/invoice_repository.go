package repository

import "github.com/jhoicas/bakeapp-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	List(limit, offset int) ([]*entity.Invoice, error)
	Update(invoice *entity.Invoice) error
	// Delete elimina la factura y devuelve si existía. No toca el pedido referenciado.
	Delete(id string) (bool, error)
	// NextNumber reserva atómicamente el siguiente consecutivo del año.
	// Ejecutado dentro de la tx de creación, dos creaciones concurrentes
	// nunca observan el mismo valor.
	NextNumber(year int) (int, error)
}
