package repository

import "github.com/jhoicas/bakeapp-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	ListBySupplier(supplierID string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	// Delete elimina el producto y devuelve si existía.
	Delete(id string) (bool, error)
}
