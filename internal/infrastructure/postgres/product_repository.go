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

var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository implementación PostgreSQL de repository.ProductRepository.
type ProductRepository struct {
	db Querier
}

// NewProductRepository crea el repositorio sobre un pool o una transacción.
func NewProductRepository(db Querier) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create inserta el producto.
func (r *ProductRepository) Create(product *entity.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	query := `
		INSERT INTO products (id, name, description, price, category, supplier_id, type, production_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(context.Background(), query,
		product.ID, product.Name, nullIfEmpty(product.Description), product.Price,
		nullIfEmpty(product.Category), nullIfEmpty(product.SupplierID),
		product.Type, product.ProductionTime, product.CreatedAt, product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insertar producto: %w", err)
	}
	return nil
}

// GetByID busca por ID; devuelve (nil, nil) si no existe.
func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	query := productSelect + ` WHERE id = $1`
	p, err := scanProduct(r.db.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// List devuelve una página de productos ordenada por nombre.
func (r *ProductRepository) List(limit, offset int) ([]*entity.Product, error) {
	query := productSelect + ` ORDER BY name LIMIT $1 OFFSET $2`
	return r.queryMany(query, limit, offset)
}

// ListBySupplier devuelve los productos suministrados por el proveedor.
func (r *ProductRepository) ListBySupplier(supplierID string) ([]*entity.Product, error) {
	query := productSelect + ` WHERE supplier_id = $1 ORDER BY name`
	return r.queryMany(query, supplierID)
}

// Update actualiza todos los campos mutables del producto.
func (r *ProductRepository) Update(product *entity.Product) error {
	product.UpdatedAt = time.Now()
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, category = $5, supplier_id = $6,
		    type = $7, production_time = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		product.ID, product.Name, nullIfEmpty(product.Description), product.Price,
		nullIfEmpty(product.Category), nullIfEmpty(product.SupplierID),
		product.Type, product.ProductionTime, product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("actualizar producto: %w", err)
	}
	return nil
}

// Delete elimina el producto; el booleano indica si existía.
func (r *ProductRepository) Delete(id string) (bool, error) {
	tag, err := r.db.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("eliminar producto: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

const productSelect = `
	SELECT id, name, description, price, category, supplier_id, type, production_time, created_at, updated_at
	FROM products`

func (r *ProductRepository) queryMany(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var description, category, supplierID *string
	err := row.Scan(&p.ID, &p.Name, &description, &p.Price, &category, &supplierID,
		&p.Type, &p.ProductionTime, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("escanear producto: %w", err)
	}
	p.Description = derefStr(description)
	p.Category = derefStr(category)
	p.SupplierID = derefStr(supplierID)
	return &p, nil
}
