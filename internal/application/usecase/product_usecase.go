package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bakeapp-api/internal/application/dto"
	"github.com/jhoicas/bakeapp-api/internal/domain"
	"github.com/jhoicas/bakeapp-api/internal/domain/entity"
	"github.com/jhoicas/bakeapp-api/internal/domain/repository"
)

// ProductUseCase CRUD del catálogo de productos.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, supplierRepo repository.SupplierRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, supplierRepo: supplierRepo}
}

// Create da de alta un producto. El tipo queda fijo; ProductionTime se
// normaliza según el invariante RAW/FINISHED.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || !in.Price.GreaterThan(decimal.Zero) || !entity.ValidProductType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if in.SupplierID != "" {
		if !entity.ValidID(in.SupplierID) {
			return nil, fmt.Errorf("%w: id de proveedor malformado %q", domain.ErrInvalidInput, in.SupplierID)
		}
		supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Description:    in.Description,
		Price:          in.Price,
		Category:       in.Category,
		SupplierID:     in.SupplierID,
		Type:           in.Type,
		ProductionTime: in.ProductionTime,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	product.NormalizeProductionTime()

	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID devuelve el producto o ErrNotFound.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	if !entity.ValidID(id) {
		return nil, fmt.Errorf("%w: id de producto malformado %q", domain.ErrInvalidInput, id)
	}
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List devuelve productos paginados.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	products, err := uc.productRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListBySupplier devuelve los productos suministrados por un proveedor.
func (uc *ProductUseCase) ListBySupplier(supplierID string) (*dto.ProductListResponse, error) {
	if !entity.ValidID(supplierID) {
		return nil, fmt.Errorf("%w: id de proveedor malformado %q", domain.ErrInvalidInput, supplierID)
	}
	products, err := uc.productRepo.ListBySupplier(supplierID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: len(items), Total: len(items)},
	}, nil
}

// Update parchea el producto. El tipo no cambia; el invariante de
// ProductionTime se reaplica siempre.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if !entity.ValidID(id) {
		return nil, fmt.Errorf("%w: id de producto malformado %q", domain.ErrInvalidInput, id)
	}
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if !in.Price.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.SupplierID != nil {
		if *in.SupplierID != "" {
			if !entity.ValidID(*in.SupplierID) {
				return nil, fmt.Errorf("%w: id de proveedor malformado %q", domain.ErrInvalidInput, *in.SupplierID)
			}
			supplier, err := uc.supplierRepo.GetByID(*in.SupplierID)
			if err != nil {
				return nil, err
			}
			if supplier == nil {
				return nil, domain.ErrNotFound
			}
		}
		product.SupplierID = *in.SupplierID
	}
	if in.ProductionTime != nil {
		product.ProductionTime = in.ProductionTime
	}
	product.NormalizeProductionTime()
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Remove elimina el producto o devuelve ErrNotFound.
func (uc *ProductUseCase) Remove(id string) error {
	if !entity.ValidID(id) {
		return fmt.Errorf("%w: id de producto malformado %q", domain.ErrInvalidInput, id)
	}
	existed, err := uc.productRepo.Delete(id)
	if err != nil {
		return err
	}
	if !existed {
		return domain.ErrNotFound
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		Category:       p.Category,
		SupplierID:     p.SupplierID,
		Type:           p.Type,
		ProductionTime: p.ProductionTime,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
