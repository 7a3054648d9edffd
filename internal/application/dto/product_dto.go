package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto en el catálogo.
// Type queda fijo desde la creación; ProductionTime solo aplica a FINISHED.
type CreateProductRequest struct {
	Name           string          `json:"name" validate:"required"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	Category       string          `json:"category"`
	SupplierID     string          `json:"supplier_id"`
	Type           string          `json:"type" validate:"required,oneof=RAW FINISHED"`
	ProductionTime *int            `json:"production_time" validate:"omitempty,min=0"`
}

// UpdateProductRequest patch de producto; nil significa "sin cambio".
// El tipo no es modificable después de la creación.
type UpdateProductRequest struct {
	Name           *string          `json:"name"`
	Description    *string          `json:"description"`
	Price          *decimal.Decimal `json:"price"`
	Category       *string          `json:"category"`
	SupplierID     *string          `json:"supplier_id"`
	ProductionTime *int             `json:"production_time" validate:"omitempty,min=0"`
}

// ProductResponse producto del catálogo. ProductionTime se omite para RAW.
type ProductResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	Price          decimal.Decimal `json:"price"`
	Category       string          `json:"category,omitempty"`
	SupplierID     string          `json:"supplier_id,omitempty"`
	Type           string          `json:"type"`
	ProductionTime *int            `json:"production_time,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
