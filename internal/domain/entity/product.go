package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de producto del catálogo.
const (
	ProductTypeRaw      = "RAW"      // materia prima
	ProductTypeFinished = "FINISHED" // producto terminado
)

// DefaultProductionTime días de producción por defecto para productos FINISHED.
const DefaultProductionTime = 2

// ValidProductType indica si el tipo pertenece al conjunto soportado.
func ValidProductType(t string) bool {
	return t == ProductTypeRaw || t == ProductTypeFinished
}

// Product representa un producto del catálogo de la panadería.
// Invariante: ProductionTime es nil cuando Type = RAW y nunca nil cuando Type = FINISHED.
type Product struct {
	ID             string
	Name           string
	Description    string
	Price          decimal.Decimal
	Category       string
	SupplierID     string // opcional: perfil de proveedor que lo suministra
	Type           string // RAW, FINISHED
	ProductionTime *int   // días; solo para FINISHED (default 2)
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NormalizeProductionTime aplica el invariante de ProductionTime según el tipo:
// RAW lo borra siempre; FINISHED lo completa con el default si falta.
func (p *Product) NormalizeProductionTime() {
	if p.Type == ProductTypeRaw {
		p.ProductionTime = nil
		return
	}
	if p.ProductionTime == nil {
		d := DefaultProductionTime
		p.ProductionTime = &d
	}
}
