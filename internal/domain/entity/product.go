package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Límites de validación para Product.
const (
	SKUMaxLen = 50
)

// Product representa un producto o SKU del inventario (multi-bodega).
// El stock se maneja por bodega en Stock; ReorderPoint es el umbral bajo el
// cual el producto se considera falto de stock.
type Product struct {
	ID           string
	SKU          string // código único, 1–50 caracteres
	Name         string
	Category     string
	UnitCost     decimal.Decimal // costo unitario, >= 0
	ReorderPoint int64           // punto de reorden, >= 0
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
