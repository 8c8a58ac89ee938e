package entity

import "time"

// Límites de validación para Warehouse.
const (
	WarehouseCodeMaxLen = 20
)

// Warehouse representa una bodega o sucursal donde se almacena inventario (multi-bodega).
type Warehouse struct {
	ID        string
	Code      string // código único, <= 20 caracteres
	Name      string
	Location  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
