package entity

import "time"

// Stock representa el stock actual de un producto en una bodega.
// Invariante: a lo sumo una fila por (ProductID, WarehouseID) y Quantity >= 0.
type Stock struct {
	ProductID   string
	WarehouseID string
	Quantity    int64
	UpdatedAt   time.Time
}
