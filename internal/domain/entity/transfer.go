package entity

import "time"

// Estados de un traslado. No existe estado parcial ni pendiente: el traslado
// se aplica completo dentro de una transacción o no se aplica.
const (
	TransferStatusCompleted = "completed"
)

// Longitud máxima de las notas de un traslado.
const TransferNotesMaxLen = 500

// Transfer representa un traslado de stock entre dos bodegas de un producto.
// Inmutable una vez creado; el borrado explícito es solo de auditoría y no
// revierte el efecto sobre el ledger.
type Transfer struct {
	ID              string
	ProductID       string
	FromWarehouseID string
	ToWarehouseID   string
	Quantity        int64 // > 0
	Notes           string
	Status          string // siempre "completed"
	CreatedAt       time.Time
}
