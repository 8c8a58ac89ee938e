package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// EnrichedTransfer es un traslado con los datos de producto y bodegas
// referenciados, para presentación en listados.
type EnrichedTransfer struct {
	Transfer          entity.Transfer
	ProductSKU        string
	ProductName       string
	FromWarehouseCode string
	FromWarehouseName string
	ToWarehouseCode   string
	ToWarehouseName   string
}

// TransferRepository define el puerto de persistencia para Transfer (DIP).
// Los traslados son inmutables: no hay Update.
type TransferRepository interface {
	Create(transfer *entity.Transfer) error
	GetByID(id string) (*entity.Transfer, error)
	// ListEnriched devuelve los traslados más recientes primero, con los
	// datos del producto y las bodegas para display.
	ListEnriched(limit, offset int) ([]EnrichedTransfer, error)
	// Delete elimina el registro de auditoría; no revierte el ledger.
	Delete(id string) error
}
