package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ProductTotal es el stock total de un producto sumado sobre todas las bodegas.
type ProductTotal struct {
	ProductID string
	Total     int64
}

// StockRepository define el puerto para consultar/actualizar stock por producto+bodega.
// Usado dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	// Get devuelve la fila de stock; si no existe devuelve una fila con
	// Quantity 0 (ausencia significa cero stock, no error).
	Get(productID, warehouseID string) (*entity.Stock, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(productID, warehouseID string) (*entity.Stock, error)
	Upsert(stock *entity.Stock) error
	ListByProduct(productID string) ([]*entity.Stock, error)
	ListByWarehouse(warehouseID string) ([]*entity.Stock, error)
	// TotalsByProduct devuelve la suma de stock por producto en todas las bodegas.
	TotalsByProduct() ([]ProductTotal, error)
	// CountByProduct / CountByWarehouse cuentan filas de stock existentes
	// (para el contrato de borrado en cascada).
	CountByProduct(productID string) (int, error)
	CountByWarehouse(warehouseID string) (int, error)
	DeleteByProduct(productID string) error
	DeleteByWarehouse(warehouseID string) error
	Delete(productID, warehouseID string) error
}
