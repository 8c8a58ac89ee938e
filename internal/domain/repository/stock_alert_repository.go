package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// StockAlertRepository define el puerto de persistencia para StockAlert (DIP).
// A lo sumo una fila por producto; la ausencia equivale al valor cero.
type StockAlertRepository interface {
	GetByProduct(productID string) (*entity.StockAlert, error)
	Upsert(alert *entity.StockAlert) error
	ListAll() ([]*entity.StockAlert, error)
	DeleteByProduct(productID string) error
}
