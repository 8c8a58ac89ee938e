package usecase

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// CascadeTxRunner ejecuta el borrado en cascada de un producto o bodega
// (entidad + filas de stock + seguimiento de alerta) en una sola transacción.
type CascadeTxRunner interface {
	RunCascade(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		warehouseRepo repository.WarehouseRepository,
		stockRepo repository.StockRepository,
		alertRepo repository.StockAlertRepository,
	) error) error
}
