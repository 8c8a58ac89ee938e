package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/metrics"
)

// LedgerUseCase expone las primitivas del ledger de stock: consultar, fijar y
// ajustar la cantidad de un producto en una bodega. Las mutaciones pasan por
// una transacción con bloqueo de fila (SELECT FOR UPDATE) para serializar
// escrituras concurrentes sobre la misma fila.
type LedgerUseCase struct {
	txRunner      TxRunner
	stockRepo     repository.StockRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	txRunner TxRunner,
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:      txRunner,
		stockRepo:     stockRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// GetQuantity devuelve la cantidad actual; 0 si no existe la fila (la
// ausencia significa cero stock, no error).
func (uc *LedgerUseCase) GetQuantity(ctx context.Context, productID, warehouseID string) (int64, error) {
	if productID == "" || warehouseID == "" {
		return 0, domain.ErrInvalidInput
	}
	stock, err := uc.stockRepo.Get(productID, warehouseID)
	if err != nil {
		return 0, err
	}
	return stock.Quantity, nil
}

// SetQuantity crea la fila de stock si no existe o la actualiza en sitio.
// Falla con ErrInvalidQuantity si quantity < 0 y con ErrNotFound si el
// producto o la bodega no existen.
func (uc *LedgerUseCase) SetQuantity(ctx context.Context, productID, warehouseID string, quantity int64) error {
	if productID == "" || warehouseID == "" {
		return domain.ErrInvalidInput
	}
	if quantity < 0 {
		return domain.ErrInvalidQuantity
	}
	if err := uc.checkReferences(productID, warehouseID); err != nil {
		return err
	}

	now := time.Now()
	err := uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository, _ repository.TransferRepository) error {
		stock, err := stockRepo.GetForUpdate(productID, warehouseID)
		if err != nil {
			return err
		}
		stock.Quantity = quantity
		stock.UpdatedAt = now
		return stockRepo.Upsert(stock)
	})
	if err != nil {
		return err
	}
	metrics.StockAdjustments.Inc()
	return nil
}

// Adjust aplica un delta sobre la cantidad actual y devuelve la cantidad
// resultante. Falla con InsufficientStockError si el resultado sería negativo;
// la fila queda intacta.
func (uc *LedgerUseCase) Adjust(ctx context.Context, productID, warehouseID string, delta int64) (int64, error) {
	if productID == "" || warehouseID == "" {
		return 0, domain.ErrInvalidInput
	}
	if err := uc.checkReferences(productID, warehouseID); err != nil {
		return 0, err
	}

	now := time.Now()
	var result int64
	err := uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository, _ repository.TransferRepository) error {
		stock, err := stockRepo.GetForUpdate(productID, warehouseID)
		if err != nil {
			return err
		}
		newQty := stock.Quantity + delta
		if newQty < 0 {
			return domain.NewInsufficientStock(productID, warehouseID, -delta, stock.Quantity)
		}
		stock.Quantity = newQty
		stock.UpdatedAt = now
		if err := stockRepo.Upsert(stock); err != nil {
			return err
		}
		result = newQty
		return nil
	})
	if err != nil {
		return 0, err
	}
	metrics.StockAdjustments.Inc()
	return result, nil
}

// checkReferences valida que el producto y la bodega existan.
func (uc *LedgerUseCase) checkReferences(productID, warehouseID string) error {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.ErrNotFound
	}
	return nil
}
