package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/metrics"
)

// TransferUseCase orquesta el traslado de stock entre bodegas: débito en
// origen, crédito en destino y registro inmutable del traslado, todo dentro
// de una transacción con bloqueo de fila (SELECT FOR UPDATE).
//
// La cantidad se conserva por construcción: el mismo entero que sale de la
// bodega origen es el que entra en la destino, así que el total del producto
// sobre todas las bodegas no cambia.
type TransferUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	transferRepo  repository.TransferRepository
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	transferRepo repository.TransferRepository,
) *TransferUseCase {
	return &TransferUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		transferRepo:  transferRepo,
	}
}

// TransferInput entrada para crear un traslado.
type TransferInput struct {
	ProductID       string
	FromWarehouseID string
	ToWarehouseID   string
	Quantity        int64
	Notes           string
}

// Transfer valida las precondiciones en orden (la primera que falla gana) y,
// si todas pasan, aplica el traslado como unidad atómica. Si cualquier
// precondición falla no se toca ninguna fila de stock ni se escribe el
// traslado.
//
// Orden de precondiciones:
//  1. campos requeridos presentes
//  2. bodega origen distinta de destino
//  3. cantidad positiva y notas dentro del límite
//  4. producto existe
//  5. ambas bodegas existen
//  6. stock en origen >= cantidad solicitada (verificado con ambas filas bloqueadas)
func (uc *TransferUseCase) Transfer(ctx context.Context, input TransferInput) (*entity.Transfer, error) {
	// 1–3: validación de forma, antes de tocar el store
	if input.ProductID == "" || input.FromWarehouseID == "" || input.ToWarehouseID == "" {
		metrics.TransfersRejected.WithLabelValues("validation").Inc()
		return nil, domain.ErrInvalidInput
	}
	if input.FromWarehouseID == input.ToWarehouseID {
		metrics.TransfersRejected.WithLabelValues("validation").Inc()
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity <= 0 || len(input.Notes) > entity.TransferNotesMaxLen {
		metrics.TransfersRejected.WithLabelValues("validation").Inc()
		return nil, domain.ErrInvalidInput
	}

	// 4: producto existe
	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		metrics.TransfersRejected.WithLabelValues("not_found").Inc()
		return nil, domain.ErrNotFound
	}

	// 5: ambas bodegas existen
	fromWh, err := uc.warehouseRepo.GetByID(input.FromWarehouseID)
	if err != nil {
		return nil, err
	}
	toWh, err := uc.warehouseRepo.GetByID(input.ToWarehouseID)
	if err != nil {
		return nil, err
	}
	if fromWh == nil || toWh == nil {
		metrics.TransfersRejected.WithLabelValues("not_found").Inc()
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	transfer := &entity.Transfer{
		ID:              uuid.New().String(),
		ProductID:       input.ProductID,
		FromWarehouseID: input.FromWarehouseID,
		ToWarehouseID:   input.ToWarehouseID,
		Quantity:        input.Quantity,
		Notes:           input.Notes,
		Status:          entity.TransferStatusCompleted,
		CreatedAt:       now,
	}

	// 6 + efecto: dentro de la transacción. Bloquea ambas filas, verifica
	// disponibilidad en origen, resta en origen, suma en destino y registra el
	// traslado.
	// Commit o Rollback como unidad (TxRunner.Run lo garantiza).
	err = uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository, transferRepo repository.TransferRepository) error {
		// Las dos filas se bloquean en orden determinista (por ID de bodega),
		// no en orden origen→destino: dos traslados cruzados A→B y B→A que
		// bloquearan cada uno primero su origen se interbloquearían.
		firstWh, secondWh := input.FromWarehouseID, input.ToWarehouseID
		if secondWh < firstWh {
			firstWh, secondWh = secondWh, firstWh
		}
		firstRow, err := stockRepo.GetForUpdate(input.ProductID, firstWh)
		if err != nil {
			return err
		}
		secondRow, err := stockRepo.GetForUpdate(input.ProductID, secondWh)
		if err != nil {
			return err
		}
		origin, dest := firstRow, secondRow
		if firstWh != input.FromWarehouseID {
			origin, dest = secondRow, firstRow
		}
		if origin.Quantity < input.Quantity {
			return domain.NewInsufficientStock(input.ProductID, input.FromWarehouseID, input.Quantity, origin.Quantity)
		}

		origin.Quantity -= input.Quantity
		dest.Quantity += input.Quantity
		origin.UpdatedAt = now
		dest.UpdatedAt = now

		if err := stockRepo.Upsert(origin); err != nil {
			return err
		}
		if err := stockRepo.Upsert(dest); err != nil {
			return err
		}
		return transferRepo.Create(transfer)
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			metrics.TransfersRejected.WithLabelValues("insufficient_stock").Inc()
		}
		return nil, err
	}

	metrics.TransfersCompleted.Inc()
	return transfer, nil
}

// ListTransfers devuelve los traslados más recientes primero, enriquecidos
// con el producto y las bodegas referenciadas.
func (uc *TransferUseCase) ListTransfers(ctx context.Context, limit, offset int) (*dto.TransferListResponse, error) {
	list, err := uc.transferRepo.ListEnriched(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EnrichedTransferResponse, 0, len(list))
	for _, t := range list {
		items = append(items, dto.EnrichedTransferResponse{
			TransferResponse: dto.TransferResponse{
				ID:              t.Transfer.ID,
				ProductID:       t.Transfer.ProductID,
				FromWarehouseID: t.Transfer.FromWarehouseID,
				ToWarehouseID:   t.Transfer.ToWarehouseID,
				Quantity:        t.Transfer.Quantity,
				Notes:           t.Transfer.Notes,
				Status:          t.Transfer.Status,
				CreatedAt:       t.Transfer.CreatedAt,
			},
			ProductSKU:        t.ProductSKU,
			ProductName:       t.ProductName,
			FromWarehouseCode: t.FromWarehouseCode,
			FromWarehouseName: t.FromWarehouseName,
			ToWarehouseCode:   t.ToWarehouseCode,
			ToWarehouseName:   t.ToWarehouseName,
		})
	}
	return &dto.TransferListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// DeleteTransfer elimina el registro de auditoría del traslado. No revierte
// el efecto sobre el ledger.
func (uc *TransferUseCase) DeleteTransfer(ctx context.Context, id string) error {
	transfer, err := uc.transferRepo.GetByID(id)
	if err != nil {
		return err
	}
	if transfer == nil {
		return domain.ErrNotFound
	}
	return uc.transferRepo.Delete(id)
}
