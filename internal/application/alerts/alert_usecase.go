// Package alerts contiene los casos de uso del tablero de alertas de reorden:
// clasificación en vivo del stock de cada producto, resumen agregado y el
// ciclo de vida acknowledge/dismiss/notas por producto.
package alerts

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/domain/stock"
	"github.com/jhoicas/almacen-api/pkg/metrics"
	"github.com/jhoicas/almacen-api/pkg/search"
)

// Acciones válidas sobre una alerta. Todas son idempotentes.
const (
	ActionAcknowledge   = "acknowledge"
	ActionUnacknowledge = "unacknowledge"
	ActionDismiss       = "dismiss"
	ActionUndismiss     = "undismiss"
	ActionUpdateNotes   = "update_notes"
)

var validActions = []string{
	ActionAcknowledge, ActionUnacknowledge, ActionDismiss, ActionUndismiss, ActionUpdateNotes,
}

// productScanPageSize tamaño de página al recorrer el catálogo completo.
const productScanPageSize = 1000

// listAllProducts recorre el catálogo paginando hasta agotarlo. El tablero y
// el reporte clasifican cada producto existente, sin importar el tamaño del
// catálogo.
func listAllProducts(repo repository.ProductRepository) ([]*entity.Product, error) {
	var all []*entity.Product
	for offset := 0; ; offset += productScanPageSize {
		page, err := repo.List(productScanPageSize, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < productScanPageSize {
			return all, nil
		}
	}
}

// AlertUseCase lee el ledger y el catálogo, clasifica cada producto con el
// clasificador puro y superpone el estado de seguimiento persistido. Nunca
// guarda el estado de stock: se recalcula en cada lectura, así que no pueden
// existir severidades cacheadas obsoletas.
type AlertUseCase struct {
	productRepo repository.ProductRepository
	stockRepo   repository.StockRepository
	alertRepo   repository.StockAlertRepository
}

// NewAlertUseCase construye el caso de uso.
func NewAlertUseCase(
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	alertRepo repository.StockAlertRepository,
) *AlertUseCase {
	return &AlertUseCase{
		productRepo: productRepo,
		stockRepo:   stockRepo,
		alertRepo:   alertRepo,
	}
}

// ApplyAction aplica una acción de seguimiento sobre la alerta del producto.
// Crea la fila de forma perezosa en la primera acción; repetir una acción deja
// el mismo estado final (solo cambia UpdatedAt).
func (uc *AlertUseCase) ApplyAction(ctx context.Context, productID, action, notes string) (*dto.StockAlertResponse, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !isValidAction(action) {
		return nil, fmt.Errorf("acción %q desconocida; acciones válidas: %s: %w",
			action, strings.Join(validActions, ", "), domain.ErrInvalidInput)
	}

	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	alert, err := uc.alertRepo.GetByProduct(productID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if alert == nil {
		// Primera acción sobre este producto: crear la fila con el valor cero
		alert = &entity.StockAlert{
			ID:        uuid.New().String(),
			ProductID: productID,
		}
	}

	switch action {
	case ActionAcknowledge:
		if !alert.Acknowledged {
			alert.Acknowledged = true
			alert.AcknowledgedAt = &now
		}
	case ActionUnacknowledge:
		alert.Acknowledged = false
		alert.AcknowledgedAt = nil
	case ActionDismiss:
		if !alert.Dismissed {
			alert.Dismissed = true
			alert.DismissedAt = &now
		}
	case ActionUndismiss:
		alert.Dismissed = false
		alert.DismissedAt = nil
	case ActionUpdateNotes:
		alert.Notes = notes
	}
	alert.UpdatedAt = now

	if err := uc.alertRepo.Upsert(alert); err != nil {
		return nil, err
	}
	metrics.AlertActions.WithLabelValues(action).Inc()
	return toStockAlertResponse(alert), nil
}

// ListAlerts clasifica todos los productos con su stock total vivo (suma
// sobre bodegas), superpone el seguimiento persistido y devuelve la lista
// filtrada junto con el resumen agregado.
func (uc *AlertUseCase) ListAlerts(ctx context.Context, filters dto.AlertFilters) (*dto.AlertListResponse, error) {
	products, totals, tracked, err := uc.fetchAlertInputs(ctx)
	if err != nil {
		return nil, err
	}

	totalByProduct := make(map[string]int64, len(totals))
	for _, t := range totals {
		totalByProduct[t.ProductID] = t.Total
	}
	trackedByProduct := make(map[string]*entity.StockAlert, len(tracked))
	for _, a := range tracked {
		trackedByProduct[a.ProductID] = a
	}

	var statusFilter *stock.Status
	if filters.Status != "" {
		s, ok := stock.StatusFromLabel(filters.Status)
		if !ok {
			return nil, fmt.Errorf("status %q desconocido: %w", filters.Status, domain.ErrInvalidInput)
		}
		statusFilter = &s
	}

	items := make([]dto.AlertDTO, 0, len(products))
	summary := dto.AlertSummaryDTO{TotalReorderValue: decimal.Zero}

	for _, p := range products {
		total := totalByProduct[p.ID] // 0 si no hay filas de stock
		cls := stock.Classify(total, p.ReorderPoint)
		rec := stock.Recommend(total, p.ReorderPoint, p.UnitCost)

		// El resumen se calcula sobre todos los productos, antes de filtrar
		summary.Total++
		switch cls.Status {
		case stock.StatusOut, stock.StatusCritical:
			summary.Critical++
		case stock.StatusLow:
			summary.Low++
		case stock.StatusAdequate:
			summary.Adequate++
		case stock.StatusOverstocked:
			summary.Overstocked++
		}
		if cls.Severity >= stock.StatusLow.Severity() {
			summary.NeedsAttention++
		}
		if rec != nil {
			summary.TotalReorderValue = summary.TotalReorderValue.Add(rec.EstimatedCost)
		}

		// Ausencia de fila de seguimiento = valor cero
		tracking := trackedByProduct[p.ID]
		if tracking == nil {
			tracking = &entity.StockAlert{ProductID: p.ID}
		}

		if statusFilter != nil && cls.Status != *statusFilter {
			continue
		}
		if filters.Category != "" && !search.Matches(p.Category, filters.Category) {
			continue
		}
		if filters.Acknowledged != nil && tracking.Acknowledged != *filters.Acknowledged {
			continue
		}

		item := dto.AlertDTO{
			ProductID:      p.ID,
			SKU:            p.SKU,
			ProductName:    p.Name,
			Category:       p.Category,
			TotalQuantity:  total,
			ReorderPoint:   p.ReorderPoint,
			Status:         cls.Label,
			Severity:       cls.Severity,
			Acknowledged:   tracking.Acknowledged,
			AcknowledgedAt: tracking.AcknowledgedAt,
			Dismissed:      tracking.Dismissed,
			DismissedAt:    tracking.DismissedAt,
			Notes:          tracking.Notes,
		}
		if rec != nil {
			item.Recommendation = &dto.RecommendationDTO{
				TargetStock:   rec.TargetStock,
				Quantity:      rec.Quantity,
				EstimatedCost: rec.EstimatedCost,
				Urgency:       rec.Urgency,
			}
		}
		items = append(items, item)
	}

	// Mayor severidad primero; a igual severidad, por nombre de producto
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Severity != items[j].Severity {
			return items[i].Severity > items[j].Severity
		}
		return items[i].ProductName < items[j].ProductName
	})

	return &dto.AlertListResponse{Alerts: items, Summary: summary}, nil
}

// fetchAlertInputs lee catálogo, totales de stock y seguimiento en paralelo.
func (uc *AlertUseCase) fetchAlertInputs(ctx context.Context) (
	[]*entity.Product, []repository.ProductTotal, []*entity.StockAlert, error,
) {
	type productsResult struct {
		products []*entity.Product
		err      error
	}
	type totalsResult struct {
		totals []repository.ProductTotal
		err    error
	}
	type trackedResult struct {
		alerts []*entity.StockAlert
		err    error
	}

	productsCh := make(chan productsResult, 1)
	totalsCh := make(chan totalsResult, 1)
	trackedCh := make(chan trackedResult, 1)

	go func() {
		products, err := listAllProducts(uc.productRepo)
		productsCh <- productsResult{products, err}
	}()
	go func() {
		totals, err := uc.stockRepo.TotalsByProduct()
		totalsCh <- totalsResult{totals, err}
	}()
	go func() {
		alerts, err := uc.alertRepo.ListAll()
		trackedCh <- trackedResult{alerts, err}
	}()

	products := <-productsCh
	totals := <-totalsCh
	tracked := <-trackedCh

	if products.err != nil {
		return nil, nil, nil, fmt.Errorf("alertas: catálogo: %w", products.err)
	}
	if totals.err != nil {
		return nil, nil, nil, fmt.Errorf("alertas: totales de stock: %w", totals.err)
	}
	if tracked.err != nil {
		return nil, nil, nil, fmt.Errorf("alertas: seguimiento: %w", tracked.err)
	}
	return products.products, totals.totals, tracked.alerts, nil
}

func isValidAction(action string) bool {
	for _, a := range validActions {
		if a == action {
			return true
		}
	}
	return false
}

func toStockAlertResponse(a *entity.StockAlert) *dto.StockAlertResponse {
	return &dto.StockAlertResponse{
		ID:             a.ID,
		ProductID:      a.ProductID,
		Acknowledged:   a.Acknowledged,
		AcknowledgedAt: a.AcknowledgedAt,
		Dismissed:      a.Dismissed,
		DismissedAt:    a.DismissedAt,
		Notes:          a.Notes,
		UpdatedAt:      a.UpdatedAt,
	}
}
