package alerts

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/domain/stock"
)

// ReportUseCase genera el reporte PDF de reposición sugerida: los productos
// bajo su punto de reorden con la cantidad a pedir, la urgencia y el costo
// estimado del pedido.
type ReportUseCase struct {
	productRepo repository.ProductRepository
	stockRepo   repository.StockRepository
	generator   ReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	generator ReportGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		productRepo: productRepo,
		stockRepo:   stockRepo,
		generator:   generator,
	}
}

// ReplenishmentReport clasifica el stock vivo de cada producto y genera el
// PDF con los que requieren reposición, los más urgentes primero.
func (uc *ReportUseCase) ReplenishmentReport(ctx context.Context) ([]byte, error) {
	products, err := listAllProducts(uc.productRepo)
	if err != nil {
		return nil, fmt.Errorf("reporte: catálogo: %w", err)
	}
	totals, err := uc.stockRepo.TotalsByProduct()
	if err != nil {
		return nil, fmt.Errorf("reporte: totales de stock: %w", err)
	}
	totalByProduct := make(map[string]int64, len(totals))
	for _, t := range totals {
		totalByProduct[t.ProductID] = t.Total
	}

	lines := make([]ReplenishmentLine, 0)
	for _, p := range products {
		total := totalByProduct[p.ID]
		rec := stock.Recommend(total, p.ReorderPoint, p.UnitCost)
		if rec == nil {
			continue
		}
		lines = append(lines, ReplenishmentLine{
			SKU:           p.SKU,
			ProductName:   p.Name,
			CurrentStock:  total,
			ReorderPoint:  p.ReorderPoint,
			SuggestedQty:  rec.Quantity,
			Urgency:       rec.Urgency,
			EstimatedCost: rec.EstimatedCost,
		})
	}

	// Críticos primero; a igual urgencia, mayor déficit relativo primero
	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].Urgency != lines[j].Urgency {
			return lines[i].Urgency == stock.UrgencyCritical
		}
		defI := lines[i].ReorderPoint - lines[i].CurrentStock
		defJ := lines[j].ReorderPoint - lines[j].CurrentStock
		return defI > defJ
	})

	return uc.generator.GenerateReplenishmentPDF(ctx, lines)
}
