package alerts_test

import (
	"context"
	"sort"

	"github.com/jhoicas/almacen-api/internal/application/alerts"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Fakes en memoria de los puertos que consumen los casos de uso de alertas.

type fakeProductRepo struct {
	products map[string]entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]entity.Product)}
}

func (r *fakeProductRepo) add(p entity.Product) { r.products[p.ID] = p }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if p, ok := r.products[id]; ok {
		cp := p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		cp := p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	// mismo contrato de paginación que el repositorio real
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

// fakeStockRepo solo implementa lo que el tablero de alertas consume; el
// resto del puerto no se invoca desde estos casos de uso.
type fakeStockRepo struct {
	totals map[string]int64
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{totals: make(map[string]int64)}
}

func (r *fakeStockRepo) setTotal(productID string, total int64) {
	r.totals[productID] = total
}

func (r *fakeStockRepo) TotalsByProduct() ([]repository.ProductTotal, error) {
	out := make([]repository.ProductTotal, 0, len(r.totals))
	for id, total := range r.totals {
		out = append(out, repository.ProductTotal{ProductID: id, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}

func (r *fakeStockRepo) Get(productID, warehouseID string) (*entity.Stock, error) {
	return &entity.Stock{ProductID: productID, WarehouseID: warehouseID}, nil
}

func (r *fakeStockRepo) GetForUpdate(productID, warehouseID string) (*entity.Stock, error) {
	return r.Get(productID, warehouseID)
}

func (r *fakeStockRepo) Upsert(*entity.Stock) error { return nil }

func (r *fakeStockRepo) ListByProduct(string) ([]*entity.Stock, error) { return nil, nil }

func (r *fakeStockRepo) ListByWarehouse(string) ([]*entity.Stock, error) { return nil, nil }

func (r *fakeStockRepo) CountByProduct(string) (int, error) { return 0, nil }

func (r *fakeStockRepo) CountByWarehouse(string) (int, error) { return 0, nil }

func (r *fakeStockRepo) DeleteByProduct(string) error { return nil }

func (r *fakeStockRepo) DeleteByWarehouse(string) error { return nil }

func (r *fakeStockRepo) Delete(string, string) error { return nil }

type fakeAlertRepo struct {
	alerts map[string]entity.StockAlert // por productID
}

func newFakeAlertRepo() *fakeAlertRepo {
	return &fakeAlertRepo{alerts: make(map[string]entity.StockAlert)}
}

func (r *fakeAlertRepo) GetByProduct(productID string) (*entity.StockAlert, error) {
	if a, ok := r.alerts[productID]; ok {
		cp := a
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeAlertRepo) Upsert(a *entity.StockAlert) error {
	r.alerts[a.ProductID] = *a
	return nil
}

func (r *fakeAlertRepo) ListAll() ([]*entity.StockAlert, error) {
	var out []*entity.StockAlert
	for _, a := range r.alerts {
		cp := a
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeAlertRepo) DeleteByProduct(productID string) error {
	delete(r.alerts, productID)
	return nil
}

// fakeReportGenerator captura las líneas que recibiría el PDF real.
type fakeReportGenerator struct {
	lines []alerts.ReplenishmentLine
}

func (g *fakeReportGenerator) GenerateReplenishmentPDF(
	_ context.Context, lines []alerts.ReplenishmentLine,
) ([]byte, error) {
	g.lines = lines
	return []byte("%PDF-fake"), nil
}
