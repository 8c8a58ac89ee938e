package usecase_test

import (
	"context"
	"sort"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Fakes en memoria para los casos de uso CRUD y su borrado en cascada.

type stockKey struct{ productID, warehouseID string }

type catalogStore struct {
	products   map[string]entity.Product
	warehouses map[string]entity.Warehouse
	stock      map[stockKey]entity.Stock
	alerts     map[string]entity.StockAlert
}

func newCatalogStore() *catalogStore {
	return &catalogStore{
		products:   make(map[string]entity.Product),
		warehouses: make(map[string]entity.Warehouse),
		stock:      make(map[stockKey]entity.Stock),
		alerts:     make(map[string]entity.StockAlert),
	}
}

// ── product ───────────────────────────────────────────────────────────────────

type fakeProductRepo struct{ store *catalogStore }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.store.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if p, ok := r.store.products[id]; ok {
		cp := p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.store.products {
		if p.SKU == sku {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.store.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.store.products {
		cp := p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
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
	delete(r.store.products, id)
	return nil
}

// ── warehouse ─────────────────────────────────────────────────────────────────

type fakeWarehouseRepo struct{ store *catalogStore }

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error {
	r.store.warehouses[w.ID] = *w
	return nil
}

func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	if w, ok := r.store.warehouses[id]; ok {
		cp := w
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeWarehouseRepo) GetByCode(code string) (*entity.Warehouse, error) {
	for _, w := range r.store.warehouses {
		if w.Code == code {
			cp := w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeWarehouseRepo) Update(w *entity.Warehouse) error {
	r.store.warehouses[w.ID] = *w
	return nil
}

func (r *fakeWarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.store.warehouses {
		cp := w
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeWarehouseRepo) Delete(id string) error {
	delete(r.store.warehouses, id)
	return nil
}

// ── stock ─────────────────────────────────────────────────────────────────────

type fakeStockRepo struct{ store *catalogStore }

func (r *fakeStockRepo) setStock(productID, warehouseID string, qty int64) {
	r.store.stock[stockKey{productID, warehouseID}] = entity.Stock{
		ProductID: productID, WarehouseID: warehouseID, Quantity: qty,
	}
}

func (r *fakeStockRepo) Get(productID, warehouseID string) (*entity.Stock, error) {
	if s, ok := r.store.stock[stockKey{productID, warehouseID}]; ok {
		cp := s
		return &cp, nil
	}
	return &entity.Stock{ProductID: productID, WarehouseID: warehouseID}, nil
}

func (r *fakeStockRepo) GetForUpdate(productID, warehouseID string) (*entity.Stock, error) {
	return r.Get(productID, warehouseID)
}

func (r *fakeStockRepo) Upsert(s *entity.Stock) error {
	r.store.stock[stockKey{s.ProductID, s.WarehouseID}] = *s
	return nil
}

func (r *fakeStockRepo) ListByProduct(productID string) ([]*entity.Stock, error) {
	var out []*entity.Stock
	for k, s := range r.store.stock {
		if k.productID == productID {
			cp := s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeStockRepo) ListByWarehouse(warehouseID string) ([]*entity.Stock, error) {
	var out []*entity.Stock
	for k, s := range r.store.stock {
		if k.warehouseID == warehouseID {
			cp := s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeStockRepo) TotalsByProduct() ([]repository.ProductTotal, error) {
	totals := make(map[string]int64)
	for k, s := range r.store.stock {
		totals[k.productID] += s.Quantity
	}
	out := make([]repository.ProductTotal, 0, len(totals))
	for id, total := range totals {
		out = append(out, repository.ProductTotal{ProductID: id, Total: total})
	}
	return out, nil
}

func (r *fakeStockRepo) CountByProduct(productID string) (int, error) {
	n := 0
	for k := range r.store.stock {
		if k.productID == productID {
			n++
		}
	}
	return n, nil
}

func (r *fakeStockRepo) CountByWarehouse(warehouseID string) (int, error) {
	n := 0
	for k := range r.store.stock {
		if k.warehouseID == warehouseID {
			n++
		}
	}
	return n, nil
}

func (r *fakeStockRepo) DeleteByProduct(productID string) error {
	for k := range r.store.stock {
		if k.productID == productID {
			delete(r.store.stock, k)
		}
	}
	return nil
}

func (r *fakeStockRepo) DeleteByWarehouse(warehouseID string) error {
	for k := range r.store.stock {
		if k.warehouseID == warehouseID {
			delete(r.store.stock, k)
		}
	}
	return nil
}

func (r *fakeStockRepo) Delete(productID, warehouseID string) error {
	delete(r.store.stock, stockKey{productID, warehouseID})
	return nil
}

// ── alert ─────────────────────────────────────────────────────────────────────

type fakeAlertRepo struct{ store *catalogStore }

func (r *fakeAlertRepo) GetByProduct(productID string) (*entity.StockAlert, error) {
	if a, ok := r.store.alerts[productID]; ok {
		cp := a
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeAlertRepo) Upsert(a *entity.StockAlert) error {
	r.store.alerts[a.ProductID] = *a
	return nil
}

func (r *fakeAlertRepo) ListAll() ([]*entity.StockAlert, error) {
	var out []*entity.StockAlert
	for _, a := range r.store.alerts {
		cp := a
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeAlertRepo) DeleteByProduct(productID string) error {
	delete(r.store.alerts, productID)
	return nil
}

// ── cascade runner ────────────────────────────────────────────────────────────

type fakeCascadeRunner struct{ store *catalogStore }

func (tx *fakeCascadeRunner) RunCascade(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	stockRepo repository.StockRepository,
	alertRepo repository.StockAlertRepository,
) error) error {
	return fn(
		&fakeProductRepo{store: tx.store},
		&fakeWarehouseRepo{store: tx.store},
		&fakeStockRepo{store: tx.store},
		&fakeAlertRepo{store: tx.store},
	)
}
