package inventory_test

import (
	"context"
	"sort"

	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. El fakeTxRunner emula el
// contrato transaccional real: toma una copia del estado antes de ejecutar la
// función y lo restaura completo si esta falla (rollback).
// ──────────────────────────────────────────────────────────────────────────────

type stockKey struct{ productID, warehouseID string }

// fakeStore es el estado compartido por todos los fakes de un test.
// lockOrder registra las bodegas en el orden en que se pidió su bloqueo
// (GetForUpdate); es instrumentación del test y el rollback no lo borra.
type fakeStore struct {
	products   map[string]entity.Product
	warehouses map[string]entity.Warehouse
	stock      map[stockKey]entity.Stock
	transfers  []entity.Transfer
	lockOrder  []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products:   make(map[string]entity.Product),
		warehouses: make(map[string]entity.Warehouse),
		stock:      make(map[stockKey]entity.Stock),
	}
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.warehouses {
		c.warehouses[k] = v
	}
	for k, v := range s.stock {
		c.stock[k] = v
	}
	c.transfers = append([]entity.Transfer(nil), s.transfers...)
	return c
}

func (s *fakeStore) restore(from *fakeStore) {
	s.products = from.products
	s.warehouses = from.warehouses
	s.stock = from.stock
	s.transfers = from.transfers
}

func (s *fakeStore) addProduct(p entity.Product) { s.products[p.ID] = p }

func (s *fakeStore) addWarehouse(w entity.Warehouse) { s.warehouses[w.ID] = w }

func (s *fakeStore) setStock(productID, warehouseID string, qty int64) {
	s.stock[stockKey{productID, warehouseID}] = entity.Stock{
		ProductID: productID, WarehouseID: warehouseID, Quantity: qty,
	}
}

func (s *fakeStore) quantity(productID, warehouseID string) int64 {
	return s.stock[stockKey{productID, warehouseID}].Quantity
}

// totalQuantity suma el stock del producto sobre todas las bodegas.
func (s *fakeStore) totalQuantity(productID string) int64 {
	var total int64
	for k, v := range s.stock {
		if k.productID == productID {
			total += v.Quantity
		}
	}
	return total
}

// ── fakeProductRepo ───────────────────────────────────────────────────────────

type fakeProductRepo struct{ store *fakeStore }

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
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.store.products, id)
	return nil
}

// ── fakeWarehouseRepo ─────────────────────────────────────────────────────────

type fakeWarehouseRepo struct{ store *fakeStore }

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
	return out, nil
}

func (r *fakeWarehouseRepo) Delete(id string) error {
	delete(r.store.warehouses, id)
	return nil
}

// ── fakeStockRepo ─────────────────────────────────────────────────────────────

type fakeStockRepo struct{ store *fakeStore }

func (r *fakeStockRepo) Get(productID, warehouseID string) (*entity.Stock, error) {
	if s, ok := r.store.stock[stockKey{productID, warehouseID}]; ok {
		cp := s
		return &cp, nil
	}
	// ausencia significa cero stock
	return &entity.Stock{ProductID: productID, WarehouseID: warehouseID}, nil
}

func (r *fakeStockRepo) GetForUpdate(productID, warehouseID string) (*entity.Stock, error) {
	r.store.lockOrder = append(r.store.lockOrder, warehouseID)
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
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
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

// ── fakeTransferRepo ──────────────────────────────────────────────────────────

type fakeTransferRepo struct{ store *fakeStore }

func (r *fakeTransferRepo) Create(t *entity.Transfer) error {
	r.store.transfers = append(r.store.transfers, *t)
	return nil
}

func (r *fakeTransferRepo) GetByID(id string) (*entity.Transfer, error) {
	for _, t := range r.store.transfers {
		if t.ID == id {
			cp := t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeTransferRepo) ListEnriched(limit, offset int) ([]repository.EnrichedTransfer, error) {
	out := make([]repository.EnrichedTransfer, 0, len(r.store.transfers))
	// más recientes primero
	for i := len(r.store.transfers) - 1; i >= 0; i-- {
		t := r.store.transfers[i]
		e := repository.EnrichedTransfer{Transfer: t}
		if p, ok := r.store.products[t.ProductID]; ok {
			e.ProductSKU, e.ProductName = p.SKU, p.Name
		}
		if w, ok := r.store.warehouses[t.FromWarehouseID]; ok {
			e.FromWarehouseCode, e.FromWarehouseName = w.Code, w.Name
		}
		if w, ok := r.store.warehouses[t.ToWarehouseID]; ok {
			e.ToWarehouseCode, e.ToWarehouseName = w.Code, w.Name
		}
		out = append(out, e)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeTransferRepo) Delete(id string) error {
	for i, t := range r.store.transfers {
		if t.ID == id {
			r.store.transfers = append(r.store.transfers[:i], r.store.transfers[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── fakeTxRunner ──────────────────────────────────────────────────────────────

// fakeTxRunner emula Commit/Rollback: si fn falla, restaura el estado previo.
type fakeTxRunner struct{ store *fakeStore }

func (tx *fakeTxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	transferRepo repository.TransferRepository,
) error) error {
	snapshot := tx.store.clone()
	err := fn(&fakeStockRepo{store: tx.store}, &fakeTransferRepo{store: tx.store})
	if err != nil {
		tx.store.restore(snapshot)
	}
	return err
}

// ── fixture ───────────────────────────────────────────────────────────────────

// fixture arma un caso de uso de traslados y uno de ledger sobre el mismo
// estado en memoria.
type fixture struct {
	store      *fakeStore
	transferUC *inventory.TransferUseCase
	ledgerUC   *inventory.LedgerUseCase
}

func newFixture() *fixture {
	store := newFakeStore()
	txRunner := &fakeTxRunner{store: store}
	productRepo := &fakeProductRepo{store: store}
	warehouseRepo := &fakeWarehouseRepo{store: store}
	stockRepo := &fakeStockRepo{store: store}
	transferRepo := &fakeTransferRepo{store: store}

	return &fixture{
		store:      store,
		transferUC: inventory.NewTransferUseCase(txRunner, productRepo, warehouseRepo, transferRepo),
		ledgerUC:   inventory.NewLedgerUseCase(txRunner, stockRepo, productRepo, warehouseRepo),
	}
}
