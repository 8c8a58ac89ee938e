package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	apphttp "github.com/jhoicas/almacen-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del mapeo error → HTTP del endpoint de traslados, sobre fakes en
// memoria y app.Test de Fiber.
// ──────────────────────────────────────────────────────────────────────────────

const (
	testProductID = "00000000-0000-0000-0000-000000000001"
	testFromWh    = "00000000-0000-0000-0000-000000000002"
	testToWh      = "00000000-0000-0000-0000-000000000003"
)

// memStore y sus repos: lo mínimo que el caso de uso de traslados consume.

type memKey struct{ productID, warehouseID string }

type memStore struct {
	products   map[string]entity.Product
	warehouses map[string]entity.Warehouse
	stock      map[memKey]entity.Stock
	transfers  []entity.Transfer
}

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(p *entity.Product) error { return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	if p, ok := r.s.products[id]; ok {
		cp := p
		return &cp, nil
	}
	return nil, nil
}
func (r *memProductRepo) GetBySKU(string) (*entity.Product, error)     { return nil, nil }
func (r *memProductRepo) Update(*entity.Product) error                 { return nil }
func (r *memProductRepo) List(int, int) ([]*entity.Product, error)     { return nil, nil }
func (r *memProductRepo) Delete(string) error                          { return nil }

type memWarehouseRepo struct{ s *memStore }

func (r *memWarehouseRepo) Create(*entity.Warehouse) error { return nil }
func (r *memWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	if w, ok := r.s.warehouses[id]; ok {
		cp := w
		return &cp, nil
	}
	return nil, nil
}
func (r *memWarehouseRepo) GetByCode(string) (*entity.Warehouse, error)  { return nil, nil }
func (r *memWarehouseRepo) Update(*entity.Warehouse) error               { return nil }
func (r *memWarehouseRepo) List(int, int) ([]*entity.Warehouse, error)   { return nil, nil }
func (r *memWarehouseRepo) Delete(string) error                          { return nil }

type memStockRepo struct{ s *memStore }

func (r *memStockRepo) Get(productID, warehouseID string) (*entity.Stock, error) {
	if st, ok := r.s.stock[memKey{productID, warehouseID}]; ok {
		cp := st
		return &cp, nil
	}
	return &entity.Stock{ProductID: productID, WarehouseID: warehouseID}, nil
}
func (r *memStockRepo) GetForUpdate(productID, warehouseID string) (*entity.Stock, error) {
	return r.Get(productID, warehouseID)
}
func (r *memStockRepo) Upsert(st *entity.Stock) error {
	r.s.stock[memKey{st.ProductID, st.WarehouseID}] = *st
	return nil
}
func (r *memStockRepo) ListByProduct(string) ([]*entity.Stock, error)       { return nil, nil }
func (r *memStockRepo) ListByWarehouse(string) ([]*entity.Stock, error)     { return nil, nil }
func (r *memStockRepo) TotalsByProduct() ([]repository.ProductTotal, error) { return nil, nil }
func (r *memStockRepo) CountByProduct(string) (int, error)                  { return 0, nil }
func (r *memStockRepo) CountByWarehouse(string) (int, error)                { return 0, nil }
func (r *memStockRepo) DeleteByProduct(string) error                        { return nil }
func (r *memStockRepo) DeleteByWarehouse(string) error                      { return nil }
func (r *memStockRepo) Delete(string, string) error                         { return nil }

type memTransferRepo struct{ s *memStore }

func (r *memTransferRepo) Create(t *entity.Transfer) error {
	r.s.transfers = append(r.s.transfers, *t)
	return nil
}
func (r *memTransferRepo) GetByID(string) (*entity.Transfer, error) { return nil, nil }
func (r *memTransferRepo) ListEnriched(int, int) ([]repository.EnrichedTransfer, error) {
	return nil, nil
}
func (r *memTransferRepo) Delete(string) error { return nil }

type memTxRunner struct{ s *memStore }

func (tx *memTxRunner) Run(_ context.Context, fn func(
	repository.StockRepository, repository.TransferRepository,
) error) error {
	// Copia previa para emular rollback
	prev := make(map[memKey]entity.Stock, len(tx.s.stock))
	for k, v := range tx.s.stock {
		prev[k] = v
	}
	prevTransfers := append([]entity.Transfer(nil), tx.s.transfers...)

	err := fn(&memStockRepo{s: tx.s}, &memTransferRepo{s: tx.s})
	if err != nil {
		tx.s.stock = prev
		tx.s.transfers = prevTransfers
	}
	return err
}

// buildTransferApp arma una app Fiber con el endpoint de traslados sobre un
// store poblado con un producto, dos bodegas y stock inicial en la de origen.
func buildTransferApp(originStock int64) (*fiber.App, *memStore) {
	store := &memStore{
		products:   map[string]entity.Product{testProductID: {ID: testProductID, SKU: "TECL-001"}},
		warehouses: map[string]entity.Warehouse{
			testFromWh: {ID: testFromWh, Code: "BOD-CENTRAL"},
			testToWh:   {ID: testToWh, Code: "BOD-NORTE"},
		},
		stock: map[memKey]entity.Stock{},
	}
	if originStock > 0 {
		store.stock[memKey{testProductID, testFromWh}] = entity.Stock{
			ProductID: testProductID, WarehouseID: testFromWh, Quantity: originStock,
		}
	}

	uc := inventory.NewTransferUseCase(
		&memTxRunner{s: store},
		&memProductRepo{s: store},
		&memWarehouseRepo{s: store},
		&memTransferRepo{s: store},
	)
	app := fiber.New()
	app.Post("/api/transfers", apphttp.NewTransferHandler(uc).Create)
	return app, store
}

func postTransfer(t *testing.T, app *fiber.App, body dto.CreateTransferRequest) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/transfers", bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func validTransferBody() dto.CreateTransferRequest {
	return dto.CreateTransferRequest{
		ProductID:       testProductID,
		FromWarehouseID: testFromWh,
		ToWarehouseID:   testToWh,
		Quantity:        10,
	}
}

// ── Casos ─────────────────────────────────────────────────────────────────────

func TestTransferEndpoint_Creado(t *testing.T) {
	app, store := buildTransferApp(100)

	resp := postTransfer(t, app, validTransferBody())
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out dto.TransferResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "completed", out.Status)
	assert.Equal(t, int64(90), store.stock[memKey{testProductID, testFromWh}].Quantity)
}

func TestTransferEndpoint_StockInsuficiente(t *testing.T) {
	app, store := buildTransferApp(5)

	resp := postTransfer(t, app, validTransferBody())
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	out := decodeError(t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", out.Code)
	require.NotNil(t, out.Available, "la respuesta debe incluir la cantidad disponible")
	assert.Equal(t, int64(5), *out.Available)

	assert.Equal(t, int64(5), store.stock[memKey{testProductID, testFromWh}].Quantity,
		"el rechazo no toca el stock")
	assert.Empty(t, store.transfers)
}

func TestTransferEndpoint_MismaBodega(t *testing.T) {
	app, _ := buildTransferApp(100)

	body := validTransferBody()
	body.ToWarehouseID = body.FromWarehouseID

	resp := postTransfer(t, app, body)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeError(t, resp).Code)
}

func TestTransferEndpoint_ProductoInexistente(t *testing.T) {
	app, _ := buildTransferApp(100)

	body := validTransferBody()
	body.ProductID = "no-existe"

	resp := postTransfer(t, app, body)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Code)
}

func TestTransferEndpoint_CuerpoInvalido(t *testing.T) {
	app, _ := buildTransferApp(100)

	req := httptest.NewRequest(http.MethodPost, "/api/transfers", bytes.NewReader([]byte("{no-json")))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Code)
}
