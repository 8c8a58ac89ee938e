// seed puebla la base de datos con un catálogo de demostración: bodegas,
// productos con puntos de reorden variados y stock inicial repartido, de modo
// que /api/alerts muestre los cinco estados desde el primer arranque.
//
// Uso: go run ./cmd/seed
// Idempotente: los SKU y códigos ya existentes se omiten.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/infrastructure/postgres"
	"github.com/jhoicas/almacen-api/pkg/config"
)

type seedProduct struct {
	sku          string
	name         string
	category     string
	unitCost     decimal.Decimal
	reorderPoint int64
	// cantidades por código de bodega
	stock map[string]int64
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}
	if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		fail("migraciones: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo, stockRepo, txRunner)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, stockRepo, txRunner)
	ledgerUC := inventory.NewLedgerUseCase(txRunner, stockRepo, productRepo, warehouseRepo)

	warehouses := []dto.CreateWarehouseRequest{
		{Code: "BOD-CENTRAL", Name: "Bodega Central", Location: "Bogotá"},
		{Code: "BOD-NORTE", Name: "Bodega Norte", Location: "Medellín"},
		{Code: "BOD-COSTA", Name: "Bodega Costa", Location: "Barranquilla"},
	}

	// Cantidades elegidas contra el punto de reorden para cubrir los cinco
	// estados: agotado, crítico, bajo, adecuado y sobrestock.
	products := []seedProduct{
		{
			sku: "TECL-001", name: "Teclado mecánico", category: "Periféricos",
			unitCost: decimal.NewFromInt(185000), reorderPoint: 20,
			stock: map[string]int64{"BOD-CENTRAL": 0, "BOD-NORTE": 0},
		},
		{
			sku: "MOUS-002", name: "Mouse inalámbrico", category: "Periféricos",
			unitCost: decimal.NewFromInt(95000), reorderPoint: 30,
			stock: map[string]int64{"BOD-CENTRAL": 8, "BOD-NORTE": 4},
		},
		{
			sku: "MONI-003", name: "Monitor 27\"", category: "Pantallas",
			unitCost: decimal.NewFromInt(1250000), reorderPoint: 10,
			stock: map[string]int64{"BOD-CENTRAL": 6, "BOD-COSTA": 2},
		},
		{
			sku: "CABL-004", name: "Cable HDMI 2m", category: "Cables",
			unitCost: decimal.NewFromInt(28000), reorderPoint: 50,
			stock: map[string]int64{"BOD-CENTRAL": 60, "BOD-NORTE": 25},
		},
		{
			sku: "PAPL-005", name: "Resma papel carta", category: "Papelería",
			unitCost: decimal.NewFromInt(18500), reorderPoint: 40,
			stock: map[string]int64{"BOD-CENTRAL": 120, "BOD-NORTE": 80, "BOD-COSTA": 45},
		},
		{
			sku: "SILL-006", name: "Silla ergonómica", category: "Mobiliario",
			unitCost: decimal.NewFromInt(890000), reorderPoint: 0,
			stock: map[string]int64{"BOD-CENTRAL": 15},
		},
	}

	warehouseIDs := make(map[string]string, len(warehouses))
	for _, w := range warehouses {
		out, err := warehouseUC.Create(w)
		if err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				existing, getErr := warehouseRepo.GetByCode(w.Code)
				if getErr != nil || existing == nil {
					fail("bodega %s existente pero no recuperable: %v", w.Code, getErr)
				}
				warehouseIDs[w.Code] = existing.ID
				fmt.Printf("bodega %s ya existe, omitida\n", w.Code)
				continue
			}
			fail("crear bodega %s: %v", w.Code, err)
		}
		warehouseIDs[w.Code] = out.ID
		fmt.Printf("bodega %s creada\n", w.Code)
	}

	for _, p := range products {
		out, err := productUC.Create(dto.CreateProductRequest{
			SKU:          p.sku,
			Name:         p.name,
			Category:     p.category,
			UnitCost:     p.unitCost,
			ReorderPoint: p.reorderPoint,
		})
		if err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				fmt.Printf("producto %s ya existe, omitido\n", p.sku)
				continue
			}
			fail("crear producto %s: %v", p.sku, err)
		}
		for code, qty := range p.stock {
			warehouseID, ok := warehouseIDs[code]
			if !ok {
				fail("producto %s referencia bodega desconocida %s", p.sku, code)
			}
			if err := ledgerUC.SetQuantity(ctx, out.ID, warehouseID, qty); err != nil {
				fail("stock inicial de %s en %s: %v", p.sku, code, err)
			}
		}
		fmt.Printf("producto %s creado con stock inicial\n", p.sku)
	}

	fmt.Println("seed completado")
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
