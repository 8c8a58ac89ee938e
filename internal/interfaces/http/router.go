package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/alerts"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	WarehouseUC *usecase.WarehouseUseCase
	LedgerUC    *inventory.LedgerUseCase
	TransferUC  *inventory.TransferUseCase
	AlertUC     *alerts.AlertUseCase
	ReportUC    *alerts.ReportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Warehouses
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	// Stock ledger
	stock := api.Group("/stock")
	stockHandler := NewStockHandler(deps.LedgerUC)
	stock.Get("/", stockHandler.GetQuantity)
	stock.Put("/", stockHandler.SetQuantity)
	stock.Post("/adjust", stockHandler.Adjust)

	// Transfers
	transfers := api.Group("/transfers")
	transferHandler := NewTransferHandler(deps.TransferUC)
	transfers.Post("/", transferHandler.Create)
	transfers.Get("/", transferHandler.List)
	transfers.Delete("/:id", transferHandler.Delete)

	// Alerts. La ruta del reporte va antes que la paramétrica.
	alertsGroup := api.Group("/alerts")
	alertHandler := NewAlertHandler(deps.AlertUC, deps.ReportUC)
	alertsGroup.Get("/replenishment-report", alertHandler.ReplenishmentReport)
	alertsGroup.Get("/", alertHandler.List)
	alertsGroup.Post("/:productID/actions", alertHandler.ApplyAction)
}
