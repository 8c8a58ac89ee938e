package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// StockHandler maneja las peticiones HTTP del ledger de stock.
type StockHandler struct {
	uc *inventory.LedgerUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.LedgerUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// GetQuantity godoc
// @Summary      Consultar cantidad en una bodega
// @Description  Devuelve 0 para pares (producto, bodega) sin fila de stock.
// @Tags         stock
// @Produce      json
// @Param        product_id    query  string  true  "ID del producto"
// @Param        warehouse_id  query  string  true  "ID de la bodega"
// @Success      200  {object}  dto.StockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) GetQuantity(c *fiber.Ctx) error {
	productID := c.Query("product_id")
	warehouseID := c.Query("warehouse_id")
	if productID == "" || warehouseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y warehouse_id son requeridos"})
	}
	qty, err := h.uc.GetQuantity(c.Context(), productID, warehouseID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.StockResponse{ProductID: productID, WarehouseID: warehouseID, Quantity: qty})
}

// SetQuantity godoc
// @Summary      Fijar cantidad en una bodega
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetStockRequest  true  "Cantidad absoluta (≥ 0)"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock [put]
func (h *StockHandler) SetQuantity(c *fiber.Ctx) error {
	var in dto.SetStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SetQuantity(c.Context(), in.ProductID, in.WarehouseID, in.Quantity); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidQuantity), errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(dto.StockResponse{ProductID: in.ProductID, WarehouseID: in.WarehouseID, Quantity: in.Quantity})
}

// Adjust godoc
// @Summary      Ajustar cantidad por delta
// @Description  Un delta que dejaría la cantidad negativa se rechaza completo.
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "Delta (positivo o negativo)"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/adjust [post]
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	qty, err := h.uc.Adjust(c.Context(), in.ProductID, in.WarehouseID, in.Delta)
	if err != nil {
		var insufficient *domain.InsufficientStockError
		switch {
		case errors.As(err, &insufficient):
			available := insufficient.Available
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code:      "INSUFFICIENT_STOCK",
				Message:   err.Error(),
				Available: &available,
			})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(dto.StockResponse{ProductID: in.ProductID, WarehouseID: in.WarehouseID, Quantity: qty})
}
