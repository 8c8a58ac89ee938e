package dto

import "time"

// CreateTransferRequest body para POST /api/transfers.
type CreateTransferRequest struct {
	ProductID       string `json:"product_id" validate:"required"`
	FromWarehouseID string `json:"from_warehouse_id" validate:"required"`
	ToWarehouseID   string `json:"to_warehouse_id" validate:"required"`
	Quantity        int64  `json:"quantity" validate:"required,gt=0"`
	Notes           string `json:"notes" validate:"max=500"`
}

// TransferResponse salida de un traslado.
type TransferResponse struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"product_id"`
	FromWarehouseID string    `json:"from_warehouse_id"`
	ToWarehouseID   string    `json:"to_warehouse_id"`
	Quantity        int64     `json:"quantity"`
	Notes           string    `json:"notes,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// EnrichedTransferResponse traslado con producto y bodegas para display.
type EnrichedTransferResponse struct {
	TransferResponse
	ProductSKU        string `json:"product_sku"`
	ProductName       string `json:"product_name"`
	FromWarehouseCode string `json:"from_warehouse_code"`
	FromWarehouseName string `json:"from_warehouse_name"`
	ToWarehouseCode   string `json:"to_warehouse_code"`
	ToWarehouseName   string `json:"to_warehouse_name"`
}

// TransferListResponse lista de traslados, más recientes primero.
type TransferListResponse struct {
	Items []EnrichedTransferResponse `json:"items"`
	Page  PageResponse               `json:"page"`
}
