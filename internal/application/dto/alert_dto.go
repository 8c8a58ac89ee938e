package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AlertActionRequest body para POST /api/alerts/:productID/actions.
type AlertActionRequest struct {
	Action string `json:"action" validate:"required"`
	Notes  string `json:"notes"`
}

// AlertFilters filtros de GET /api/alerts.
type AlertFilters struct {
	Status       string `query:"status"`       // out, critical, low, adequate, overstocked
	Category     string `query:"category"`     // categoría del producto
	Acknowledged *bool  `query:"acknowledged"` // nil = sin filtrar
}

// RecommendationDTO sugerencia de reposición para un producto bajo reorden.
type RecommendationDTO struct {
	TargetStock   int64           `json:"target_stock"`
	Quantity      int64           `json:"quantity"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
	Urgency       string          `json:"urgency"`
}

// AlertDTO una alerta con su clasificación en vivo y estado de seguimiento.
type AlertDTO struct {
	ProductID      string             `json:"product_id"`
	SKU            string             `json:"sku"`
	ProductName    string             `json:"product_name"`
	Category       string             `json:"category,omitempty"`
	TotalQuantity  int64              `json:"total_quantity"`
	ReorderPoint   int64              `json:"reorder_point"`
	Status         string             `json:"status"`
	Severity       int                `json:"severity"`
	Recommendation *RecommendationDTO `json:"recommendation,omitempty"`
	Acknowledged   bool               `json:"acknowledged"`
	AcknowledgedAt *time.Time         `json:"acknowledged_at,omitempty"`
	Dismissed      bool               `json:"dismissed"`
	DismissedAt    *time.Time         `json:"dismissed_at,omitempty"`
	Notes          string             `json:"notes,omitempty"`
}

// AlertSummaryDTO agregados del tablero de alertas.
type AlertSummaryDTO struct {
	Total             int             `json:"total"`
	Critical          int             `json:"critical"` // OUT + CRITICAL
	Low               int             `json:"low"`
	Adequate          int             `json:"adequate"`
	Overstocked       int             `json:"overstocked"`
	NeedsAttention    int             `json:"needs_attention"` // severidad >= 2
	TotalReorderValue decimal.Decimal `json:"total_reorder_value"`
}

// AlertListResponse respuesta de GET /api/alerts.
type AlertListResponse struct {
	Alerts  []AlertDTO      `json:"alerts"`
	Summary AlertSummaryDTO `json:"summary"`
}

// StockAlertResponse salida de una fila de seguimiento de alerta.
type StockAlertResponse struct {
	ID             string     `json:"id"`
	ProductID      string     `json:"product_id"`
	Acknowledged   bool       `json:"acknowledged"`
	AcknowledgedAt *time.Time `json:"acknowledged_at,omitempty"`
	Dismissed      bool       `json:"dismissed"`
	DismissedAt    *time.Time `json:"dismissed_at,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
