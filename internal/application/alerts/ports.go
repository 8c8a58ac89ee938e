package alerts

import (
	"context"

	"github.com/shopspring/decimal"
)

// ReplenishmentLine una línea del reporte de reposición sugerida.
type ReplenishmentLine struct {
	SKU           string
	ProductName   string
	CurrentStock  int64
	ReorderPoint  int64
	SuggestedQty  int64
	Urgency       string
	EstimatedCost decimal.Decimal
}

// ReportGenerator genera el documento del reporte de reposición.
type ReportGenerator interface {
	GenerateReplenishmentPDF(ctx context.Context, lines []ReplenishmentLine) ([]byte, error)
}
