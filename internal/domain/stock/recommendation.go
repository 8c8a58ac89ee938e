package stock

import "github.com/shopspring/decimal"

// TargetStockFactor define la política de reposición: el stock objetivo es el
// punto de reorden multiplicado por este factor. Es una regla de negocio fija
// (no un óptimo derivado); cambiarla no debe tocar el clasificador.
const TargetStockFactor = 2

// Urgencias de reposición.
const (
	UrgencyNormal   = "normal"
	UrgencyCritical = "critical"
)

// Recommendation es la sugerencia de reposición para un producto bajo su
// punto de reorden.
type Recommendation struct {
	TargetStock   int64           // ReorderPoint * TargetStockFactor
	Quantity      int64           // TargetStock - stock actual
	EstimatedCost decimal.Decimal // Quantity * costo unitario
	Urgency       string          // critical | normal
}

// Recommend devuelve la sugerencia de reposición, o nil cuando el stock actual
// cubre el punto de reorden (ninguna acción necesaria).
//
// Invariante: currentStock + Quantity == reorderPoint * TargetStockFactor.
func Recommend(currentStock, reorderPoint int64, unitCost decimal.Decimal) *Recommendation {
	if currentStock >= reorderPoint {
		return nil
	}

	target := reorderPoint * TargetStockFactor
	qty := target - currentStock

	urgency := UrgencyNormal
	if decimal.NewFromInt(currentStock).LessThan(decimal.NewFromInt(reorderPoint).Mul(CriticalRatio)) {
		urgency = UrgencyCritical
	}

	return &Recommendation{
		TargetStock:   target,
		Quantity:      qty,
		EstimatedCost: decimal.NewFromInt(qty).Mul(unitCost),
		Urgency:       urgency,
	}
}
