// Package stock contiene los servicios de dominio puros del inventario:
// la clasificación de estado de stock y la recomendación de reposición.
// Ninguna función de este paquete hace I/O ni guarda estado.
package stock

import "github.com/shopspring/decimal"

// Umbrales de clasificación, únicos en todo el sistema.
//
// CriticalRatio es el valor usado por la clasificación en runtime (0.5): por
// debajo de la mitad del punto de reorden el producto es CRITICAL. El mismo
// umbral decide la urgencia de la recomendación de reposición.
//
// OverstockRatio es coherente con la política de reposición al doble del punto
// de reorden: más del doble del punto de reorden es sobre-stock.
var (
	CriticalRatio  = decimal.NewFromFloat(0.5)
	OverstockRatio = decimal.NewFromInt(2)
)

// Status es el estado de stock de un producto. Es un enum cerrado cuyo orden
// define la severidad: el valor numérico del variant ES la severidad, de modo
// que ambos no pueden divergir.
type Status int

const (
	StatusOverstocked Status = iota // severidad 0
	StatusAdequate                  // severidad 1
	StatusLow                       // severidad 2
	StatusCritical                  // severidad 3
	StatusOut                       // severidad 4
)

// Severity devuelve la prioridad del estado (0 = menor, 4 = mayor).
func (s Status) Severity() int { return int(s) }

// String devuelve la etiqueta del estado para API y logs.
func (s Status) String() string {
	switch s {
	case StatusOverstocked:
		return "overstocked"
	case StatusAdequate:
		return "adequate"
	case StatusLow:
		return "low"
	case StatusCritical:
		return "critical"
	case StatusOut:
		return "out"
	}
	return "unknown"
}

// StatusFromLabel devuelve el Status para una etiqueta ("out", "low", ...).
// El bool indica si la etiqueta es válida.
func StatusFromLabel(label string) (Status, bool) {
	switch label {
	case "overstocked":
		return StatusOverstocked, true
	case "adequate":
		return StatusAdequate, true
	case "low":
		return StatusLow, true
	case "critical":
		return StatusCritical, true
	case "out":
		return StatusOut, true
	}
	return 0, false
}

// Classification es el resultado de clasificar (cantidad, punto de reorden).
type Classification struct {
	Status   Status
	Severity int
	Label    string
}

// Classify clasifica el stock de un producto contra su punto de reorden.
// Función pura y total: definida para todo quantity >= 0, reorderPoint >= 0,
// siempre el mismo resultado para las mismas entradas.
//
// reorderPoint == 0 es un caso especial: el ratio quantity/reorderPoint no
// está definido, y un punto de reorden cero significa "nunca reordenar", así
// que quantity > 0 es ADEQUATE y quantity == 0 es OUT.
func Classify(quantity, reorderPoint int64) Classification {
	return newClassification(classifyStatus(quantity, reorderPoint))
}

func classifyStatus(quantity, reorderPoint int64) Status {
	if quantity <= 0 {
		return StatusOut
	}
	if reorderPoint <= 0 {
		return StatusAdequate
	}

	ratio := decimal.NewFromInt(quantity).Div(decimal.NewFromInt(reorderPoint))
	switch {
	case ratio.LessThan(CriticalRatio):
		return StatusCritical
	case ratio.LessThan(decimal.NewFromInt(1)):
		return StatusLow
	case ratio.GreaterThan(OverstockRatio):
		return StatusOverstocked
	default:
		return StatusAdequate
	}
}

func newClassification(s Status) Classification {
	return Classification{Status: s, Severity: s.Severity(), Label: s.String()}
}
