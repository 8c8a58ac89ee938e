package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores de negocio expuestos en /metrics.
var (
	// TransfersCompleted total de traslados entre bodegas completados.
	TransfersCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "almacen",
		Name:      "transfers_completed_total",
		Help:      "Total de traslados de stock completados.",
	})

	// TransfersRejected traslados rechazados, etiquetados por motivo (validation, not_found, insufficient_stock).
	TransfersRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "almacen",
		Name:      "transfers_rejected_total",
		Help:      "Total de traslados rechazados por precondición.",
	}, []string{"reason"})

	// AlertActions acciones aplicadas sobre alertas, etiquetadas por acción.
	AlertActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "almacen",
		Name:      "alert_actions_total",
		Help:      "Total de acciones aplicadas sobre alertas de reorden.",
	}, []string{"action"})

	// StockAdjustments ajustes directos al ledger (set/adjust).
	StockAdjustments = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "almacen",
		Name:      "stock_adjustments_total",
		Help:      "Total de mutaciones directas de stock (set/adjust).",
	})
)
