package entity

import "time"

// StockAlert registra el ciclo de vida de la alerta de reorden de un producto
// (acknowledged/dismissed/notas). Se crea de forma perezosa la primera vez que
// se actúa sobre la alerta; la ausencia de fila equivale al valor cero
// {Acknowledged: false, Dismissed: false, Notes: ""}.
//
// El estado de stock (OUT/CRITICAL/LOW/...) nunca se guarda aquí: se recalcula
// desde el stock vivo en cada lectura para que no existan severidades
// cacheadas obsoletas.
type StockAlert struct {
	ID             string
	ProductID      string // único
	Acknowledged   bool
	AcknowledgedAt *time.Time
	Dismissed      bool
	DismissedAt    *time.Time
	Notes          string
	UpdatedAt      time.Time
}
