package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.StockAlertRepository = (*StockAlertRepo)(nil)

// StockAlertRepo implementación del puerto StockAlertRepository sobre PostgreSQL (usable con pool o tx).
// A lo sumo una fila por producto (constraint UNIQUE sobre product_id).
type StockAlertRepo struct {
	q Querier
}

// NewStockAlertRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockAlertRepository(q Querier) *StockAlertRepo {
	return &StockAlertRepo{q: q}
}

// GetByProduct obtiene la fila de seguimiento de un producto; nil si nunca se
// actuó sobre su alerta.
func (r *StockAlertRepo) GetByProduct(productID string) (*entity.StockAlert, error) {
	query := `
		SELECT id, product_id, acknowledged, acknowledged_at, dismissed, dismissed_at, notes, updated_at
		FROM stock_alerts WHERE product_id = $1`
	var a entity.StockAlert
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&a.ID, &a.ProductID, &a.Acknowledged, &a.AcknowledgedAt,
		&a.Dismissed, &a.DismissedAt, &a.Notes, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock alert: %w", err)
	}
	return &a, nil
}

// Upsert inserta o actualiza la fila de seguimiento del producto.
func (r *StockAlertRepo) Upsert(alert *entity.StockAlert) error {
	query := `
		INSERT INTO stock_alerts (id, product_id, acknowledged, acknowledged_at, dismissed, dismissed_at, notes, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (product_id)
		DO UPDATE SET acknowledged = EXCLUDED.acknowledged,
		              acknowledged_at = EXCLUDED.acknowledged_at,
		              dismissed = EXCLUDED.dismissed,
		              dismissed_at = EXCLUDED.dismissed_at,
		              notes = EXCLUDED.notes,
		              updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		alert.ID, alert.ProductID, alert.Acknowledged, alert.AcknowledgedAt,
		alert.Dismissed, alert.DismissedAt, alert.Notes, alert.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert stock alert: %w", err)
	}
	return nil
}

// ListAll lista todas las filas de seguimiento.
func (r *StockAlertRepo) ListAll() ([]*entity.StockAlert, error) {
	query := `
		SELECT id, product_id, acknowledged, acknowledged_at, dismissed, dismissed_at, notes, updated_at
		FROM stock_alerts`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stock alerts: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockAlert
	for rows.Next() {
		var a entity.StockAlert
		if err := rows.Scan(
			&a.ID, &a.ProductID, &a.Acknowledged, &a.AcknowledgedAt,
			&a.Dismissed, &a.DismissedAt, &a.Notes, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock alert: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// DeleteByProduct elimina la fila de seguimiento de un producto (cascada).
func (r *StockAlertRepo) DeleteByProduct(productID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_alerts WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete stock alert: %w", err)
	}
	return nil
}
