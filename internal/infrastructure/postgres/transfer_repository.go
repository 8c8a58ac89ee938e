package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implementación del puerto TransferRepository sobre PostgreSQL (usable con pool o tx).
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador de persistencia para traslados. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create persiste un traslado completado.
func (r *TransferRepo) Create(transfer *entity.Transfer) error {
	query := `
		INSERT INTO transfers (id, product_id, from_warehouse_id, to_warehouse_id, quantity, notes, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		transfer.ID, transfer.ProductID, transfer.FromWarehouseID, transfer.ToWarehouseID,
		transfer.Quantity, transfer.Notes, transfer.Status, transfer.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

// GetByID obtiene un traslado por ID.
func (r *TransferRepo) GetByID(id string) (*entity.Transfer, error) {
	query := `
		SELECT id, product_id, from_warehouse_id, to_warehouse_id, quantity, notes, status, created_at
		FROM transfers WHERE id = $1`
	var t entity.Transfer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.ProductID, &t.FromWarehouseID, &t.ToWarehouseID,
		&t.Quantity, &t.Notes, &t.Status, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}
	return &t, nil
}

// ListEnriched lista traslados más recientes primero, con producto y bodegas
// para display. Se conservan traslados cuyos productos/bodegas fueron
// eliminados (auditoría): el LEFT JOIN deja esos campos vacíos.
func (r *TransferRepo) ListEnriched(limit, offset int) ([]repository.EnrichedTransfer, error) {
	query := `
		SELECT t.id, t.product_id, t.from_warehouse_id, t.to_warehouse_id,
		       t.quantity, t.notes, t.status, t.created_at,
		       COALESCE(p.sku, ''), COALESCE(p.name, ''),
		       COALESCE(wf.code, ''), COALESCE(wf.name, ''),
		       COALESCE(wt.code, ''), COALESCE(wt.name, '')
		FROM transfers t
		LEFT JOIN products p ON p.id = t.product_id
		LEFT JOIN warehouses wf ON wf.id = t.from_warehouse_id
		LEFT JOIN warehouses wt ON wt.id = t.to_warehouse_id
		ORDER BY t.created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()
	var list []repository.EnrichedTransfer
	for rows.Next() {
		var e repository.EnrichedTransfer
		if err := rows.Scan(
			&e.Transfer.ID, &e.Transfer.ProductID, &e.Transfer.FromWarehouseID, &e.Transfer.ToWarehouseID,
			&e.Transfer.Quantity, &e.Transfer.Notes, &e.Transfer.Status, &e.Transfer.CreatedAt,
			&e.ProductSKU, &e.ProductName,
			&e.FromWarehouseCode, &e.FromWarehouseName,
			&e.ToWarehouseCode, &e.ToWarehouseName,
		); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Delete elimina el registro de auditoría. No toca las filas de stock.
func (r *TransferRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM transfers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transfer: %w", err)
	}
	return nil
}
