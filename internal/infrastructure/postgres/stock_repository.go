package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
// La unicidad por (product_id, warehouse_id) la garantiza la primary key.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el stock actual de un producto en una bodega. Si la fila no
// existe devuelve cantidad 0 (ausencia significa cero stock, no error).
func (r *StockRepo) Get(productID, warehouseID string) (*entity.Stock, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, updated_at
		FROM stock WHERE product_id = $1 AND warehouse_id = $2`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&s.ProductID, &s.WarehouseID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ProductID: productID, WarehouseID: warehouseID}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene el stock y bloquea la fila para update (SELECT FOR UPDATE).
// Si la fila no existe, primero la materializa con cantidad 0: un SELECT FOR
// UPDATE sobre una fila inexistente no bloquea nada, y dos transacciones
// concurrentes escribiendo sobre el mismo par (producto, bodega) recién creado
// se pisarían la cantidad. El INSERT especulativo serializa a los escritores;
// si la transacción termina en rollback, la fila materializada desaparece con
// ella.
func (r *StockRepo) GetForUpdate(productID, warehouseID string) (*entity.Stock, error) {
	materialize := `
		INSERT INTO stock (product_id, warehouse_id, quantity, updated_at)
		VALUES ($1, $2, 0, now())
		ON CONFLICT (product_id, warehouse_id) DO NOTHING`
	if _, err := r.q.Exec(context.Background(), materialize, productID, warehouseID); err != nil {
		return nil, fmt.Errorf("materialize stock row: %w", err)
	}

	query := `
		SELECT product_id, warehouse_id, quantity, updated_at
		FROM stock WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&s.ProductID, &s.WarehouseID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ProductID: productID, WarehouseID: warehouseID}, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la cantidad en stock (por producto y bodega).
func (r *StockRepo) Upsert(stock *entity.Stock) error {
	query := `
		INSERT INTO stock (product_id, warehouse_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, stock.ProductID, stock.WarehouseID, stock.Quantity)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// ListByProduct lista las filas de stock de un producto en todas las bodegas.
func (r *StockRepo) ListByProduct(productID string) ([]*entity.Stock, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, updated_at
		FROM stock WHERE product_id = $1 ORDER BY warehouse_id`
	return r.list(query, productID)
}

// ListByWarehouse lista las filas de stock de una bodega.
func (r *StockRepo) ListByWarehouse(warehouseID string) ([]*entity.Stock, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, updated_at
		FROM stock WHERE warehouse_id = $1 ORDER BY product_id`
	return r.list(query, warehouseID)
}

func (r *StockRepo) list(query string, arg any) ([]*entity.Stock, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ProductID, &s.WarehouseID, &s.Quantity, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// TotalsByProduct devuelve la suma de stock por producto sobre todas las bodegas.
func (r *StockRepo) TotalsByProduct() ([]repository.ProductTotal, error) {
	query := `
		SELECT product_id, COALESCE(SUM(quantity), 0)
		FROM stock GROUP BY product_id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("stock totals: %w", err)
	}
	defer rows.Close()
	var totals []repository.ProductTotal
	for rows.Next() {
		var t repository.ProductTotal
		if err := rows.Scan(&t.ProductID, &t.Total); err != nil {
			return nil, fmt.Errorf("scan stock total: %w", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// CountByProduct cuenta las filas de stock existentes de un producto.
func (r *StockRepo) CountByProduct(productID string) (int, error) {
	return r.count(`SELECT COUNT(*) FROM stock WHERE product_id = $1`, productID)
}

// CountByWarehouse cuenta las filas de stock existentes de una bodega.
func (r *StockRepo) CountByWarehouse(warehouseID string) (int, error) {
	return r.count(`SELECT COUNT(*) FROM stock WHERE warehouse_id = $1`, warehouseID)
}

func (r *StockRepo) count(query string, arg any) (int, error) {
	var n int
	if err := r.q.QueryRow(context.Background(), query, arg).Scan(&n); err != nil {
		return 0, fmt.Errorf("count stock: %w", err)
	}
	return n, nil
}

// DeleteByProduct elimina todas las filas de stock de un producto (cascada).
func (r *StockRepo) DeleteByProduct(productID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete stock by product: %w", err)
	}
	return nil
}

// DeleteByWarehouse elimina todas las filas de stock de una bodega (cascada).
func (r *StockRepo) DeleteByWarehouse(warehouseID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock WHERE warehouse_id = $1`, warehouseID)
	if err != nil {
		return fmt.Errorf("delete stock by warehouse: %w", err)
	}
	return nil
}

// Delete elimina una fila de stock puntual.
func (r *StockRepo) Delete(productID, warehouseID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM stock WHERE product_id = $1 AND warehouse_id = $2`, productID, warehouseID)
	if err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	return nil
}
