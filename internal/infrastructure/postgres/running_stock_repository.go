package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastellr/almacen-api/internal/domain/entity"
	"github.com/jcastellr/almacen-api/internal/domain/repository"
)

var _ repository.RunningStockRepository = (*RunningStockRepo)(nil)

// RunningStockRepo implementación de RunningStockRepository sobre PostgreSQL.
// Una fila por artículo (item_id único); Save hace upsert porque la fila se
// crea perezosamente en la primera mutación de libro y nunca se borra.
type RunningStockRepo struct {
	q Querier
}

// NewRunningStockRepository construye el adaptador del stock corriente.
func NewRunningStockRepository(q Querier) *RunningStockRepo {
	return &RunningStockRepo{q: q}
}

const runningStockColumns = `id, item_id, stock_quantity, out_quantity, adjustment_quantity, remaining_quantity, status, cost, created_at, updated_at`

// GetByItem devuelve la fila del artículo o nil si aún no existe.
func (r *RunningStockRepo) GetByItem(itemID int64) (*entity.RunningStock, error) {
	return r.getByItem(itemID, "")
}

// GetByItemForUpdate bloquea la fila del artículo (SELECT FOR UPDATE); usar dentro de una tx.
func (r *RunningStockRepo) GetByItemForUpdate(itemID int64) (*entity.RunningStock, error) {
	return r.getByItem(itemID, " FOR UPDATE")
}

func (r *RunningStockRepo) getByItem(itemID int64, suffix string) (*entity.RunningStock, error) {
	query := `SELECT ` + runningStockColumns + ` FROM running_stock WHERE item_id = $1` + suffix
	var rs entity.RunningStock
	err := r.q.QueryRow(context.Background(), query, itemID).Scan(
		&rs.ID, &rs.ItemID, &rs.StockQuantity, &rs.OutQuantity, &rs.AdjustmentQuantity,
		&rs.RemainingQuantity, &rs.Status, &rs.Cost, &rs.CreatedAt, &rs.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get running stock: %w", err)
	}
	return &rs, nil
}

// Save inserta o actualiza la fila del artículo (keyed por item_id).
func (r *RunningStockRepo) Save(rs *entity.RunningStock) (*entity.RunningStock, error) {
	query := `
		INSERT INTO running_stock (item_id, stock_quantity, out_quantity, adjustment_quantity, remaining_quantity, status, cost, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (item_id) DO UPDATE SET
			stock_quantity = EXCLUDED.stock_quantity,
			out_quantity = EXCLUDED.out_quantity,
			adjustment_quantity = EXCLUDED.adjustment_quantity,
			remaining_quantity = EXCLUDED.remaining_quantity,
			status = EXCLUDED.status,
			cost = EXCLUDED.cost,
			updated_at = EXCLUDED.updated_at
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		rs.ItemID, rs.StockQuantity, rs.OutQuantity, rs.AdjustmentQuantity,
		rs.RemainingQuantity, rs.Status, rs.Cost, rs.CreatedAt, rs.UpdatedAt,
	).Scan(&rs.ID)
	if err != nil {
		return nil, fmt.Errorf("save running stock: %w", err)
	}
	return rs, nil
}

// List devuelve el stock corriente de todos los artículos, más recientes primero.
func (r *RunningStockRepo) List() ([]entity.RunningStock, error) {
	query := `SELECT ` + runningStockColumns + ` FROM running_stock ORDER BY id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list running stock: %w", err)
	}
	defer rows.Close()

	var out []entity.RunningStock
	for rows.Next() {
		var rs entity.RunningStock
		if err := rows.Scan(
			&rs.ID, &rs.ItemID, &rs.StockQuantity, &rs.OutQuantity, &rs.AdjustmentQuantity,
			&rs.RemainingQuantity, &rs.Status, &rs.Cost, &rs.CreatedAt, &rs.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan running stock: %w", err)
		}
		out = append(out, rs)
	}
	return out, rows.Err()
}
