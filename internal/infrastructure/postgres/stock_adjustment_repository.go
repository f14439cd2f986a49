package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jcastellr/almacen-api/internal/domain/entity"
	"github.com/jcastellr/almacen-api/internal/domain/repository"
)

var _ repository.StockAdjustmentRepository = (*StockAdjustmentRepo)(nil)

// StockAdjustmentRepo implementación de StockAdjustmentRepository sobre PostgreSQL.
type StockAdjustmentRepo struct {
	q Querier
}

// NewStockAdjustmentRepository construye el adaptador del libro de ajustes.
func NewStockAdjustmentRepository(q Querier) *StockAdjustmentRepo {
	return &StockAdjustmentRepo{q: q}
}

const adjustmentColumns = `id, item_id, department_id, quantity, cost, created_by, updated_by, created_at, updated_at`

// Create persiste un ajuste manual.
func (r *StockAdjustmentRepo) Create(adj *entity.StockAdjustmentEntry) (*entity.StockAdjustmentEntry, error) {
	query := `
		INSERT INTO stock_adjustments (item_id, department_id, quantity, cost, created_by, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		adj.ItemID, adj.DepartmentID, adj.Quantity, adj.Cost,
		adj.CreatedBy, adj.UpdatedBy, adj.CreatedAt, adj.UpdatedAt,
	).Scan(&adj.ID)
	if err != nil {
		return nil, fmt.Errorf("insert stock adjustment: %w", err)
	}
	return adj, nil
}

// GetByID devuelve el ajuste o nil si no existe.
func (r *StockAdjustmentRepo) GetByID(id int64) (*entity.StockAdjustmentEntry, error) {
	query := `SELECT ` + adjustmentColumns + ` FROM stock_adjustments WHERE id = $1`
	var a entity.StockAdjustmentEntry
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.ItemID, &a.DepartmentID, &a.Quantity, &a.Cost,
		&a.CreatedBy, &a.UpdatedBy, &a.CreatedAt, &a.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get stock adjustment: %w", err)
	}
	return &a, nil
}

// Update guarda los campos mutables del ajuste.
func (r *StockAdjustmentRepo) Update(adj *entity.StockAdjustmentEntry) error {
	query := `
		UPDATE stock_adjustments
		SET department_id = $1, quantity = $2, cost = $3, updated_by = $4, updated_at = $5
		WHERE id = $6`
	_, err := r.q.Exec(context.Background(), query,
		adj.DepartmentID, adj.Quantity, adj.Cost, adj.UpdatedBy, adj.UpdatedAt, adj.ID,
	)
	if err != nil {
		return fmt.Errorf("update stock adjustment: %w", err)
	}
	return nil
}

// Delete elimina el ajuste.
func (r *StockAdjustmentRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_adjustments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock adjustment: %w", err)
	}
	return nil
}

// SumForItem agrega el libro de ajustes del artículo: cantidad total y valor total.
func (r *StockAdjustmentRepo) SumForItem(itemID int64) (repository.LedgerSum, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0), COALESCE(SUM(quantity * cost), 0)
		FROM stock_adjustments WHERE item_id = $1`
	sum := repository.LedgerSum{Value: decimal.Zero}
	if err := r.q.QueryRow(context.Background(), query, itemID).Scan(&sum.Quantity, &sum.Value); err != nil {
		return sum, fmt.Errorf("sum stock adjustments: %w", err)
	}
	return sum, nil
}

// CountForItem cuenta los ajustes registrados contra el artículo.
func (r *StockAdjustmentRepo) CountForItem(itemID int64) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM stock_adjustments WHERE item_id = $1`, itemID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count stock adjustments: %w", err)
	}
	return count, nil
}

// List devuelve todos los ajustes, más recientes primero.
func (r *StockAdjustmentRepo) List() ([]entity.StockAdjustmentEntry, error) {
	query := `SELECT ` + adjustmentColumns + ` FROM stock_adjustments ORDER BY id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stock adjustments: %w", err)
	}
	defer rows.Close()

	var out []entity.StockAdjustmentEntry
	for rows.Next() {
		var a entity.StockAdjustmentEntry
		if err := rows.Scan(
			&a.ID, &a.ItemID, &a.DepartmentID, &a.Quantity, &a.Cost,
			&a.CreatedBy, &a.UpdatedBy, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock adjustment: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
