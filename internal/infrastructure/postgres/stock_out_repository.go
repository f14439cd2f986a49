package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jcastellr/almacen-api/internal/domain/entity"
	"github.com/jcastellr/almacen-api/internal/domain/repository"
)

var _ repository.StockOutRepository = (*StockOutRepo)(nil)
var _ repository.CostEvaluationRepository = (*CostEvaluationRepo)(nil)

// StockOutRepo implementación de StockOutRepository sobre PostgreSQL (usable con pool o tx).
type StockOutRepo struct {
	q Querier
}

// NewStockOutRepository construye el adaptador del libro de salidas. Pasar pool o tx (Querier).
func NewStockOutRepository(q Querier) *StockOutRepo {
	return &StockOutRepo{q: q}
}

// Create persiste una entrada de salida.
func (r *StockOutRepo) Create(out *entity.StockOutEntry) (*entity.StockOutEntry, error) {
	query := `
		INSERT INTO stock_out (item_id, order_id, quantity, cost, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		out.ItemID, out.OrderID, out.Quantity, out.Cost, out.CreatedAt,
	).Scan(&out.ID)
	if err != nil {
		return nil, fmt.Errorf("insert stock out: %w", err)
	}
	return out, nil
}

// SumForItem agrega el libro de salidas del artículo: cantidad total y valor total.
func (r *StockOutRepo) SumForItem(itemID int64) (repository.LedgerSum, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0), COALESCE(SUM(quantity * cost), 0)
		FROM stock_out WHERE item_id = $1`
	sum := repository.LedgerSum{Value: decimal.Zero}
	if err := r.q.QueryRow(context.Background(), query, itemID).Scan(&sum.Quantity, &sum.Value); err != nil {
		return sum, fmt.Errorf("sum stock out: %w", err)
	}
	return sum, nil
}

// ListByItem devuelve las salidas del artículo, más recientes primero.
func (r *StockOutRepo) ListByItem(itemID int64) ([]entity.StockOutEntry, error) {
	query := `
		SELECT id, item_id, order_id, quantity, cost, created_at
		FROM stock_out WHERE item_id = $1 ORDER BY id DESC`
	rows, err := r.q.Query(context.Background(), query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list stock out: %w", err)
	}
	defer rows.Close()

	var out []entity.StockOutEntry
	for rows.Next() {
		var e entity.StockOutEntry
		if err := rows.Scan(&e.ID, &e.ItemID, &e.OrderID, &e.Quantity, &e.Cost, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock out: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// CostEvaluationRepo implementación de CostEvaluationRepository sobre PostgreSQL.
type CostEvaluationRepo struct {
	q Querier
}

// NewCostEvaluationRepository construye el adaptador de evaluaciones de costo.
func NewCostEvaluationRepository(q Querier) *CostEvaluationRepo {
	return &CostEvaluationRepo{q: q}
}

// Create persiste la evaluación de costo de una tajada.
func (r *CostEvaluationRepo) Create(ev *entity.CostEvaluation) error {
	query := `
		INSERT INTO cost_evaluation (item_id, order_id, quantity, cost, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		ev.ItemID, ev.OrderID, ev.Quantity, ev.Cost, ev.Total, ev.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cost evaluation: %w", err)
	}
	return nil
}

// ListByItem devuelve las evaluaciones de costo del artículo, más recientes primero.
func (r *CostEvaluationRepo) ListByItem(itemID int64) ([]entity.CostEvaluation, error) {
	query := `
		SELECT id, item_id, order_id, quantity, cost, total, created_at
		FROM cost_evaluation WHERE item_id = $1 ORDER BY id DESC`
	rows, err := r.q.Query(context.Background(), query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list cost evaluations: %w", err)
	}
	defer rows.Close()

	var out []entity.CostEvaluation
	for rows.Next() {
		var e entity.CostEvaluation
		if err := rows.Scan(&e.ID, &e.ItemID, &e.OrderID, &e.Quantity, &e.Cost, &e.Total, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cost evaluation: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
