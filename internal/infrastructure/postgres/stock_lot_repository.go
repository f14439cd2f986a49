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

var _ repository.StockLotRepository = (*StockLotRepo)(nil)

const lotColumns = `id, item_id, quantity, quantity_initiated, cost, sold, sold_at, cancelled, created_by, updated_by, created_at, updated_at`

// StockLotRepo implementación de StockLotRepository sobre PostgreSQL (usable con pool o tx).
type StockLotRepo struct {
	q Querier
}

// NewStockLotRepository construye el adaptador de lotes. Pasar pool o tx (Querier).
func NewStockLotRepository(q Querier) *StockLotRepo {
	return &StockLotRepo{q: q}
}

// Create persiste un lote de entrada nuevo.
func (r *StockLotRepo) Create(lot *entity.StockLot) (*entity.StockLot, error) {
	query := `
		INSERT INTO stock_lots (item_id, quantity, quantity_initiated, cost, sold, cancelled, created_by, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		lot.ItemID, lot.Quantity, lot.QuantityInitiated, lot.Cost, lot.Sold, lot.Cancelled,
		lot.CreatedBy, lot.UpdatedBy, lot.CreatedAt, lot.UpdatedAt,
	).Scan(&lot.ID)
	if err != nil {
		return nil, fmt.Errorf("insert stock lot: %w", err)
	}
	return lot, nil
}

// GetByID obtiene un lote por id.
func (r *StockLotRepo) GetByID(id int64) (*entity.StockLot, error) {
	return r.get(id, "")
}

// GetForUpdate obtiene un lote bloqueando su fila (SELECT FOR UPDATE); usar dentro de una tx.
func (r *StockLotRepo) GetForUpdate(id int64) (*entity.StockLot, error) {
	return r.get(id, " FOR UPDATE")
}

func (r *StockLotRepo) get(id int64, suffix string) (*entity.StockLot, error) {
	query := `SELECT ` + lotColumns + ` FROM stock_lots WHERE id = $1` + suffix
	var l entity.StockLot
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.ItemID, &l.Quantity, &l.QuantityInitiated, &l.Cost, &l.Sold, &l.SoldAt,
		&l.Cancelled, &l.CreatedBy, &l.UpdatedBy, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock lot: %w", err)
	}
	return &l, nil
}

// Update sobrescribe los campos mutables de un lote.
func (r *StockLotRepo) Update(lot *entity.StockLot) error {
	query := `
		UPDATE stock_lots
		SET quantity = $2, quantity_initiated = $3, cost = $4, sold = $5, sold_at = $6,
		    cancelled = $7, updated_by = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		lot.ID, lot.Quantity, lot.QuantityInitiated, lot.Cost, lot.Sold, lot.SoldAt,
		lot.Cancelled, lot.UpdatedBy, lot.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock lot: %w", err)
	}
	return nil
}

// Delete borra un lote.
func (r *StockLotRepo) Delete(id int64) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM stock_lots WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete stock lot: %w", err)
	}
	return nil
}

// ListAvailableForUpdate devuelve los lotes no vendidos ni cancelados del artículo,
// más viejos primero, bloqueando sus filas. Es el orden FIFO de la asignación.
func (r *StockLotRepo) ListAvailableForUpdate(itemID int64) ([]*entity.StockLot, error) {
	query := `SELECT ` + lotColumns + `
		FROM stock_lots
		WHERE item_id = $1 AND NOT sold AND NOT cancelled
		ORDER BY id
		FOR UPDATE`
	rows, err := r.q.Query(context.Background(), query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list available lots: %w", err)
	}
	defer rows.Close()

	var out []*entity.StockLot
	for rows.Next() {
		var l entity.StockLot
		if err := rows.Scan(&l.ID, &l.ItemID, &l.Quantity, &l.QuantityInitiated, &l.Cost, &l.Sold, &l.SoldAt,
			&l.Cancelled, &l.CreatedBy, &l.UpdatedBy, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}

// GroupedTotals agrega el libro de entradas del artículo: suma de cantidades
// iniciales y de su valor, excluyendo lotes cancelados. Devuelve ceros si el
// artículo no tiene lotes.
func (r *StockLotRepo) GroupedTotals(itemID int64) (repository.IntakeTotals, error) {
	query := `
		SELECT COALESCE(SUM(quantity_initiated), 0),
		       COALESCE(SUM(quantity_initiated * cost), 0)
		FROM stock_lots
		WHERE item_id = $1 AND NOT cancelled`
	t := repository.IntakeTotals{ItemID: itemID, Value: decimal.Zero}
	err := r.q.QueryRow(context.Background(), query, itemID).Scan(&t.Quantity, &t.Value)
	if err != nil {
		return t, fmt.Errorf("grouped lot totals: %w", err)
	}
	return t, nil
}

// ListByItem devuelve todos los lotes del artículo, más viejos primero.
func (r *StockLotRepo) ListByItem(itemID int64) ([]entity.StockLot, error) {
	query := `SELECT ` + lotColumns + ` FROM stock_lots WHERE item_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	defer rows.Close()

	var out []entity.StockLot
	for rows.Next() {
		var l entity.StockLot
		if err := rows.Scan(&l.ID, &l.ItemID, &l.Quantity, &l.QuantityInitiated, &l.Cost, &l.Sold, &l.SoldAt,
			&l.Cancelled, &l.CreatedBy, &l.UpdatedBy, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
