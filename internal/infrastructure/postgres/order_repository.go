package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jcastellr/almacen-api/internal/domain/entity"
	"github.com/jcastellr/almacen-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de órdenes.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, item_id, staff_id, job_number, part_name, quantity, available_quantity, total_cost, restriction, created_at`

// Create persiste la orden.
func (r *OrderRepo) Create(order *entity.Order) (*entity.Order, error) {
	query := `
		INSERT INTO orders (item_id, staff_id, job_number, part_name, quantity, available_quantity, total_cost, restriction, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		order.ItemID, order.StaffID, order.JobNumber, order.PartName,
		order.Quantity, order.AvailableQuantity, order.TotalCost, order.Restriction, order.CreatedAt,
	).Scan(&order.ID)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	return order, nil
}

// GetByID devuelve la orden o nil si no existe.
func (r *OrderRepo) GetByID(id int64) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.ItemID, &o.StaffID, &o.JobNumber, &o.PartName,
		&o.Quantity, &o.AvailableQuantity, &o.TotalCost, &o.Restriction, &o.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// Update guarda los campos calculados tras la asignación (costo total).
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `
		UPDATE orders
		SET quantity = $1, available_quantity = $2, total_cost = $3, restriction = $4
		WHERE id = $5`
	_, err := r.q.Exec(context.Background(), query,
		order.Quantity, order.AvailableQuantity, order.TotalCost, order.Restriction, order.ID,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// List devuelve las órdenes más recientes primero; from/to acotan la fecha de
// creación cuando no son cero.
func (r *OrderRepo) List(from, to time.Time) ([]entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	var args []any
	switch {
	case !from.IsZero() && !to.IsZero():
		query += ` WHERE created_at >= $1 AND created_at < $2`
		args = append(args, from, to)
	case !from.IsZero():
		query += ` WHERE created_at >= $1`
		args = append(args, from)
	case !to.IsZero():
		query += ` WHERE created_at < $1`
		args = append(args, to)
	}
	query += ` ORDER BY id DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var out []entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(
			&o.ID, &o.ItemID, &o.StaffID, &o.JobNumber, &o.PartName,
			&o.Quantity, &o.AvailableQuantity, &o.TotalCost, &o.Restriction, &o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
