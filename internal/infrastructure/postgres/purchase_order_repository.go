package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastellr/almacen-api/internal/domain/entity"
	"github.com/jcastellr/almacen-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación de PurchaseOrderRepository sobre PostgreSQL.
// Las líneas viven en purchase_order_items; GetByID arma la orden completa.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador de órdenes de compra.
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

const poColumns = `id, supplier_name, state, created_by, created_at, updated_at`

// Create persiste la orden con sus líneas.
func (r *PurchaseOrderRepo) Create(po *entity.PurchaseOrder) (*entity.PurchaseOrder, error) {
	query := `
		INSERT INTO purchase_orders (supplier_name, state, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		po.SupplierName, po.State, po.CreatedBy, po.CreatedAt, po.UpdatedAt,
	).Scan(&po.ID)
	if err != nil {
		return nil, fmt.Errorf("insert purchase order: %w", err)
	}
	for i := range po.Items {
		po.Items[i].PurchaseOrderID = po.ID
		if _, err := r.AddItem(&po.Items[i]); err != nil {
			return nil, err
		}
	}
	return po, nil
}

// GetByID carga la orden con sus líneas; nil si no existe.
func (r *PurchaseOrderRepo) GetByID(id int64) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + poColumns + ` FROM purchase_orders WHERE id = $1`
	var po entity.PurchaseOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&po.ID, &po.SupplierName, &po.State, &po.CreatedBy, &po.CreatedAt, &po.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	items, err := r.listItems(po.ID)
	if err != nil {
		return nil, err
	}
	po.Items = items
	return &po, nil
}

// Update guarda la cabecera de la orden.
func (r *PurchaseOrderRepo) Update(po *entity.PurchaseOrder) error {
	query := `
		UPDATE purchase_orders
		SET supplier_name = $1, state = $2, updated_at = $3
		WHERE id = $4`
	_, err := r.q.Exec(context.Background(), query,
		po.SupplierName, po.State, po.UpdatedAt, po.ID,
	)
	if err != nil {
		return fmt.Errorf("update purchase order: %w", err)
	}
	return nil
}

// UpdateState cambia solo el estado de la orden.
func (r *PurchaseOrderRepo) UpdateState(id int64, state string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE purchase_orders SET state = $1, updated_at = NOW() WHERE id = $2`, state, id,
	)
	if err != nil {
		return fmt.Errorf("update purchase order state: %w", err)
	}
	return nil
}

// Delete elimina la orden y sus líneas.
func (r *PurchaseOrderRepo) Delete(id int64) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM purchase_order_items WHERE purchase_order_id = $1`, id); err != nil {
		return fmt.Errorf("delete purchase order items: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM purchase_orders WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete purchase order: %w", err)
	}
	return nil
}

// List devuelve las cabeceras de todas las órdenes, más recientes primero.
func (r *PurchaseOrderRepo) List() ([]entity.PurchaseOrder, error) {
	query := `SELECT ` + poColumns + ` FROM purchase_orders ORDER BY id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()

	var out []entity.PurchaseOrder
	for rows.Next() {
		var po entity.PurchaseOrder
		if err := rows.Scan(
			&po.ID, &po.SupplierName, &po.State, &po.CreatedBy, &po.CreatedAt, &po.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		out = append(out, po)
	}
	return out, rows.Err()
}

// AddItem persiste una línea de la orden.
func (r *PurchaseOrderRepo) AddItem(item *entity.PurchaseOrderItem) (*entity.PurchaseOrderItem, error) {
	query := `
		INSERT INTO purchase_order_items (purchase_order_id, item_id, quantity, price, requested_by, stock_lot_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		item.PurchaseOrderID, item.ItemID, item.Quantity, item.Price, item.RequestedBy, item.StockLotID,
	).Scan(&item.ID)
	if err != nil {
		return nil, fmt.Errorf("insert purchase order item: %w", err)
	}
	return item, nil
}

// UpdateItem guarda los campos mutables de la línea (incluido el enlace al lote).
func (r *PurchaseOrderRepo) UpdateItem(item *entity.PurchaseOrderItem) error {
	query := `
		UPDATE purchase_order_items
		SET item_id = $1, quantity = $2, price = $3, requested_by = $4, stock_lot_id = $5
		WHERE id = $6`
	_, err := r.q.Exec(context.Background(), query,
		item.ItemID, item.Quantity, item.Price, item.RequestedBy, item.StockLotID, item.ID,
	)
	if err != nil {
		return fmt.Errorf("update purchase order item: %w", err)
	}
	return nil
}

// DeleteItem elimina la línea.
func (r *PurchaseOrderRepo) DeleteItem(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM purchase_order_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase order item: %w", err)
	}
	return nil
}

func (r *PurchaseOrderRepo) listItems(poID int64) ([]entity.PurchaseOrderItem, error) {
	query := `
		SELECT id, purchase_order_id, item_id, quantity, price, requested_by, stock_lot_id
		FROM purchase_order_items WHERE purchase_order_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, poID)
	if err != nil {
		return nil, fmt.Errorf("list purchase order items: %w", err)
	}
	defer rows.Close()

	var out []entity.PurchaseOrderItem
	for rows.Next() {
		var it entity.PurchaseOrderItem
		if err := rows.Scan(
			&it.ID, &it.PurchaseOrderID, &it.ItemID, &it.Quantity, &it.Price, &it.RequestedBy, &it.StockLotID,
		); err != nil {
			return nil, fmt.Errorf("scan purchase order item: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
