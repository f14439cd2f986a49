package postgres

import (
	"context"
	"fmt"

	"github.com/jcastellr/almacen-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de agregación para los reportes del tablero.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// DepartmentActivity agrega por departamento la cantidad ajustada contra sus
// lotes y la cantidad ordenada por su personal.
func (r *ReportRepo) DepartmentActivity(ctx context.Context) ([]repository.DepartmentActivityRow, error) {
	query := `
		SELECT d.id, d.name,
			COALESCE(adj.qty, 0) AS adjustment_qty,
			COALESCE(ord.qty, 0) AS order_qty
		FROM departments d
		LEFT JOIN (
			SELECT department_id, SUM(quantity) AS qty
			FROM stock_adjustments GROUP BY department_id
		) adj ON adj.department_id = d.id
		LEFT JOIN (
			SELECT s.department_id, SUM(o.quantity) AS qty
			FROM orders o JOIN staff s ON s.id = o.staff_id
			GROUP BY s.department_id
		) ord ON ord.department_id = d.id
		ORDER BY d.name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("department activity report: %w", err)
	}
	defer rows.Close()

	var out []repository.DepartmentActivityRow
	for rows.Next() {
		var row repository.DepartmentActivityRow
		if err := rows.Scan(&row.DepartmentID, &row.DepartmentName, &row.AdjustmentQty, &row.OrderQty); err != nil {
			return nil, fmt.Errorf("scan department activity: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// RunningStockReport une el stock corriente con los datos del artículo para el
// reporte PDF del tablero.
func (r *ReportRepo) RunningStockReport(ctx context.Context) ([]repository.RunningStockReportRow, error) {
	query := `
		SELECT i.barcode, i.code, i.specification, i.location,
			rs.stock_quantity, rs.out_quantity, rs.adjustment_quantity,
			rs.remaining_quantity, rs.status, rs.cost
		FROM running_stock rs
		JOIN items i ON i.id = rs.item_id
		ORDER BY i.code`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("running stock report: %w", err)
	}
	defer rows.Close()

	var out []repository.RunningStockReportRow
	for rows.Next() {
		var row repository.RunningStockReportRow
		if err := rows.Scan(
			&row.Barcode, &row.Code, &row.Specification, &row.Location,
			&row.StockQuantity, &row.OutQuantity, &row.AdjustmentQty,
			&row.RemainingQuantity, &row.Status, &row.NetValue,
		); err != nil {
			return nil, fmt.Errorf("scan running stock report: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
