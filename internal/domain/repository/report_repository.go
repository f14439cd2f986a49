package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// DepartmentActivityRow actividad agregada de un departamento:
// total ajustado contra sus lotes y total ordenado por su personal.
type DepartmentActivityRow struct {
	DepartmentID   int64
	DepartmentName string
	AdjustmentQty  int
	OrderQty       int
}

// RunningStockReportRow fila del reporte de stock corriente por artículo.
type RunningStockReportRow struct {
	Barcode           string
	Code              string
	Specification     string
	Location          string
	StockQuantity     int
	OutQuantity       int
	AdjustmentQty     int
	RemainingQuantity int
	Status            string
	NetValue          decimal.Decimal
}

// ReportRepository consultas de agregación para los reportes del tablero.
type ReportRepository interface {
	DepartmentActivity(ctx context.Context) ([]DepartmentActivityRow, error)
	RunningStockReport(ctx context.Context) ([]RunningStockReportRow, error)
}
