package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jcastellr/almacen-api/internal/domain/repository"
)

// DepartmentActivityResponse actividad agregada de un departamento.
type DepartmentActivityResponse struct {
	DepartmentID   int64  `json:"department_id"`
	DepartmentName string `json:"department_name"`
	AdjustmentQty  int    `json:"adjustment_qty"`
	OrderQty       int    `json:"order_qty"`
}

// RunningStockReportResponse fila del reporte de stock corriente.
type RunningStockReportResponse struct {
	Barcode           string          `json:"barcode"`
	Code              string          `json:"code"`
	Specification     string          `json:"specification"`
	Location          string          `json:"location"`
	StockQuantity     int             `json:"stock_quantity"`
	OutQuantity       int             `json:"out_quantity"`
	AdjustmentQty     int             `json:"adjustment_qty"`
	RemainingQuantity int             `json:"remaining_quantity"`
	Status            string          `json:"status"`
	NetValue          decimal.Decimal `json:"net_value"`
}

// FromDepartmentActivity convierte las filas del reporte a su representación HTTP.
func FromDepartmentActivity(rows []repository.DepartmentActivityRow) []DepartmentActivityResponse {
	out := make([]DepartmentActivityResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, DepartmentActivityResponse{
			DepartmentID:   r.DepartmentID,
			DepartmentName: r.DepartmentName,
			AdjustmentQty:  r.AdjustmentQty,
			OrderQty:       r.OrderQty,
		})
	}
	return out
}

// FromRunningStockReport convierte las filas del reporte a su representación HTTP.
func FromRunningStockReport(rows []repository.RunningStockReportRow) []RunningStockReportResponse {
	out := make([]RunningStockReportResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, RunningStockReportResponse{
			Barcode:           r.Barcode,
			Code:              r.Code,
			Specification:     r.Specification,
			Location:          r.Location,
			StockQuantity:     r.StockQuantity,
			OutQuantity:       r.OutQuantity,
			AdjustmentQty:     r.AdjustmentQty,
			RemainingQuantity: r.RemainingQuantity,
			Status:            r.Status,
			NetValue:          r.NetValue,
		})
	}
	return out
}
