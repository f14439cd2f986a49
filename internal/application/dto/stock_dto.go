package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastellr/almacen-api/internal/domain/entity"
)

// CreateItemRequest body para POST /api/items.
type CreateItemRequest struct {
	Barcode       string `json:"barcode"`
	Specification string `json:"specification"`
	Location      string `json:"location"`
	Category      string `json:"category"`
	ERMCode       string `json:"erm_code,omitempty"`
}

// ItemResponse representación de un artículo.
type ItemResponse struct {
	ID            int64     `json:"id"`
	Barcode       string    `json:"barcode"`
	Code          string    `json:"code"`
	Specification string    `json:"specification"`
	Location      string    `json:"location"`
	Category      string    `json:"category"`
	ERMCode       string    `json:"erm_code,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// FromItem convierte la entidad a su representación HTTP.
func FromItem(i *entity.Item) ItemResponse {
	return ItemResponse{
		ID:            i.ID,
		Barcode:       i.Barcode,
		Code:          i.Code,
		Specification: i.Specification,
		Location:      i.Location,
		Category:      i.Category,
		ERMCode:       i.ERMCode,
		CreatedAt:     i.CreatedAt,
	}
}

// AddStockRequest body para POST /api/stock.
type AddStockRequest struct {
	Barcode  string          `json:"barcode"`
	Quantity int             `json:"quantity"`
	Cost     decimal.Decimal `json:"cost"`
}

// UpdateStockRequest body para PUT /api/stock/:id.
type UpdateStockRequest struct {
	Quantity int             `json:"quantity"`
	Cost     decimal.Decimal `json:"cost"`
}

// StockLotResponse representación de un lote de entrada.
type StockLotResponse struct {
	ID                int64           `json:"id"`
	ItemID            int64           `json:"item_id"`
	Quantity          int             `json:"quantity"`
	QuantityInitiated int             `json:"quantity_initiated"`
	Cost              decimal.Decimal `json:"cost"`
	Sold              bool            `json:"sold"`
	SoldAt            *time.Time      `json:"sold_at,omitempty"`
	Cancelled         bool            `json:"cancelled"`
	CreatedAt         time.Time       `json:"created_at"`
}

// FromStockLot convierte la entidad a su representación HTTP.
func FromStockLot(l *entity.StockLot) StockLotResponse {
	return StockLotResponse{
		ID:                l.ID,
		ItemID:            l.ItemID,
		Quantity:          l.Quantity,
		QuantityInitiated: l.QuantityInitiated,
		Cost:              l.Cost,
		Sold:              l.Sold,
		SoldAt:            l.SoldAt,
		Cancelled:         l.Cancelled,
		CreatedAt:         l.CreatedAt,
	}
}

// CreateAdjustmentRequest body para POST /api/adjustments.
type CreateAdjustmentRequest struct {
	Barcode      string `json:"barcode"`
	Quantity     int    `json:"quantity"`
	DepartmentID int64  `json:"department_id"`
}

// UpdateAdjustmentRequest body para PUT /api/adjustments/:id.
type UpdateAdjustmentRequest struct {
	Quantity     int   `json:"quantity"`
	DepartmentID int64 `json:"department_id"`
}

// AdjustmentResponse representación de un ajuste manual.
type AdjustmentResponse struct {
	ID           int64           `json:"id"`
	ItemID       int64           `json:"item_id"`
	DepartmentID int64           `json:"department_id"`
	Quantity     int             `json:"quantity"`
	Cost         decimal.Decimal `json:"cost"`
	CreatedAt    time.Time       `json:"created_at"`
}

// FromAdjustment convierte la entidad a su representación HTTP.
func FromAdjustment(a *entity.StockAdjustmentEntry) AdjustmentResponse {
	return AdjustmentResponse{
		ID:           a.ID,
		ItemID:       a.ItemID,
		DepartmentID: a.DepartmentID,
		Quantity:     a.Quantity,
		Cost:         a.Cost,
		CreatedAt:    a.CreatedAt,
	}
}

// RunningStockResponse representación del stock corriente de un artículo.
type RunningStockResponse struct {
	ItemID             int64           `json:"item_id"`
	StockQuantity      int             `json:"stock_quantity"`
	OutQuantity        int             `json:"out_quantity"`
	AdjustmentQuantity int             `json:"adjustment_quantity"`
	RemainingQuantity  int             `json:"remaining_quantity"`
	Status             string          `json:"status"`
	Cost               decimal.Decimal `json:"cost"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// FromRunningStock convierte la entidad a su representación HTTP.
func FromRunningStock(rs *entity.RunningStock) RunningStockResponse {
	return RunningStockResponse{
		ItemID:             rs.ItemID,
		StockQuantity:      rs.StockQuantity,
		OutQuantity:        rs.OutQuantity,
		AdjustmentQuantity: rs.AdjustmentQuantity,
		RemainingQuantity:  rs.RemainingQuantity,
		Status:             string(rs.Status),
		Cost:               rs.Cost,
		UpdatedAt:          rs.UpdatedAt,
	}
}
