package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastellr/almacen-api/internal/domain/entity"
)

// PurchaseOrderItemRequest línea de una orden de compra.
type PurchaseOrderItemRequest struct {
	ItemID   int64           `json:"item_id"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// CreatePurchaseOrderRequest body para POST /api/purchase-orders.
type CreatePurchaseOrderRequest struct {
	SupplierName string                     `json:"supplier_name"`
	Items        []PurchaseOrderItemRequest `json:"items"`
}

// UpdatePurchaseOrderRequest body para PUT /api/purchase-orders/:id.
type UpdatePurchaseOrderRequest struct {
	SupplierName string `json:"supplier_name"`
}

// UpdatePOStateRequest body para PUT /api/purchase-orders/:id/state.
type UpdatePOStateRequest struct {
	State string `json:"state"`
}

// PurchaseOrderItemResponse representación de una línea de orden de compra.
type PurchaseOrderItemResponse struct {
	ID         int64           `json:"id"`
	ItemID     int64           `json:"item_id"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	StockLotID *int64          `json:"stock_lot_id,omitempty"`
}

// PurchaseOrderResponse representación de una orden de compra.
type PurchaseOrderResponse struct {
	ID           int64                       `json:"id"`
	SupplierName string                      `json:"supplier_name"`
	State        string                      `json:"state"`
	CreatedBy    int64                       `json:"created_by"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
	Items        []PurchaseOrderItemResponse `json:"items,omitempty"`
}

// FromPurchaseOrder convierte la entidad (con líneas) a su representación HTTP.
func FromPurchaseOrder(po *entity.PurchaseOrder) PurchaseOrderResponse {
	resp := PurchaseOrderResponse{
		ID:           po.ID,
		SupplierName: po.SupplierName,
		State:        po.State,
		CreatedBy:    po.CreatedBy,
		CreatedAt:    po.CreatedAt,
		UpdatedAt:    po.UpdatedAt,
	}
	for _, it := range po.Items {
		resp.Items = append(resp.Items, PurchaseOrderItemResponse{
			ID:         it.ID,
			ItemID:     it.ItemID,
			Quantity:   it.Quantity,
			Price:      it.Price,
			StockLotID: it.StockLotID,
		})
	}
	return resp
}
