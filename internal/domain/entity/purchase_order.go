package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra. Solo en draft se puede editar; validar una
// orden crea los lotes de entrada y cancelarla después los marca cancelados.
const (
	POStateDraft     = "draft"
	POStateSubmitted = "submitted"
	POStateValidated = "validated"
	POStateCanceled  = "canceled"
)

// PurchaseOrder es una orden de compra a un proveedor.
type PurchaseOrder struct {
	ID           int64
	SupplierName string
	State        string
	CreatedBy    int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Items        []PurchaseOrderItem
}

// PurchaseOrderItem es una línea de la orden de compra. StockLotID enlaza el lote
// creado al validar; se limpia si la orden se reversa.
type PurchaseOrderItem struct {
	ID              int64
	PurchaseOrderID int64
	ItemID          int64
	Quantity        int
	Price           decimal.Decimal
	RequestedBy     int64
	StockLotID      *int64
}
