package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockLot es un lote de entrada de un artículo: cada recepción crea uno.
// Quantity baja con consumos y ajustes; QuantityInitiated conserva la cantidad original.
// Un lote cancelado (reversa de orden de compra) deja de aportar a los totales
// sin borrar su historia.
type StockLot struct {
	ID                int64
	ItemID            int64
	Quantity          int
	QuantityInitiated int
	Cost              decimal.Decimal // costo unitario del lote
	Sold              bool
	SoldAt            *time.Time
	Cancelled         bool
	CreatedBy         int64
	UpdatedBy         int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// InUse indica si el lote ya participó en ventas y por tanto es inmutable.
func (l *StockLot) InUse() bool {
	return l.Sold || l.SoldAt != nil
}
