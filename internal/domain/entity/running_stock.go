package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status es el estado de disponibilidad del stock corriente de un artículo.
type Status string

const (
	StatusAvailable Status = "available"
	StatusReOrder   Status = "re_order"
)

// RunningStock es el agregado derivado por artículo (una fila por Item, 1:1).
// Es una caché, no la fuente de verdad: siempre debe poder re-derivarse de los
// tres libros (entradas, salidas, ajustes).
//
// Invariante: RemainingQuantity == StockQuantity - OutQuantity - AdjustmentQuantity.
type RunningStock struct {
	ID                 int64
	ItemID             int64
	StockQuantity      int // suma de QuantityInitiated de lotes no cancelados
	OutQuantity        int
	AdjustmentQuantity int
	RemainingQuantity  int
	Status             Status
	Cost               decimal.Decimal // valor neto: entradas - (salidas + ajustes)
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
