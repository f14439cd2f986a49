package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CostEvaluation registra el costo de cada tajada de asignación para reportes:
// cantidad tomada, costo unitario del lote y total de la tajada.
type CostEvaluation struct {
	ID        int64
	ItemID    int64
	OrderID   int64
	Quantity  int
	Cost      decimal.Decimal
	Total     decimal.Decimal
	CreatedAt time.Time
}
