package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockAdjustmentEntry registra una corrección manual de cantidad contra un artículo,
// atribuida a un departamento y a un miembro del personal. El costo captura la base
// del lote del que se descontó.
type StockAdjustmentEntry struct {
	ID           int64
	ItemID       int64
	DepartmentID int64
	Quantity     int
	Cost         decimal.Decimal
	CreatedBy    int64
	UpdatedBy    int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
