package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockOutEntry registra cantidad retirada de los lotes de un artículo por una orden,
// con el costo unitario del lote del que se extrajo. Inmutable una vez creada.
type StockOutEntry struct {
	ID        int64
	ItemID    int64
	OrderID   int64
	Quantity  int
	Cost      decimal.Decimal
	CreatedAt time.Time
}
