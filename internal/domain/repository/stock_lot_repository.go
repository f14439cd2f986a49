package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jcastellr/almacen-api/internal/domain/entity"
)

// IntakeTotals es la vista agrupada del libro de entradas de un artículo:
// la única ventana del reconciliador hacia ese libro.
type IntakeTotals struct {
	ItemID   int64
	Quantity int             // suma de QuantityInitiated de lotes no cancelados
	Value    decimal.Decimal // suma de Cost * QuantityInitiated de lotes no cancelados
}

// StockLotRepository acceso a los lotes de entrada.
type StockLotRepository interface {
	Create(lot *entity.StockLot) (*entity.StockLot, error)
	GetByID(id int64) (*entity.StockLot, error)
	// GetForUpdate bloquea la fila del lote (SELECT FOR UPDATE); usar dentro de una tx.
	GetForUpdate(id int64) (*entity.StockLot, error)
	Update(lot *entity.StockLot) error
	Delete(id int64) error
	// ListAvailableForUpdate devuelve los lotes no vendidos y no cancelados del
	// artículo ordenados por id ascendente (FIFO), bloqueados para update.
	ListAvailableForUpdate(itemID int64) ([]*entity.StockLot, error)
	// GroupedTotals agrega el libro de entradas del artículo; totales en cero
	// si no tiene lotes vigentes.
	GroupedTotals(itemID int64) (IntakeTotals, error)
	ListByItem(itemID int64) ([]entity.StockLot, error)
}
