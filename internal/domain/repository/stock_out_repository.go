package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jcastellr/almacen-api/internal/domain/entity"
)

// LedgerSum es la suma agrupada de un libro (salidas o ajustes) para un artículo.
type LedgerSum struct {
	Quantity int
	Value    decimal.Decimal // suma de Quantity * Cost
}

// StockOutRepository acceso al libro de salidas. Las entradas son inmutables:
// solo se crean y se agregan.
type StockOutRepository interface {
	Create(out *entity.StockOutEntry) (*entity.StockOutEntry, error)
	SumForItem(itemID int64) (LedgerSum, error)
	ListByItem(itemID int64) ([]entity.StockOutEntry, error)
}

// CostEvaluationRepository acceso al registro de costos por tajada de asignación.
type CostEvaluationRepository interface {
	Create(ev *entity.CostEvaluation) error
	ListByItem(itemID int64) ([]entity.CostEvaluation, error)
}
