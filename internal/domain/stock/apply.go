package stock

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastellr/almacen-api/internal/domain/entity"
)

// LedgerTotals es la vista agregada de los tres libros de un artículo al momento
// de reconciliar. StockQuantity y StockValue salen del libro de entradas (lotes
// no cancelados, a cantidad inicial); OutValue y AdjustmentValue de los otros dos.
type LedgerTotals struct {
	StockQuantity   int
	StockValue      decimal.Decimal
	OutValue        decimal.Decimal
	AdjustmentValue decimal.Decimal
}

// Apply reconcilia el RunningStock de un artículo con exactamente un Delta.
// current == nil significa que el artículo aún no tiene fila: se crea perezosamente.
//
// El contrato del llamador es invocar Apply una sola vez por mutación de libro:
// la función es basada en deltas, no un recálculo puro, así que re-aplicar el
// mismo delta corrompe el remanente.
//
// Nota heredada: la variante Intake iguala el remanente al total fresco del libro
// de entradas, descartando salidas y ajustes previos hasta que la siguiente
// pasada de consumo o ajuste re-aplique sus totales absolutos.
func Apply(current *entity.RunningStock, itemID int64, totals LedgerTotals, d Delta, now time.Time) *entity.RunningStock {
	if current == nil {
		return newRunning(itemID, totals, d, now)
	}

	switch d.kind {
	case kindConsumption:
		current.OutQuantity = d.quantity
		current.RemainingQuantity -= d.orderQty
	case kindAdjustmentReset:
		current.AdjustmentQuantity = 0
		current.RemainingQuantity = totals.StockQuantity
	case kindAdjustment:
		current.AdjustmentQuantity = d.quantity
		current.RemainingQuantity -= d.orderQty
	case kindIntake:
		current.StockQuantity += d.quantity
		current.RemainingQuantity = totals.StockQuantity
	case kindRemoval:
		current.RemainingQuantity -= d.quantity
		current.StockQuantity -= d.quantity
	case kindCancellation:
		current.RemainingQuantity -= d.quantity
	default: // FullRecompute
		current.RemainingQuantity = totals.StockQuantity
	}

	current.Status = statusFor(current.RemainingQuantity)
	current.Cost = netValue(totals)
	current.UpdatedAt = now
	return current
}

func newRunning(itemID int64, totals LedgerTotals, d Delta, now time.Time) *entity.RunningStock {
	var out, adj int
	switch d.kind {
	case kindConsumption:
		out = d.quantity
	case kindAdjustment:
		adj = d.quantity
	}
	remaining := totals.StockQuantity - (adj + out)
	return &entity.RunningStock{
		ItemID:             itemID,
		StockQuantity:      totals.StockQuantity,
		OutQuantity:        out,
		AdjustmentQuantity: adj,
		RemainingQuantity:  remaining,
		Status:             statusFor(remaining),
		Cost:               netValue(totals),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func statusFor(remaining int) entity.Status {
	if remaining < ReorderThreshold {
		return entity.StatusReOrder
	}
	return entity.StatusAvailable
}

// netValue es el valor neto del inventario del artículo:
// valor de entradas menos valor de salidas y de ajustes.
func netValue(t LedgerTotals) decimal.Decimal {
	return t.StockValue.Sub(t.OutValue.Add(t.AdjustmentValue))
}
