package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastellr/almacen-api/internal/domain"
	"github.com/jcastellr/almacen-api/internal/domain/entity"
	"github.com/jcastellr/almacen-api/internal/domain/repository"
	stockdom "github.com/jcastellr/almacen-api/internal/domain/stock"
	"github.com/jcastellr/almacen-api/pkg/logger"
)

// ConsumptionUseCase asigna la cantidad de una orden contra los lotes disponibles
// del artículo, más viejo primero (FIFO por id de lote), registrando una entrada
// de salida y una evaluación de costo por cada tajada.
type ConsumptionUseCase struct {
	tx         TxRunner
	items      repository.ItemRepository
	reconciler *Reconciler
	log        *logger.Logger
}

// NewConsumptionUseCase construye el asignador de consumo.
func NewConsumptionUseCase(tx TxRunner, items repository.ItemRepository, reconciler *Reconciler, log *logger.Logger) *ConsumptionUseCase {
	return &ConsumptionUseCase{tx: tx, items: items, reconciler: reconciler, log: log}
}

// Consume asigna requested unidades del artículo en su propia transacción y
// devuelve el costo total de la asignación.
func (uc *ConsumptionUseCase) Consume(ctx context.Context, barcode string, requested int, orderID int64) (decimal.Decimal, error) {
	item, err := uc.items.GetByBarcode(barcode)
	if err != nil {
		return decimal.Zero, err
	}
	if item == nil {
		return decimal.Zero, fmt.Errorf("artículo %q: %w", barcode, domain.ErrNotFound)
	}
	var total decimal.Decimal
	err = uc.tx.Run(ctx, func(r LedgerRepos) error {
		total, _, err = uc.AllocateInTx(r, item.ID, requested, orderID)
		return err
	})
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// AllocateInTx ejecuta la asignación con los repositorios de la transacción del
// llamador (el orquestador de órdenes comparte aquí su tx). Valida disponibilidad
// contra el RunningStock bloqueado, recorre los lotes FIFO, escribe salidas y
// evaluaciones de costo, y reconcilia. Devuelve el costo total y el agregado
// reconciliado.
//
// Si los lotes se agotan antes de satisfacer la cantidad pese a que el agregado
// decía que alcanzaba, los libros no concuerdan: se devuelve ErrLedgerInconsistent
// y la transacción del llamador debe revertirse completa, sin escrituras parciales.
func (uc *ConsumptionUseCase) AllocateInTx(r LedgerRepos, itemID int64, requested int, orderID int64) (decimal.Decimal, *entity.RunningStock, error) {
	if requested <= 0 {
		return decimal.Zero, nil, domain.ErrInvalidInput
	}
	running, err := r.Running.GetByItemForUpdate(itemID)
	if err != nil {
		return decimal.Zero, nil, fmt.Errorf("cargar running stock: %w", err)
	}
	if running == nil {
		return decimal.Zero, nil, fmt.Errorf("artículo %d sin inventario: %w", itemID, domain.ErrNotFound)
	}
	if requested > running.RemainingQuantity {
		return decimal.Zero, nil, fmt.Errorf("solicitado %d, remanente %d: %w",
			requested, running.RemainingQuantity, domain.ErrOutOfStock)
	}

	totalCost, err := allocateLots(r, itemID, requested, uc.log, func(lot *entity.StockLot, taken int, now time.Time) error {
		return writeStockOut(r, lot, taken, orderID, now)
	})
	if err != nil {
		return decimal.Zero, nil, err
	}

	outs, err := r.Outs.SumForItem(itemID)
	if err != nil {
		return decimal.Zero, nil, fmt.Errorf("agrupar salidas: %w", err)
	}
	updated, err := uc.reconciler.Reconcile(r, itemID, stockdom.Consumption(outs.Quantity, requested))
	if err != nil {
		return decimal.Zero, nil, err
	}
	return totalCost, updated, nil
}

// writeStockOut registra la tajada como salida más su evaluación de costo.
func writeStockOut(r LedgerRepos, lot *entity.StockLot, taken int, orderID int64, now time.Time) error {
	if _, err := r.Outs.Create(&entity.StockOutEntry{
		ItemID:    lot.ItemID,
		OrderID:   orderID,
		Quantity:  taken,
		Cost:      lot.Cost,
		CreatedAt: now,
	}); err != nil {
		return fmt.Errorf("registrar salida: %w", err)
	}
	takenDec := decimal.NewFromInt(int64(taken))
	if err := r.Evaluations.Create(&entity.CostEvaluation{
		ItemID:    lot.ItemID,
		OrderID:   orderID,
		Quantity:  taken,
		Cost:      lot.Cost,
		Total:     lot.Cost.Mul(takenDec),
		CreatedAt: now,
	}); err != nil {
		return fmt.Errorf("registrar evaluación de costo: %w", err)
	}
	return nil
}

// sliceWriter registra la tajada tomada de un lote en el libro que corresponda.
type sliceWriter func(lot *entity.StockLot, taken int, now time.Time) error

// allocateLots recorre los lotes disponibles del artículo en orden FIFO descontando
// requested, marca vendido el lote que llega a cero y acumula el costo por tajada.
// El llamador ya validó la disponibilidad contra el RunningStock bloqueado.
func allocateLots(r LedgerRepos, itemID int64, requested int, log *logger.Logger, write sliceWriter) (decimal.Decimal, error) {
	lots, err := r.Lots.ListAvailableForUpdate(itemID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("listar lotes disponibles: %w", err)
	}

	now := time.Now()
	remaining := requested
	totalCost := decimal.Zero
	for _, lot := range lots {
		if remaining == 0 {
			break
		}
		taken := remaining
		if lot.Quantity < remaining {
			taken = lot.Quantity
		}
		lot.Quantity -= taken
		if lot.Quantity == 0 {
			lot.Sold = true
			soldAt := now
			lot.SoldAt = &soldAt
		}
		lot.UpdatedAt = now
		if err := r.Lots.Update(lot); err != nil {
			return decimal.Zero, fmt.Errorf("descontar lote %d: %w", lot.ID, err)
		}
		if err := write(lot, taken, now); err != nil {
			return decimal.Zero, err
		}
		totalCost = totalCost.Add(lot.Cost.Mul(decimal.NewFromInt(int64(taken))))
		remaining -= taken
	}
	if remaining > 0 {
		// El agregado decía que alcanzaba pero los lotes se agotaron: los libros
		// no concuerdan. Señal de defecto, nunca truncar la orden en silencio.
		log.Error().
			Int64("item_id", itemID).
			Int("requested", requested).
			Int("unallocated", remaining).
			Msg("lotes agotados con running stock suficiente")
		return decimal.Zero, fmt.Errorf("faltaron %d unidades por asignar: %w",
			remaining, domain.ErrLedgerInconsistent)
	}
	return totalCost, nil
}
