package stock

import (
	"fmt"
	"time"

	"github.com/jcastellr/almacen-api/internal/domain/entity"
	stockdom "github.com/jcastellr/almacen-api/internal/domain/stock"
	"github.com/jcastellr/almacen-api/pkg/logger"
)

// Reconciler mantiene el agregado RunningStock de cada artículo al día con los
// tres libros. Opera siempre dentro de la transacción del llamador (recibe los
// repos atados a la tx) y bloquea la fila del agregado antes de aplicar el delta.
//
// Contrato del llamador: invocar Reconcile exactamente una vez por mutación de
// libro; el delta no es idempotente bajo re-aplicación.
type Reconciler struct {
	log *logger.Logger
}

// NewReconciler construye el reconciliador.
func NewReconciler(log *logger.Logger) *Reconciler {
	return &Reconciler{log: log}
}

// Reconcile recalcula y persiste el RunningStock del artículo tras un cambio de libro.
func (rc *Reconciler) Reconcile(r LedgerRepos, itemID int64, d stockdom.Delta) (*entity.RunningStock, error) {
	totals, err := rc.ledgerTotals(r, itemID)
	if err != nil {
		return nil, err
	}

	current, err := r.Running.GetByItemForUpdate(itemID)
	if err != nil {
		return nil, fmt.Errorf("cargar running stock: %w", err)
	}

	updated := stockdom.Apply(current, itemID, totals, d, time.Now())

	saved, err := r.Running.Save(updated)
	if err != nil {
		return nil, fmt.Errorf("guardar running stock: %w", err)
	}
	rc.log.Debug().
		Int64("item_id", itemID).
		Int("remaining", saved.RemainingQuantity).
		Str("status", string(saved.Status)).
		Msg("running stock reconciliado")
	return saved, nil
}

// ledgerTotals arma la vista agregada de los tres libros para el artículo.
func (rc *Reconciler) ledgerTotals(r LedgerRepos, itemID int64) (stockdom.LedgerTotals, error) {
	var totals stockdom.LedgerTotals

	intake, err := r.Lots.GroupedTotals(itemID)
	if err != nil {
		return totals, fmt.Errorf("agrupar libro de entradas: %w", err)
	}
	totals.StockQuantity = intake.Quantity
	totals.StockValue = intake.Value

	outs, err := r.Outs.SumForItem(itemID)
	if err != nil {
		return totals, fmt.Errorf("agrupar libro de salidas: %w", err)
	}
	totals.OutValue = outs.Value

	adjs, err := r.Adjustments.SumForItem(itemID)
	if err != nil {
		return totals, fmt.Errorf("agrupar libro de ajustes: %w", err)
	}
	totals.AdjustmentValue = adjs.Value

	return totals, nil
}
