package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/jcastellr/almacen-api/internal/domain"
	"github.com/jcastellr/almacen-api/internal/domain/entity"
	"github.com/jcastellr/almacen-api/internal/domain/repository"
	stockdom "github.com/jcastellr/almacen-api/internal/domain/stock"
	"github.com/jcastellr/almacen-api/pkg/logger"
)

// AdjustmentUseCase gestiona el libro de ajustes manuales. Crear un ajuste asigna
// la cantidad contra los lotes igual que el consumo, pero escribiendo entradas de
// ajuste atribuidas a un departamento.
type AdjustmentUseCase struct {
	tx         TxRunner
	items      repository.ItemRepository
	reconciler *Reconciler
	log        *logger.Logger
}

// NewAdjustmentUseCase construye el caso de uso de ajustes.
func NewAdjustmentUseCase(tx TxRunner, items repository.ItemRepository, reconciler *Reconciler, log *logger.Logger) *AdjustmentUseCase {
	return &AdjustmentUseCase{tx: tx, items: items, reconciler: reconciler, log: log}
}

// CreateAdjustmentInput datos para registrar un ajuste manual.
type CreateAdjustmentInput struct {
	Barcode      string
	Quantity     int
	DepartmentID int64
	ActorID      int64
}

// Create registra un ajuste: valida contra el remanente corriente, descuenta de
// los lotes más viejos primero y reconcilia con el total agrupado de ajustes.
func (uc *AdjustmentUseCase) Create(ctx context.Context, in CreateAdjustmentInput) ([]entity.StockAdjustmentEntry, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.items.GetByBarcode(in.Barcode)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("artículo %q: %w", in.Barcode, domain.ErrNotFound)
	}

	var created []entity.StockAdjustmentEntry
	err = uc.tx.Run(ctx, func(r LedgerRepos) error {
		running, err := r.Running.GetByItemForUpdate(item.ID)
		if err != nil {
			return fmt.Errorf("cargar running stock: %w", err)
		}
		if running == nil {
			return fmt.Errorf("artículo %q sin stock: %w", in.Barcode, domain.ErrNotFound)
		}
		if in.Quantity > running.RemainingQuantity {
			return fmt.Errorf("ajuste %d supera el remanente %d: %w",
				in.Quantity, running.RemainingQuantity, domain.ErrInvalidInput)
		}

		_, err = allocateLots(r, item.ID, in.Quantity, uc.log, func(lot *entity.StockLot, taken int, now time.Time) error {
			entry, err := r.Adjustments.Create(&entity.StockAdjustmentEntry{
				ItemID:       item.ID,
				DepartmentID: in.DepartmentID,
				Quantity:     taken,
				Cost:         lot.Cost,
				CreatedBy:    in.ActorID,
				UpdatedBy:    in.ActorID,
				CreatedAt:    now,
				UpdatedAt:    now,
			})
			if err != nil {
				return fmt.Errorf("registrar ajuste: %w", err)
			}
			created = append(created, *entry)
			return nil
		})
		if err != nil {
			return err
		}

		sum, err := r.Adjustments.SumForItem(item.ID)
		if err != nil {
			return fmt.Errorf("agrupar ajustes: %w", err)
		}
		_, err = uc.reconciler.Reconcile(r, item.ID, stockdom.Adjustment(sum.Quantity, in.Quantity))
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("barcode", item.Barcode).
		Int("quantity", in.Quantity).
		Int64("department_id", in.DepartmentID).
		Msg("ajuste registrado")
	return created, nil
}

// Update sobrescribe cantidad y departamento de un ajuste existente y reconcilia
// con el nuevo total agrupado. No re-valida contra los lotes ni vuelve a recorrer
// la asignación: es un reemplazo en sitio; el delta aplicado al remanente es la
// diferencia contra la cantidad anterior.
func (uc *AdjustmentUseCase) Update(ctx context.Context, id int64, quantity int, departmentID, actorID int64) (*entity.StockAdjustmentEntry, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.StockAdjustmentEntry
	err := uc.tx.Run(ctx, func(r LedgerRepos) error {
		adj, err := r.Adjustments.GetByID(id)
		if err != nil {
			return err
		}
		if adj == nil {
			return fmt.Errorf("ajuste %d: %w", id, domain.ErrNotFound)
		}
		previous := adj.Quantity
		adj.Quantity = quantity
		adj.DepartmentID = departmentID
		adj.UpdatedBy = actorID
		adj.UpdatedAt = time.Now()
		if err := r.Adjustments.Update(adj); err != nil {
			return fmt.Errorf("actualizar ajuste: %w", err)
		}
		updated = adj

		sum, err := r.Adjustments.SumForItem(adj.ItemID)
		if err != nil {
			return fmt.Errorf("agrupar ajustes: %w", err)
		}
		_, err = uc.reconciler.Reconcile(r, adj.ItemID, stockdom.Adjustment(sum.Quantity, quantity-previous))
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete borra un ajuste. Si era el último del artículo, la contribución de
// ajustes se restablece a cero; si quedan otros, se reconcilia con el nuevo total
// devolviendo la cantidad borrada al remanente.
func (uc *AdjustmentUseCase) Delete(ctx context.Context, id int64) error {
	return uc.tx.Run(ctx, func(r LedgerRepos) error {
		adj, err := r.Adjustments.GetByID(id)
		if err != nil {
			return err
		}
		if adj == nil {
			return fmt.Errorf("ajuste %d: %w", id, domain.ErrNotFound)
		}
		if err := r.Adjustments.Delete(id); err != nil {
			return fmt.Errorf("borrar ajuste: %w", err)
		}
		count, err := r.Adjustments.CountForItem(adj.ItemID)
		if err != nil {
			return fmt.Errorf("contar ajustes: %w", err)
		}
		if count == 0 {
			_, err = uc.reconciler.Reconcile(r, adj.ItemID, stockdom.AdjustmentReset())
			return err
		}
		sum, err := r.Adjustments.SumForItem(adj.ItemID)
		if err != nil {
			return fmt.Errorf("agrupar ajustes: %w", err)
		}
		_, err = uc.reconciler.Reconcile(r, adj.ItemID, stockdom.Adjustment(sum.Quantity, -adj.Quantity))
		return err
	})
}

// List devuelve todos los ajustes registrados, más recientes primero.
func (uc *AdjustmentUseCase) List(ctx context.Context) ([]entity.StockAdjustmentEntry, error) {
	var out []entity.StockAdjustmentEntry
	err := uc.tx.Run(ctx, func(r LedgerRepos) error {
		adjs, err := r.Adjustments.List()
		if err != nil {
			return err
		}
		out = adjs
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
