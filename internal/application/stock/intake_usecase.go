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
	"github.com/jcastellr/almacen-api/pkg/codes"
	"github.com/jcastellr/almacen-api/pkg/logger"
)

// IntakeUseCase gestiona el libro de entradas: artículos, lotes y sus mutaciones.
// Toda mutación de lote corre en una transacción y termina en el reconciliador.
type IntakeUseCase struct {
	tx         TxRunner
	items      repository.ItemRepository
	reconciler *Reconciler
	log        *logger.Logger
}

// NewIntakeUseCase construye el caso de uso de entradas.
func NewIntakeUseCase(tx TxRunner, items repository.ItemRepository, reconciler *Reconciler, log *logger.Logger) *IntakeUseCase {
	return &IntakeUseCase{tx: tx, items: items, reconciler: reconciler, log: log}
}

// CreateItemInput datos para registrar un artículo nuevo.
type CreateItemInput struct {
	Barcode       string
	Specification string
	Location      string
	Category      string
	ERMCode       string
}

// CreateItem registra un artículo y le asigna el siguiente código interno de la secuencia.
func (uc *IntakeUseCase) CreateItem(ctx context.Context, in CreateItemInput) (*entity.Item, error) {
	if in.Barcode == "" || in.Category == "" {
		return nil, domain.ErrInvalidInput
	}
	if existing, err := uc.items.GetByBarcode(in.Barcode); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}

	last, err := uc.items.LastCode()
	if err != nil {
		return nil, fmt.Errorf("último código emitido: %w", err)
	}
	code, err := codes.Next(last, in.Category)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	item := &entity.Item{
		Barcode:       in.Barcode,
		Code:          code,
		Specification: in.Specification,
		Location:      in.Location,
		Category:      in.Category,
		ERMCode:       in.ERMCode,
		CreatedAt:     time.Now(),
	}
	return uc.items.Create(item)
}

// AddStockInput datos para recibir un lote nuevo.
type AddStockInput struct {
	Barcode  string
	Quantity int
	Cost     decimal.Decimal
	ActorID  int64
}

// AddStock registra un lote de entrada para el artículo y reconcilia el stock corriente.
func (uc *IntakeUseCase) AddStock(ctx context.Context, in AddStockInput) (*entity.StockLot, error) {
	if in.Quantity <= 0 || in.Cost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.resolveItem(in.Barcode)
	if err != nil {
		return nil, err
	}

	var created *entity.StockLot
	err = uc.tx.Run(ctx, func(r LedgerRepos) error {
		now := time.Now()
		lot := &entity.StockLot{
			ItemID:            item.ID,
			Quantity:          in.Quantity,
			QuantityInitiated: in.Quantity,
			Cost:              in.Cost,
			CreatedBy:         in.ActorID,
			UpdatedBy:         in.ActorID,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		created, err = r.Lots.Create(lot)
		if err != nil {
			return fmt.Errorf("crear lote: %w", err)
		}
		_, err = uc.reconciler.Reconcile(r, item.ID, stockdom.Intake(in.Quantity))
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("barcode", item.Barcode).
		Int("quantity", in.Quantity).
		Msg("lote recibido")
	return created, nil
}

// UpdateStock sobrescribe cantidad y costo de un lote todavía no usado y
// recalcula el stock corriente en pleno. Un lote vendido es inmutable.
func (uc *IntakeUseCase) UpdateStock(ctx context.Context, lotID int64, quantity int, cost decimal.Decimal, actorID int64) (*entity.StockLot, error) {
	if quantity <= 0 || cost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.StockLot
	err := uc.tx.Run(ctx, func(r LedgerRepos) error {
		lot, err := r.Lots.GetForUpdate(lotID)
		if err != nil {
			return err
		}
		if lot == nil {
			return domain.ErrNotFound
		}
		if lot.InUse() {
			return fmt.Errorf("lote %d ya está en uso: %w", lotID, domain.ErrConflict)
		}
		lot.Quantity = quantity
		lot.QuantityInitiated = quantity
		lot.Cost = cost
		lot.UpdatedBy = actorID
		lot.UpdatedAt = time.Now()
		if err := r.Lots.Update(lot); err != nil {
			return fmt.Errorf("actualizar lote: %w", err)
		}
		updated = lot
		_, err = uc.reconciler.Reconcile(r, lot.ItemID, stockdom.FullRecompute())
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// RemoveStock borra un lote todavía no usado y resta su cantidad del total y del remanente.
func (uc *IntakeUseCase) RemoveStock(ctx context.Context, lotID int64) error {
	return uc.tx.Run(ctx, func(r LedgerRepos) error {
		lot, err := r.Lots.GetForUpdate(lotID)
		if err != nil {
			return err
		}
		if lot == nil {
			return domain.ErrNotFound
		}
		if lot.InUse() {
			return fmt.Errorf("lote %d ya está en uso: %w", lotID, domain.ErrConflict)
		}
		if err := r.Lots.Delete(lotID); err != nil {
			return fmt.Errorf("borrar lote: %w", err)
		}
		_, err = uc.reconciler.Reconcile(r, lot.ItemID, stockdom.Removal(lot.Quantity))
		return err
	})
}

// MarkCancelled marca un lote como cancelado (reversa de orden de compra validada):
// su cantidad inicial sale del remanente pero la historia queda intacta.
func (uc *IntakeUseCase) MarkCancelled(ctx context.Context, lotID int64) error {
	return uc.tx.Run(ctx, func(r LedgerRepos) error {
		lot, err := r.Lots.GetForUpdate(lotID)
		if err != nil {
			return err
		}
		if lot == nil {
			return domain.ErrNotFound
		}
		// Repetir la cancelación restaría dos veces la cantidad inicial.
		if lot.Cancelled {
			return fmt.Errorf("lote %d ya cancelado: %w", lotID, domain.ErrConflict)
		}
		lot.Cancelled = true
		lot.UpdatedAt = time.Now()
		if err := r.Lots.Update(lot); err != nil {
			return fmt.Errorf("cancelar lote: %w", err)
		}
		_, err = uc.reconciler.Reconcile(r, lot.ItemID, stockdom.Cancellation(lot.QuantityInitiated))
		return err
	})
}

// ListItems devuelve todos los artículos registrados.
func (uc *IntakeUseCase) ListItems(ctx context.Context) ([]entity.Item, error) {
	return uc.items.List()
}

// GetItem resuelve un artículo por código de barras.
func (uc *IntakeUseCase) GetItem(ctx context.Context, barcode string) (*entity.Item, error) {
	return uc.resolveItem(barcode)
}

func (uc *IntakeUseCase) resolveItem(barcode string) (*entity.Item, error) {
	item, err := uc.items.GetByBarcode(barcode)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("artículo %q: %w", barcode, domain.ErrNotFound)
	}
	return item, nil
}
