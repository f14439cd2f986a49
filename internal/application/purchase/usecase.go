// Package purchase gestiona el ciclo de vida de las órdenes de compra: edición
// solo en borrador, validación que crea los lotes de entrada y cancelación que
// los reversa.
package purchase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastellr/almacen-api/internal/application/stock"
	"github.com/jcastellr/almacen-api/internal/domain"
	"github.com/jcastellr/almacen-api/internal/domain/entity"
	"github.com/jcastellr/almacen-api/internal/domain/repository"
	"github.com/jcastellr/almacen-api/pkg/logger"
)

// StockIntake es el puerto hacia el libro de entradas: validar una orden de
// compra recibe lotes y cancelarla los marca cancelados.
type StockIntake interface {
	AddStock(ctx context.Context, in stock.AddStockInput) (*entity.StockLot, error)
	MarkCancelled(ctx context.Context, lotID int64) error
}

var validStates = map[string]bool{
	entity.POStateDraft:     true,
	entity.POStateSubmitted: true,
	entity.POStateValidated: true,
	entity.POStateCanceled:  true,
}

// UseCase casos de uso de órdenes de compra.
type UseCase struct {
	pos    repository.PurchaseOrderRepository
	items  repository.ItemRepository
	intake StockIntake
	log    *logger.Logger
}

// NewUseCase construye el caso de uso de órdenes de compra.
func NewUseCase(pos repository.PurchaseOrderRepository, items repository.ItemRepository, intake StockIntake, log *logger.Logger) *UseCase {
	return &UseCase{pos: pos, items: items, intake: intake, log: log}
}

// ItemInput una línea de la orden de compra.
type ItemInput struct {
	ItemID      int64
	Quantity    int
	Price       decimal.Decimal
	RequestedBy int64
}

// CreateInput datos para abrir una orden de compra en borrador.
type CreateInput struct {
	SupplierName string
	CreatedBy    int64
	Items        []ItemInput
}

// Create abre la orden en borrador con sus líneas iniciales.
func (uc *UseCase) Create(ctx context.Context, in CreateInput) (*entity.PurchaseOrder, error) {
	if in.SupplierName == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	po := &entity.PurchaseOrder{
		SupplierName: in.SupplierName,
		State:        entity.POStateDraft,
		CreatedBy:    in.CreatedBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, it := range in.Items {
		if it.Quantity <= 0 || it.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		if err := uc.checkItem(it.ItemID); err != nil {
			return nil, err
		}
		po.Items = append(po.Items, entity.PurchaseOrderItem{
			ItemID:      it.ItemID,
			Quantity:    it.Quantity,
			Price:       it.Price,
			RequestedBy: it.RequestedBy,
		})
	}
	return uc.pos.Create(po)
}

// Get devuelve la orden con sus líneas.
func (uc *UseCase) Get(ctx context.Context, id int64) (*entity.PurchaseOrder, error) {
	return uc.resolve(id)
}

// List devuelve todas las órdenes de compra, más recientes primero.
func (uc *UseCase) List(ctx context.Context) ([]entity.PurchaseOrder, error) {
	return uc.pos.List()
}

// Update modifica el encabezado; solo permitido en borrador.
func (uc *UseCase) Update(ctx context.Context, id int64, supplierName string) (*entity.PurchaseOrder, error) {
	if supplierName == "" {
		return nil, domain.ErrInvalidInput
	}
	po, err := uc.resolveDraft(id)
	if err != nil {
		return nil, err
	}
	po.SupplierName = supplierName
	po.UpdatedAt = time.Now()
	if err := uc.pos.Update(po); err != nil {
		return nil, err
	}
	return po, nil
}

// Delete borra la orden; solo permitido en borrador.
func (uc *UseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.resolveDraft(id); err != nil {
		return err
	}
	return uc.pos.Delete(id)
}

// AddItem agrega una línea; solo permitido en borrador.
func (uc *UseCase) AddItem(ctx context.Context, poID int64, in ItemInput) (*entity.PurchaseOrderItem, error) {
	if in.Quantity <= 0 || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.resolveDraft(poID); err != nil {
		return nil, err
	}
	if err := uc.checkItem(in.ItemID); err != nil {
		return nil, err
	}
	return uc.pos.AddItem(&entity.PurchaseOrderItem{
		PurchaseOrderID: poID,
		ItemID:          in.ItemID,
		Quantity:        in.Quantity,
		Price:           in.Price,
		RequestedBy:     in.RequestedBy,
	})
}

// UpdateItem modifica una línea; solo permitido en borrador.
func (uc *UseCase) UpdateItem(ctx context.Context, poID, itemLineID int64, in ItemInput) error {
	if in.Quantity <= 0 || in.Price.IsNegative() {
		return domain.ErrInvalidInput
	}
	if _, err := uc.resolveDraft(poID); err != nil {
		return err
	}
	if err := uc.checkItem(in.ItemID); err != nil {
		return err
	}
	return uc.pos.UpdateItem(&entity.PurchaseOrderItem{
		ID:              itemLineID,
		PurchaseOrderID: poID,
		ItemID:          in.ItemID,
		Quantity:        in.Quantity,
		Price:           in.Price,
		RequestedBy:     in.RequestedBy,
	})
}

// DeleteItem quita una línea; solo permitido en borrador.
func (uc *UseCase) DeleteItem(ctx context.Context, poID, itemLineID int64) error {
	if _, err := uc.resolveDraft(poID); err != nil {
		return err
	}
	return uc.pos.DeleteItem(itemLineID)
}

// UpdateState mueve la orden de estado. Validar recibe un lote de entrada por
// línea y lo enlaza; cancelar una orden ya validada marca cancelado cada lote
// creado. Una orden cancelada es terminal, y una validada solo admite cancelar.
func (uc *UseCase) UpdateState(ctx context.Context, id int64, newState string) (*entity.PurchaseOrder, error) {
	if !validStates[newState] {
		return nil, fmt.Errorf("estado %q desconocido: %w", newState, domain.ErrInvalidInput)
	}
	po, err := uc.resolve(id)
	if err != nil {
		return nil, err
	}

	switch po.State {
	case entity.POStateCanceled:
		return nil, fmt.Errorf("orden de compra %d ya cancelada: %w", id, domain.ErrConflict)
	case entity.POStateValidated:
		if newState != entity.POStateCanceled {
			return nil, fmt.Errorf("orden de compra %d ya validada: %w", id, domain.ErrConflict)
		}
		if err := uc.cancelValidated(ctx, po); err != nil {
			return nil, err
		}
	default:
		if newState == entity.POStateValidated {
			if err := uc.receiveLots(ctx, po); err != nil {
				return nil, err
			}
		}
	}

	if err := uc.pos.UpdateState(id, newState); err != nil {
		return nil, err
	}
	uc.log.Info().
		Int64("purchase_order_id", id).
		Str("from", po.State).
		Str("to", newState).
		Msg("orden de compra cambió de estado")
	return uc.resolve(id)
}

// receiveLots crea un lote de entrada por línea y lo enlaza a la línea.
func (uc *UseCase) receiveLots(ctx context.Context, po *entity.PurchaseOrder) error {
	for i := range po.Items {
		line := &po.Items[i]
		item, err := uc.items.GetByID(line.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return fmt.Errorf("artículo %d: %w", line.ItemID, domain.ErrNotFound)
		}
		lot, err := uc.intake.AddStock(ctx, stock.AddStockInput{
			Barcode:  item.Barcode,
			Quantity: line.Quantity,
			Cost:     line.Price,
			ActorID:  line.RequestedBy,
		})
		if err != nil {
			return fmt.Errorf("recibir lote de la línea %d: %w", line.ID, err)
		}
		line.StockLotID = &lot.ID
		if err := uc.pos.UpdateItem(line); err != nil {
			return err
		}
	}
	return nil
}

// cancelValidated reversa los lotes creados al validar. El enlace se limpia
// antes de cancelar; si la cancelación falla, el enlace se repone.
func (uc *UseCase) cancelValidated(ctx context.Context, po *entity.PurchaseOrder) error {
	for i := range po.Items {
		line := &po.Items[i]
		if line.StockLotID == nil {
			continue
		}
		lotID := *line.StockLotID
		line.StockLotID = nil
		if err := uc.pos.UpdateItem(line); err != nil {
			return err
		}
		if err := uc.intake.MarkCancelled(ctx, lotID); err != nil {
			line.StockLotID = &lotID
			if uerr := uc.pos.UpdateItem(line); uerr != nil {
				uc.log.Error().Err(uerr).Int64("line_id", line.ID).Msg("no se pudo reponer el enlace al lote")
			}
			return fmt.Errorf("cancelar lote %d: %w", lotID, err)
		}
	}
	return nil
}

func (uc *UseCase) resolve(id int64) (*entity.PurchaseOrder, error) {
	po, err := uc.pos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, fmt.Errorf("orden de compra %d: %w", id, domain.ErrNotFound)
	}
	return po, nil
}

func (uc *UseCase) resolveDraft(id int64) (*entity.PurchaseOrder, error) {
	po, err := uc.resolve(id)
	if err != nil {
		return nil, err
	}
	if po.State != entity.POStateDraft {
		return nil, fmt.Errorf("orden de compra %d no está en borrador: %w", id, domain.ErrConflict)
	}
	return po, nil
}

func (uc *UseCase) checkItem(itemID int64) error {
	item, err := uc.items.GetByID(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return fmt.Errorf("artículo %d: %w", itemID, domain.ErrNotFound)
	}
	return nil
}
