// Package order orquesta las solicitudes de material: valida disponibilidad,
// delega la asignación al libro de salidas y dispara la alerta de reorden.
package order

import (
	"context"
	"fmt"
	"time"

	"github.com/jcastellr/almacen-api/internal/application/stock"
	"github.com/jcastellr/almacen-api/internal/domain"
	"github.com/jcastellr/almacen-api/internal/domain/entity"
	"github.com/jcastellr/almacen-api/internal/domain/repository"
	"github.com/jcastellr/almacen-api/pkg/logger"
)

// Notifier encola la alerta de reorden de un artículo. La entrega corre fuera
// del camino de la orden: encolar nunca falla ni bloquea.
type Notifier interface {
	ReorderAlert(item entity.Item, remaining int)
}

// UseCase crea y consulta órdenes de material. La creación comparte una sola
// transacción con el asignador de consumo: o queda la orden con sus salidas y
// el stock corriente reconciliado, o no queda nada.
type UseCase struct {
	tx        stock.TxRunner
	items     repository.ItemRepository
	running   repository.RunningStockRepository
	orders    repository.OrderRepository
	allocator *stock.ConsumptionUseCase
	notifier  Notifier
	log       *logger.Logger
}

// NewUseCase construye el orquestador de órdenes.
func NewUseCase(
	tx stock.TxRunner,
	items repository.ItemRepository,
	running repository.RunningStockRepository,
	orders repository.OrderRepository,
	allocator *stock.ConsumptionUseCase,
	notifier Notifier,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		tx:        tx,
		items:     items,
		running:   running,
		orders:    orders,
		allocator: allocator,
		notifier:  notifier,
		log:       log,
	}
}

// CreateOrderInput datos para crear una orden de material.
type CreateOrderInput struct {
	Barcode   string
	Quantity  int
	JobNumber string
	PartName  string
	StaffID   int64
}

// CreateOrder valida disponibilidad, persiste la orden con la foto del remanente,
// asigna contra los lotes y le adjunta el costo total, todo en una transacción.
// Si el stock corriente resultante queda en reorden, encola la alerta después de
// confirmar: un fallo de notificación jamás revierte la orden.
func (uc *UseCase) CreateOrder(ctx context.Context, in CreateOrderInput) (*entity.Order, error) {
	if in.Quantity <= 0 || in.JobNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.items.GetByBarcode(in.Barcode)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("artículo %q: %w", in.Barcode, domain.ErrNotFound)
	}

	var (
		created *entity.Order
		reorder bool
		left    int
	)
	err = uc.tx.Run(ctx, func(r stock.LedgerRepos) error {
		running, err := r.Running.GetByItemForUpdate(item.ID)
		if err != nil {
			return fmt.Errorf("cargar running stock: %w", err)
		}
		if running == nil {
			return fmt.Errorf("artículo %q sin inventario: %w", in.Barcode, domain.ErrNotFound)
		}
		if in.Quantity > running.RemainingQuantity {
			return fmt.Errorf("solicitado %d, remanente %d: %w",
				in.Quantity, running.RemainingQuantity, domain.ErrOutOfStock)
		}

		created, err = r.Orders.Create(&entity.Order{
			ItemID:            item.ID,
			StaffID:           in.StaffID,
			JobNumber:         in.JobNumber,
			PartName:          in.PartName,
			Quantity:          in.Quantity,
			AvailableQuantity: running.RemainingQuantity,
			Restriction:       entity.OrderPartAvailable,
			CreatedAt:         time.Now(),
		})
		if err != nil {
			return fmt.Errorf("crear orden: %w", err)
		}

		total, updated, err := uc.allocator.AllocateInTx(r, item.ID, in.Quantity, created.ID)
		if err != nil {
			return err
		}
		created.TotalCost = total
		if err := r.Orders.Update(created); err != nil {
			return fmt.Errorf("adjuntar costo total: %w", err)
		}
		reorder = updated.Status == entity.StatusReOrder
		left = updated.RemainingQuantity
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("barcode", item.Barcode).
		Str("job_number", in.JobNumber).
		Int("quantity", in.Quantity).
		Str("total_cost", created.TotalCost.String()).
		Msg("orden creada")

	if reorder {
		uc.notifier.ReorderAlert(*item, left)
	}
	return created, nil
}

// Availability es la vista de disponibilidad de un artículo para el mostrador.
type Availability struct {
	Barcode       string
	Specification string
	Location      string
	Status        entity.Status
	Remaining     int
}

// CheckAvailability consulta el remanente corriente de un artículo por código de barras.
func (uc *UseCase) CheckAvailability(ctx context.Context, barcode string) (*Availability, error) {
	item, err := uc.items.GetByBarcode(barcode)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("artículo %q: %w", barcode, domain.ErrNotFound)
	}
	running, err := uc.running.GetByItem(item.ID)
	if err != nil {
		return nil, err
	}
	if running == nil {
		return nil, fmt.Errorf("artículo %q sin inventario: %w", barcode, domain.ErrNotFound)
	}
	return &Availability{
		Barcode:       item.Barcode,
		Specification: item.Specification,
		Location:      item.Location,
		Status:        running.Status,
		Remaining:     running.RemainingQuantity,
	}, nil
}

// GetOrder devuelve una orden por id.
func (uc *UseCase) GetOrder(ctx context.Context, id int64) (*entity.Order, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("orden %d: %w", id, domain.ErrNotFound)
	}
	return order, nil
}

// ListOrders devuelve las órdenes más recientes primero. from/to son fechas
// "2006-01-02" opcionales; from acota desde la medianoche y to cubre el día
// completo (el límite superior pasa exclusivo a la medianoche siguiente).
func (uc *UseCase) ListOrders(ctx context.Context, fromStr, toStr string) ([]entity.Order, error) {
	var from, to time.Time
	if fromStr != "" {
		parsed, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return nil, fmt.Errorf("fecha from %q: %w", fromStr, domain.ErrInvalidInput)
		}
		from = parsed
	}
	if toStr != "" {
		parsed, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return nil, fmt.Errorf("fecha to %q: %w", toStr, domain.ErrInvalidInput)
		}
		to = parsed.AddDate(0, 0, 1)
	}
	return uc.orders.List(from, to)
}
