package order_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastellr/almacen-api/internal/application/order"
	"github.com/jcastellr/almacen-api/internal/application/stock"
	"github.com/jcastellr/almacen-api/internal/domain"
	"github.com/jcastellr/almacen-api/internal/domain/entity"
	"github.com/jcastellr/almacen-api/pkg/logger"
)

func newOrderFixture() (*world, *order.UseCase, *fakeNotifier) {
	w := newWorld()
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	tx := &wTx{w: w}
	items := &wItems{w: w}
	allocator := stock.NewConsumptionUseCase(tx, items, stock.NewReconciler(log), log)
	notifier := &fakeNotifier{}
	uc := order.NewUseCase(tx, items, &wRunning{w: w}, &wOrders{w: w}, allocator, notifier, log)
	return w, uc, notifier
}

func TestCreateOrder_AsignaYAdjuntaCosto(t *testing.T) {
	w, uc, notifier := newOrderFixture()
	it := w.seedStocked("BC-200", 20, "5")

	created, err := uc.CreateOrder(context.Background(), order.CreateOrderInput{
		Barcode:   "BC-200",
		Quantity:  15,
		JobNumber: "JOB-7",
		PartName:  "rodamiento",
		StaffID:   3,
	})
	require.NoError(t, err)

	assert.Equal(t, 20, created.AvailableQuantity, "foto del remanente al momento de ordenar")
	assert.True(t, created.TotalCost.Equal(decimal.RequireFromString("75")))
	assert.Equal(t, entity.OrderPartAvailable, created.Restriction)
	assert.Equal(t, int64(3), created.StaffID)

	persisted, err := uc.GetOrder(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, persisted.TotalCost.Equal(decimal.RequireFromString("75")),
		"el costo total debe quedar persistido en la misma transacción")

	require.Len(t, w.outs, 1)
	assert.Equal(t, created.ID, w.outs[0].OrderID)
	assert.Equal(t, 15, w.outs[0].Quantity)

	rs := w.running[it.ID]
	assert.Equal(t, 15, rs.OutQuantity)
	assert.Equal(t, 5, rs.RemainingQuantity)
	assert.Equal(t, entity.StatusReOrder, rs.Status)

	require.Len(t, notifier.alerts, 1, "quedó en reorden: debe encolarse la alerta")
	assert.Equal(t, "BC-200", notifier.alerts[0])
}

func TestCreateOrder_SinReorden_NoNotifica(t *testing.T) {
	w, uc, notifier := newOrderFixture()
	w.seedStocked("BC-201", 30, "2")

	_, err := uc.CreateOrder(context.Background(), order.CreateOrderInput{
		Barcode: "BC-201", Quantity: 10, JobNumber: "JOB-8", StaffID: 1,
	})
	require.NoError(t, err)
	assert.Empty(t, notifier.alerts, "remanente 20 sigue disponible: sin alerta")
}

func TestCreateOrder_SobreRemanente_NoPersisteNada(t *testing.T) {
	w, uc, notifier := newOrderFixture()
	w.seedStocked("BC-202", 20, "5")

	_, err := uc.CreateOrder(context.Background(), order.CreateOrderInput{
		Barcode: "BC-202", Quantity: 25, JobNumber: "JOB-9", StaffID: 1,
	})

	require.ErrorIs(t, err, domain.ErrOutOfStock)
	assert.Empty(t, w.orders)
	assert.Empty(t, w.outs)
	assert.Empty(t, notifier.alerts)
}

// El agregado decía que alcanzaba pero los lotes se agotaron: la reversión debe
// llevarse también la fila de la orden ya creada dentro de la transacción.
func TestCreateOrder_LibrosInconsistentes_RevierteLaOrden(t *testing.T) {
	w, uc, _ := newOrderFixture()
	it := w.seedStocked("BC-203", 20, "5")
	rs := w.running[it.ID]
	rs.StockQuantity = 50
	rs.RemainingQuantity = 50
	w.running[it.ID] = rs

	_, err := uc.CreateOrder(context.Background(), order.CreateOrderInput{
		Barcode: "BC-203", Quantity: 30, JobNumber: "JOB-10", StaffID: 1,
	})

	require.ErrorIs(t, err, domain.ErrLedgerInconsistent)
	assert.Empty(t, w.orders, "la orden parcial no debe sobrevivir la reversión")
	assert.Empty(t, w.outs)
}

func TestCreateOrder_EntradasInvalidas(t *testing.T) {
	w, uc, _ := newOrderFixture()
	w.seedStocked("BC-204", 20, "5")

	_, err := uc.CreateOrder(context.Background(), order.CreateOrderInput{
		Barcode: "BC-204", Quantity: 0, JobNumber: "JOB-11",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateOrder(context.Background(), order.CreateOrderInput{
		Barcode: "BC-204", Quantity: 1, JobNumber: "",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateOrder(context.Background(), order.CreateOrderInput{
		Barcode: "NO-EXISTE", Quantity: 1, JobNumber: "JOB-12",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCheckAvailability(t *testing.T) {
	w, uc, _ := newOrderFixture()
	w.seedStocked("BC-205", 8, "3")

	got, err := uc.CheckAvailability(context.Background(), "BC-205")
	require.NoError(t, err)
	assert.Equal(t, "BC-205", got.Barcode)
	assert.Equal(t, "rodamiento 6204", got.Specification)
	assert.Equal(t, "B-02", got.Location)
	assert.Equal(t, 8, got.Remaining)

	_, err = uc.CheckAvailability(context.Background(), "NO-EXISTE")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListOrders_FiltraPorFecha(t *testing.T) {
	w, uc, _ := newOrderFixture()
	day := func(d string) time.Time {
		parsed, err := time.Parse("2006-01-02", d)
		require.NoError(t, err)
		return parsed.Add(10 * time.Hour)
	}
	w.orders[w.id()] = entity.Order{ID: w.nextID, JobNumber: "J-1", CreatedAt: day("2026-08-01")}
	w.orders[w.id()] = entity.Order{ID: w.nextID, JobNumber: "J-2", CreatedAt: day("2026-08-10")}
	w.orders[w.id()] = entity.Order{ID: w.nextID, JobNumber: "J-3", CreatedAt: day("2026-08-20")}

	all, err := uc.ListOrders(context.Background(), "", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "J-3", all[0].JobNumber, "más recientes primero")

	ranged, err := uc.ListOrders(context.Background(), "2026-08-05", "2026-08-15")
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	assert.Equal(t, "J-2", ranged[0].JobNumber)

	_, err = uc.ListOrders(context.Background(), "05-08-2026", "")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El límite "to" cubre el día completo, incluido su último segundo.
func TestListOrders_ToIncluyeElDiaCompleto(t *testing.T) {
	w, uc, _ := newOrderFixture()
	at := func(s string) time.Time {
		parsed, err := time.Parse("2006-01-02 15:04:05", s)
		require.NoError(t, err)
		return parsed
	}
	w.orders[w.id()] = entity.Order{ID: w.nextID, JobNumber: "J-4", CreatedAt: at("2026-08-15 23:59:59").Add(500 * time.Millisecond)}
	w.orders[w.id()] = entity.Order{ID: w.nextID, JobNumber: "J-5", CreatedAt: at("2026-08-16 00:00:00")}

	got, err := uc.ListOrders(context.Background(), "2026-08-15", "2026-08-15")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "J-4", got[0].JobNumber)
}
