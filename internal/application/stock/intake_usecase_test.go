package stock_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastellr/almacen-api/internal/application/stock"
	"github.com/jcastellr/almacen-api/internal/domain"
	"github.com/jcastellr/almacen-api/internal/domain/entity"
)

func TestCreateItem_AsignaCodigoSecuencial(t *testing.T) {
	f := newFixture()

	first, err := f.intake.CreateItem(context.Background(), stock.CreateItemInput{
		Barcode:  "BC-100",
		Category: "bearings",
		Location: "A-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "SKB-1", first.Code)

	second, err := f.intake.CreateItem(context.Background(), stock.CreateItemInput{
		Barcode:  "BC-101",
		Category: "bearings",
	})
	require.NoError(t, err)
	assert.Equal(t, "SKB-2", second.Code, "el consecutivo continúa desde el último emitido")
}

func TestCreateItem_BarcodeDuplicado(t *testing.T) {
	f := newFixture()
	seedItem(f.store, "BC-102", "valves")

	_, err := f.intake.CreateItem(context.Background(), stock.CreateItemInput{
		Barcode:  "BC-102",
		Category: "valves",
	})
	require.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestAddStock_CreaLoteYReconcilia(t *testing.T) {
	f := newFixture()
	it := seedItem(f.store, "BC-103", "seals")

	lot := f.addStock(t, "BC-103", 12, "3.50")

	assert.Equal(t, 12, lot.Quantity)
	assert.Equal(t, 12, lot.QuantityInitiated)
	assert.False(t, lot.Sold)

	rs := f.running(t, it.ID)
	assert.Equal(t, 12, rs.StockQuantity)
	assert.Equal(t, 12, rs.RemainingQuantity)
	assert.Equal(t, entity.StatusAvailable, rs.Status)
	assert.True(t, rs.Cost.Equal(decimal.RequireFromString("42")),
		"valor neto = 12 * 3.50")
	assertConservation(t, rs)
}

func TestAddStock_EntradaInvalida(t *testing.T) {
	f := newFixture()
	seedItem(f.store, "BC-104", "seals")

	_, err := f.intake.AddStock(context.Background(), stock.AddStockInput{
		Barcode: "BC-104", Quantity: 0, Cost: decimal.NewFromInt(1),
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.intake.AddStock(context.Background(), stock.AddStockInput{
		Barcode: "BC-104", Quantity: 3, Cost: decimal.NewFromInt(-1),
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.intake.AddStock(context.Background(), stock.AddStockInput{
		Barcode: "NO-EXISTE", Quantity: 3, Cost: decimal.NewFromInt(1),
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStock_SobrescribeYRecalcula(t *testing.T) {
	f := newFixture()
	it := seedItem(f.store, "BC-105", "filters")
	lot := f.addStock(t, "BC-105", 20, "5")

	updated, err := f.intake.UpdateStock(context.Background(), lot.ID, 8, decimal.NewFromInt(6), 3)
	require.NoError(t, err)
	assert.Equal(t, 8, updated.Quantity)
	assert.Equal(t, 8, updated.QuantityInitiated)
	assert.Equal(t, int64(3), updated.UpdatedBy)

	rs := f.running(t, it.ID)
	assert.Equal(t, 8, rs.RemainingQuantity, "el recálculo completo parte del libro de entradas")
	assert.True(t, rs.Cost.Equal(decimal.RequireFromString("48")))
}

// Un lote vendido es inmutable: ni se sobrescribe ni se borra.
func TestUpdateStock_LoteEnUso_Conflicto(t *testing.T) {
	f := newFixture()
	seedItem(f.store, "BC-106", "filters")
	lot := f.addStock(t, "BC-106", 5, "5")
	_, err := f.consumption.Consume(context.Background(), "BC-106", 5, 1)
	require.NoError(t, err)

	_, err = f.intake.UpdateStock(context.Background(), lot.ID, 9, decimal.NewFromInt(1), 3)
	require.ErrorIs(t, err, domain.ErrConflict)

	got := f.store.lots[lot.ID]
	assert.Equal(t, 0, got.Quantity, "el lote vendido debe quedar intacto")
	assert.True(t, got.Sold)

	err = f.intake.RemoveStock(context.Background(), lot.ID)
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestRemoveStock_RestaDelTotalYDelRemanente(t *testing.T) {
	f := newFixture()
	it := seedItem(f.store, "BC-107", "gaskets")
	f.addStock(t, "BC-107", 10, "2")
	lot2 := f.addStock(t, "BC-107", 5, "2")

	require.NoError(t, f.intake.RemoveStock(context.Background(), lot2.ID))

	_, exists := f.store.lots[lot2.ID]
	assert.False(t, exists)
	rs := f.running(t, it.ID)
	assert.Equal(t, 10, rs.StockQuantity)
	assert.Equal(t, 10, rs.RemainingQuantity)
	assertConservation(t, rs)
}

// Cancelar un lote (reversa de orden de compra) saca su cantidad inicial del
// remanente pero conserva la historia: el lote sigue existiendo, marcado.
func TestMarkCancelled_SacaDelRemanente(t *testing.T) {
	f := newFixture()
	it := seedItem(f.store, "BC-108", "valves")
	f.addStock(t, "BC-108", 20, "4")
	lot2 := f.addStock(t, "BC-108", 10, "4")

	require.NoError(t, f.intake.MarkCancelled(context.Background(), lot2.ID))

	got := f.store.lots[lot2.ID]
	assert.True(t, got.Cancelled)
	rs := f.running(t, it.ID)
	assert.Equal(t, 20, rs.RemainingQuantity)
	assert.Equal(t, 30, rs.StockQuantity, "el total histórico no cambia al cancelar")
}

// Repetir la cancelación de un lote ya cancelado restaría su cantidad
// inicial dos veces del remanente.
func TestMarkCancelled_Repetido_Conflicto(t *testing.T) {
	f := newFixture()
	it := seedItem(f.store, "BC-113", "bearings")
	lot := f.addStock(t, "BC-113", 10, "4")

	require.NoError(t, f.intake.MarkCancelled(context.Background(), lot.ID))
	err := f.intake.MarkCancelled(context.Background(), lot.ID)
	require.ErrorIs(t, err, domain.ErrConflict)

	rs := f.running(t, it.ID)
	assert.Equal(t, 0, rs.RemainingQuantity, "la resta se aplica una sola vez")
	assert.Equal(t, 10, rs.StockQuantity)
}

func TestIntake_LoteInexistente(t *testing.T) {
	f := newFixture()

	_, err := f.intake.UpdateStock(context.Background(), 77, 1, decimal.NewFromInt(1), 1)
	require.ErrorIs(t, err, domain.ErrNotFound)

	err = f.intake.RemoveStock(context.Background(), 77)
	require.ErrorIs(t, err, domain.ErrNotFound)

	err = f.intake.MarkCancelled(context.Background(), 77)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListItems_DevuelveRegistrados(t *testing.T) {
	f := newFixture()
	seedItem(f.store, "BC-109", "seals")
	seedItem(f.store, "BC-110", "seals")

	items, err := f.intake.ListItems(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)

	got, err := f.intake.GetItem(context.Background(), "BC-109")
	require.NoError(t, err)
	assert.Equal(t, "BC-109", got.Barcode)
}
