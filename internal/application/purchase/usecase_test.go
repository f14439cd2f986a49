package purchase_test

import (
	"context"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastellr/almacen-api/internal/application/purchase"
	"github.com/jcastellr/almacen-api/internal/application/stock"
	"github.com/jcastellr/almacen-api/internal/domain"
	"github.com/jcastellr/almacen-api/internal/domain/entity"
	"github.com/jcastellr/almacen-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memPOs struct {
	nextID int64
	pos    map[int64]entity.PurchaseOrder
	lines  map[int64]entity.PurchaseOrderItem
}

func newMemPOs() *memPOs {
	return &memPOs{pos: map[int64]entity.PurchaseOrder{}, lines: map[int64]entity.PurchaseOrderItem{}}
}

func (m *memPOs) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memPOs) Create(po *entity.PurchaseOrder) (*entity.PurchaseOrder, error) {
	po.ID = m.id()
	for i := range po.Items {
		po.Items[i].ID = m.id()
		po.Items[i].PurchaseOrderID = po.ID
		m.lines[po.Items[i].ID] = po.Items[i]
	}
	stored := *po
	stored.Items = nil
	m.pos[po.ID] = stored
	return po, nil
}

func (m *memPOs) GetByID(id int64) (*entity.PurchaseOrder, error) {
	po, ok := m.pos[id]
	if !ok {
		return nil, nil
	}
	for _, l := range m.lines {
		if l.PurchaseOrderID == id {
			po.Items = append(po.Items, l)
		}
	}
	sort.Slice(po.Items, func(i, j int) bool { return po.Items[i].ID < po.Items[j].ID })
	return &po, nil
}

func (m *memPOs) Update(po *entity.PurchaseOrder) error {
	stored := *po
	stored.Items = nil
	m.pos[po.ID] = stored
	return nil
}

func (m *memPOs) UpdateState(id int64, state string) error {
	po := m.pos[id]
	po.State = state
	m.pos[id] = po
	return nil
}

func (m *memPOs) Delete(id int64) error {
	delete(m.pos, id)
	return nil
}

func (m *memPOs) List() ([]entity.PurchaseOrder, error) {
	out := make([]entity.PurchaseOrder, 0, len(m.pos))
	for _, po := range m.pos {
		out = append(out, po)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memPOs) AddItem(item *entity.PurchaseOrderItem) (*entity.PurchaseOrderItem, error) {
	item.ID = m.id()
	m.lines[item.ID] = *item
	return item, nil
}

func (m *memPOs) UpdateItem(item *entity.PurchaseOrderItem) error {
	m.lines[item.ID] = *item
	return nil
}

func (m *memPOs) DeleteItem(id int64) error {
	delete(m.lines, id)
	return nil
}

type memItems struct{ byID map[int64]entity.Item }

func (m *memItems) Create(item *entity.Item) (*entity.Item, error) { return item, nil }
func (m *memItems) GetByID(id int64) (*entity.Item, error) {
	if it, ok := m.byID[id]; ok {
		return &it, nil
	}
	return nil, nil
}
func (m *memItems) GetByBarcode(string) (*entity.Item, error) { return nil, nil }
func (m *memItems) List() ([]entity.Item, error)              { return nil, nil }
func (m *memItems) LastCode() (string, error)                 { return "", nil }

// fakeIntake registra los lotes recibidos y cancelados por el ciclo de vida.
type fakeIntake struct {
	nextLotID int64
	received  []stock.AddStockInput
	cancelled []int64
	failNext  bool
}

func (f *fakeIntake) AddStock(_ context.Context, in stock.AddStockInput) (*entity.StockLot, error) {
	if f.failNext {
		return nil, domain.ErrNotFound
	}
	f.nextLotID++
	f.received = append(f.received, in)
	return &entity.StockLot{ID: f.nextLotID, Quantity: in.Quantity, QuantityInitiated: in.Quantity, Cost: in.Cost}, nil
}

func (f *fakeIntake) MarkCancelled(_ context.Context, lotID int64) error {
	f.cancelled = append(f.cancelled, lotID)
	return nil
}

func newPOFixture() (*memPOs, *fakeIntake, *purchase.UseCase) {
	pos := newMemPOs()
	items := &memItems{byID: map[int64]entity.Item{
		1: {ID: 1, Barcode: "BC-400"},
		2: {ID: 2, Barcode: "BC-401"},
	}}
	intake := &fakeIntake{}
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return pos, intake, purchase.NewUseCase(pos, items, intake, log)
}

func draftPO(t *testing.T, uc *purchase.UseCase) *entity.PurchaseOrder {
	t.Helper()
	po, err := uc.Create(context.Background(), purchase.CreateInput{
		SupplierName: "Suministros del Norte",
		CreatedBy:    1,
		Items: []purchase.ItemInput{
			{ItemID: 1, Quantity: 20, Price: decimal.RequireFromString("5"), RequestedBy: 1},
			{ItemID: 2, Quantity: 10, Price: decimal.RequireFromString("3"), RequestedBy: 1},
		},
	})
	require.NoError(t, err)
	return po
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_AbreEnBorrador(t *testing.T) {
	_, _, uc := newPOFixture()
	po := draftPO(t, uc)

	assert.Equal(t, entity.POStateDraft, po.State)
	require.Len(t, po.Items, 2)
	assert.Nil(t, po.Items[0].StockLotID)
}

func TestValidate_RecibeUnLotePorLinea(t *testing.T) {
	_, intake, uc := newPOFixture()
	po := draftPO(t, uc)

	validated, err := uc.UpdateState(context.Background(), po.ID, entity.POStateValidated)
	require.NoError(t, err)

	assert.Equal(t, entity.POStateValidated, validated.State)
	require.Len(t, intake.received, 2)
	assert.Equal(t, "BC-400", intake.received[0].Barcode)
	assert.Equal(t, 20, intake.received[0].Quantity)
	assert.True(t, intake.received[0].Cost.Equal(decimal.RequireFromString("5")),
		"el costo del lote es el precio de la línea")

	for _, line := range validated.Items {
		require.NotNil(t, line.StockLotID, "cada línea queda enlazada a su lote")
	}
}

func TestCancelValidated_MarcaLosLotesCancelados(t *testing.T) {
	_, intake, uc := newPOFixture()
	po := draftPO(t, uc)
	validated, err := uc.UpdateState(context.Background(), po.ID, entity.POStateValidated)
	require.NoError(t, err)

	canceled, err := uc.UpdateState(context.Background(), validated.ID, entity.POStateCanceled)
	require.NoError(t, err)

	assert.Equal(t, entity.POStateCanceled, canceled.State)
	assert.Len(t, intake.cancelled, 2)
	for _, line := range canceled.Items {
		assert.Nil(t, line.StockLotID, "el enlace al lote se limpia al cancelar")
	}
}

func TestUpdateState_Transiciones(t *testing.T) {
	_, _, uc := newPOFixture()
	po := draftPO(t, uc)

	validated, err := uc.UpdateState(context.Background(), po.ID, entity.POStateValidated)
	require.NoError(t, err)

	_, err = uc.UpdateState(context.Background(), validated.ID, entity.POStateSubmitted)
	require.ErrorIs(t, err, domain.ErrConflict, "una orden validada solo admite cancelar")

	canceled, err := uc.UpdateState(context.Background(), validated.ID, entity.POStateCanceled)
	require.NoError(t, err)

	_, err = uc.UpdateState(context.Background(), canceled.ID, entity.POStateDraft)
	require.ErrorIs(t, err, domain.ErrConflict, "cancelada es terminal")

	_, err = uc.UpdateState(context.Background(), po.ID, "aprobada")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEdicion_SoloEnBorrador(t *testing.T) {
	_, _, uc := newPOFixture()
	po := draftPO(t, uc)
	_, err := uc.UpdateState(context.Background(), po.ID, entity.POStateSubmitted)
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), po.ID, "Otro Proveedor")
	require.ErrorIs(t, err, domain.ErrConflict)

	_, err = uc.AddItem(context.Background(), po.ID, purchase.ItemInput{
		ItemID: 1, Quantity: 5, Price: decimal.NewFromInt(2),
	})
	require.ErrorIs(t, err, domain.ErrConflict)

	err = uc.DeleteItem(context.Background(), po.ID, po.Items[0].ID)
	require.ErrorIs(t, err, domain.ErrConflict)

	err = uc.Delete(context.Background(), po.ID)
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestEdicionEnBorrador(t *testing.T) {
	pos, _, uc := newPOFixture()
	po := draftPO(t, uc)

	updated, err := uc.Update(context.Background(), po.ID, "Proveedor Central")
	require.NoError(t, err)
	assert.Equal(t, "Proveedor Central", updated.SupplierName)

	line, err := uc.AddItem(context.Background(), po.ID, purchase.ItemInput{
		ItemID: 2, Quantity: 4, Price: decimal.NewFromInt(7), RequestedBy: 1,
	})
	require.NoError(t, err)
	require.NoError(t, uc.DeleteItem(context.Background(), po.ID, line.ID))

	require.NoError(t, uc.Delete(context.Background(), po.ID))
	_, ok := pos.pos[po.ID]
	assert.False(t, ok)
}

func TestCreate_ArticuloInexistente(t *testing.T) {
	_, _, uc := newPOFixture()

	_, err := uc.Create(context.Background(), purchase.CreateInput{
		SupplierName: "Proveedor",
		Items:        []purchase.ItemInput{{ItemID: 99, Quantity: 1, Price: decimal.NewFromInt(1)}},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}
