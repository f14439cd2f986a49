package stock_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastellr/almacen-api/internal/application/stock"
	"github.com/jcastellr/almacen-api/internal/domain/entity"
	"github.com/jcastellr/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria de los repositorios de libros. El runner de transacciones
// falso toma una instantánea y la restaura si el callback falla, para poder
// verificar que nada parcial queda escrito.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	nextID   int64
	items    map[int64]entity.Item
	lots     map[int64]entity.StockLot
	outs     []entity.StockOutEntry
	adjs     map[int64]entity.StockAdjustmentEntry
	running  map[int64]entity.RunningStock
	evals    []entity.CostEvaluation
	orders   map[int64]entity.Order
	lastCode string
}

func newMemStore() *memStore {
	return &memStore{
		items:   map[int64]entity.Item{},
		lots:    map[int64]entity.StockLot{},
		adjs:    map[int64]entity.StockAdjustmentEntry{},
		running: map[int64]entity.RunningStock{},
		orders:  map[int64]entity.Order{},
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) snapshot() *memStore {
	c := newMemStore()
	c.nextID = s.nextID
	c.lastCode = s.lastCode
	for k, v := range s.items {
		c.items[k] = v
	}
	for k, v := range s.lots {
		c.lots[k] = v
	}
	for k, v := range s.adjs {
		c.adjs[k] = v
	}
	for k, v := range s.running {
		c.running[k] = v
	}
	for k, v := range s.orders {
		c.orders[k] = v
	}
	c.outs = append([]entity.StockOutEntry(nil), s.outs...)
	c.evals = append([]entity.CostEvaluation(nil), s.evals...)
	return c
}

func (s *memStore) restore(from *memStore) {
	*s = *from
}

func (s *memStore) repos() stock.LedgerRepos {
	return stock.LedgerRepos{
		Lots:        &fakeLots{s},
		Outs:        &fakeOuts{s},
		Adjustments: &fakeAdjustments{s},
		Running:     &fakeRunning{s},
		Evaluations: &fakeEvals{s},
		Orders:      &fakeOrders{s},
	}
}

type fakeTx struct{ s *memStore }

func (t *fakeTx) Run(_ context.Context, fn func(r stock.LedgerRepos) error) error {
	snap := t.s.snapshot()
	if err := fn(t.s.repos()); err != nil {
		t.s.restore(snap)
		return err
	}
	return nil
}

// ─── items ────────────────────────────────────────────────────────────────────

type fakeItems struct{ s *memStore }

func (f *fakeItems) Create(item *entity.Item) (*entity.Item, error) {
	item.ID = f.s.id()
	f.s.items[item.ID] = *item
	f.s.lastCode = item.Code
	return item, nil
}

func (f *fakeItems) GetByID(id int64) (*entity.Item, error) {
	if it, ok := f.s.items[id]; ok {
		return &it, nil
	}
	return nil, nil
}

func (f *fakeItems) GetByBarcode(barcode string) (*entity.Item, error) {
	for _, it := range f.s.items {
		if it.Barcode == barcode {
			return &it, nil
		}
	}
	return nil, nil
}

func (f *fakeItems) List() ([]entity.Item, error) {
	out := make([]entity.Item, 0, len(f.s.items))
	for _, it := range f.s.items {
		out = append(out, it)
	}
	return out, nil
}

func (f *fakeItems) LastCode() (string, error) { return f.s.lastCode, nil }

// ─── lotes ────────────────────────────────────────────────────────────────────

type fakeLots struct{ s *memStore }

func (f *fakeLots) Create(lot *entity.StockLot) (*entity.StockLot, error) {
	lot.ID = f.s.id()
	f.s.lots[lot.ID] = *lot
	return lot, nil
}

func (f *fakeLots) GetByID(id int64) (*entity.StockLot, error) {
	if l, ok := f.s.lots[id]; ok {
		return &l, nil
	}
	return nil, nil
}

func (f *fakeLots) GetForUpdate(id int64) (*entity.StockLot, error) { return f.GetByID(id) }

func (f *fakeLots) Update(lot *entity.StockLot) error {
	f.s.lots[lot.ID] = *lot
	return nil
}

func (f *fakeLots) Delete(id int64) error {
	delete(f.s.lots, id)
	return nil
}

func (f *fakeLots) ListAvailableForUpdate(itemID int64) ([]*entity.StockLot, error) {
	var out []*entity.StockLot
	for id := range f.s.lots {
		l := f.s.lots[id]
		if l.ItemID == itemID && !l.Sold && !l.Cancelled {
			lot := l
			out = append(out, &lot)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeLots) GroupedTotals(itemID int64) (repository.IntakeTotals, error) {
	t := repository.IntakeTotals{ItemID: itemID, Value: decimal.Zero}
	for _, l := range f.s.lots {
		if l.ItemID == itemID && !l.Cancelled {
			t.Quantity += l.QuantityInitiated
			t.Value = t.Value.Add(l.Cost.Mul(decimal.NewFromInt(int64(l.QuantityInitiated))))
		}
	}
	return t, nil
}

func (f *fakeLots) ListByItem(itemID int64) ([]entity.StockLot, error) {
	var out []entity.StockLot
	for _, l := range f.s.lots {
		if l.ItemID == itemID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ─── salidas y evaluaciones ───────────────────────────────────────────────────

type fakeOuts struct{ s *memStore }

func (f *fakeOuts) Create(out *entity.StockOutEntry) (*entity.StockOutEntry, error) {
	out.ID = f.s.id()
	f.s.outs = append(f.s.outs, *out)
	return out, nil
}

func (f *fakeOuts) SumForItem(itemID int64) (repository.LedgerSum, error) {
	sum := repository.LedgerSum{Value: decimal.Zero}
	for _, o := range f.s.outs {
		if o.ItemID == itemID {
			sum.Quantity += o.Quantity
			sum.Value = sum.Value.Add(o.Cost.Mul(decimal.NewFromInt(int64(o.Quantity))))
		}
	}
	return sum, nil
}

func (f *fakeOuts) ListByItem(itemID int64) ([]entity.StockOutEntry, error) {
	var out []entity.StockOutEntry
	for _, o := range f.s.outs {
		if o.ItemID == itemID {
			out = append(out, o)
		}
	}
	return out, nil
}

type fakeEvals struct{ s *memStore }

func (f *fakeEvals) Create(ev *entity.CostEvaluation) error {
	ev.ID = f.s.id()
	f.s.evals = append(f.s.evals, *ev)
	return nil
}

func (f *fakeEvals) ListByItem(itemID int64) ([]entity.CostEvaluation, error) {
	var out []entity.CostEvaluation
	for _, ev := range f.s.evals {
		if ev.ItemID == itemID {
			out = append(out, ev)
		}
	}
	return out, nil
}

// ─── ajustes ──────────────────────────────────────────────────────────────────

type fakeAdjustments struct{ s *memStore }

func (f *fakeAdjustments) Create(adj *entity.StockAdjustmentEntry) (*entity.StockAdjustmentEntry, error) {
	adj.ID = f.s.id()
	f.s.adjs[adj.ID] = *adj
	return adj, nil
}

func (f *fakeAdjustments) GetByID(id int64) (*entity.StockAdjustmentEntry, error) {
	if a, ok := f.s.adjs[id]; ok {
		return &a, nil
	}
	return nil, nil
}

func (f *fakeAdjustments) Update(adj *entity.StockAdjustmentEntry) error {
	f.s.adjs[adj.ID] = *adj
	return nil
}

func (f *fakeAdjustments) Delete(id int64) error {
	delete(f.s.adjs, id)
	return nil
}

func (f *fakeAdjustments) SumForItem(itemID int64) (repository.LedgerSum, error) {
	sum := repository.LedgerSum{Value: decimal.Zero}
	for _, a := range f.s.adjs {
		if a.ItemID == itemID {
			sum.Quantity += a.Quantity
			sum.Value = sum.Value.Add(a.Cost.Mul(decimal.NewFromInt(int64(a.Quantity))))
		}
	}
	return sum, nil
}

func (f *fakeAdjustments) CountForItem(itemID int64) (int, error) {
	n := 0
	for _, a := range f.s.adjs {
		if a.ItemID == itemID {
			n++
		}
	}
	return n, nil
}

func (f *fakeAdjustments) List() ([]entity.StockAdjustmentEntry, error) {
	var out []entity.StockAdjustmentEntry
	for _, a := range f.s.adjs {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ─── running stock ────────────────────────────────────────────────────────────

type fakeRunning struct{ s *memStore }

func (f *fakeRunning) GetByItem(itemID int64) (*entity.RunningStock, error) {
	if rs, ok := f.s.running[itemID]; ok {
		return &rs, nil
	}
	return nil, nil
}

func (f *fakeRunning) GetByItemForUpdate(itemID int64) (*entity.RunningStock, error) {
	return f.GetByItem(itemID)
}

func (f *fakeRunning) Save(rs *entity.RunningStock) (*entity.RunningStock, error) {
	if rs.ID == 0 {
		rs.ID = f.s.id()
	}
	f.s.running[rs.ItemID] = *rs
	return rs, nil
}

func (f *fakeRunning) List() ([]entity.RunningStock, error) {
	var out []entity.RunningStock
	for _, rs := range f.s.running {
		out = append(out, rs)
	}
	return out, nil
}

// ─── órdenes ──────────────────────────────────────────────────────────────────

type fakeOrders struct{ s *memStore }

func (f *fakeOrders) Create(order *entity.Order) (*entity.Order, error) {
	order.ID = f.s.id()
	f.s.orders[order.ID] = *order
	return order, nil
}

func (f *fakeOrders) GetByID(id int64) (*entity.Order, error) {
	if o, ok := f.s.orders[id]; ok {
		return &o, nil
	}
	return nil, nil
}

func (f *fakeOrders) Update(order *entity.Order) error {
	f.s.orders[order.ID] = *order
	return nil
}

func (f *fakeOrders) List(from, to time.Time) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range f.s.orders {
		if !from.IsZero() && o.CreatedAt.Before(from) {
			continue
		}
		if !to.IsZero() && o.CreatedAt.After(to) {
			continue
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// seedItem registra un artículo directo en el almacén falso.
func seedItem(s *memStore, barcode, category string) entity.Item {
	it := entity.Item{
		ID:       s.id(),
		Barcode:  barcode,
		Code:     "SK" + strings.ToUpper(category[:1]) + "-1",
		Category: category,
	}
	s.items[it.ID] = it
	return it
}
