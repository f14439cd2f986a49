package order_test

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastellr/almacen-api/internal/application/stock"
	"github.com/jcastellr/almacen-api/internal/domain/entity"
	"github.com/jcastellr/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria: lo mínimo para ejercitar el orquestador de órdenes junto
// con el asignador real. El runner falso restaura la instantánea si el callback
// falla, igual que un rollback.
// ──────────────────────────────────────────────────────────────────────────────

type world struct {
	nextID  int64
	items   map[int64]entity.Item
	lots    map[int64]entity.StockLot
	outs    []entity.StockOutEntry
	evals   []entity.CostEvaluation
	running map[int64]entity.RunningStock
	orders  map[int64]entity.Order
}

func newWorld() *world {
	return &world{
		items:   map[int64]entity.Item{},
		lots:    map[int64]entity.StockLot{},
		running: map[int64]entity.RunningStock{},
		orders:  map[int64]entity.Order{},
	}
}

func (w *world) id() int64 {
	w.nextID++
	return w.nextID
}

func (w *world) snapshot() *world {
	c := newWorld()
	c.nextID = w.nextID
	for k, v := range w.items {
		c.items[k] = v
	}
	for k, v := range w.lots {
		c.lots[k] = v
	}
	for k, v := range w.running {
		c.running[k] = v
	}
	for k, v := range w.orders {
		c.orders[k] = v
	}
	c.outs = append([]entity.StockOutEntry(nil), w.outs...)
	c.evals = append([]entity.CostEvaluation(nil), w.evals...)
	return c
}

func (w *world) repos() stock.LedgerRepos {
	return stock.LedgerRepos{
		Lots:        &wLots{w},
		Outs:        &wOuts{w},
		Adjustments: &wAdjs{},
		Running:     &wRunning{w},
		Evaluations: &wEvals{w},
		Orders:      &wOrders{w},
	}
}

type wTx struct{ w *world }

func (t *wTx) Run(_ context.Context, fn func(r stock.LedgerRepos) error) error {
	snap := t.w.snapshot()
	if err := fn(t.w.repos()); err != nil {
		*t.w = *snap
		return err
	}
	return nil
}

// seedStocked deja un artículo con una fila de running stock y un lote.
func (w *world) seedStocked(barcode string, qty int, cost string) entity.Item {
	it := entity.Item{ID: w.id(), Barcode: barcode, Specification: "rodamiento 6204", Location: "B-02"}
	w.items[it.ID] = it
	c := decimal.RequireFromString(cost)
	lot := entity.StockLot{
		ID: w.id(), ItemID: it.ID,
		Quantity: qty, QuantityInitiated: qty, Cost: c,
	}
	w.lots[lot.ID] = lot
	w.running[it.ID] = entity.RunningStock{
		ID: w.id(), ItemID: it.ID,
		StockQuantity: qty, RemainingQuantity: qty,
		Status: entity.StatusAvailable,
		Cost:   c.Mul(decimal.NewFromInt(int64(qty))),
	}
	return it
}

type wItems struct{ w *world }

func (f *wItems) Create(item *entity.Item) (*entity.Item, error) {
	item.ID = f.w.id()
	f.w.items[item.ID] = *item
	return item, nil
}

func (f *wItems) GetByID(id int64) (*entity.Item, error) {
	if it, ok := f.w.items[id]; ok {
		return &it, nil
	}
	return nil, nil
}

func (f *wItems) GetByBarcode(barcode string) (*entity.Item, error) {
	for _, it := range f.w.items {
		if it.Barcode == barcode {
			return &it, nil
		}
	}
	return nil, nil
}

func (f *wItems) List() ([]entity.Item, error) { return nil, nil }
func (f *wItems) LastCode() (string, error)    { return "", nil }

type wLots struct{ w *world }

func (f *wLots) Create(lot *entity.StockLot) (*entity.StockLot, error) {
	lot.ID = f.w.id()
	f.w.lots[lot.ID] = *lot
	return lot, nil
}

func (f *wLots) GetByID(id int64) (*entity.StockLot, error) {
	if l, ok := f.w.lots[id]; ok {
		return &l, nil
	}
	return nil, nil
}

func (f *wLots) GetForUpdate(id int64) (*entity.StockLot, error) { return f.GetByID(id) }

func (f *wLots) Update(lot *entity.StockLot) error {
	f.w.lots[lot.ID] = *lot
	return nil
}

func (f *wLots) Delete(id int64) error {
	delete(f.w.lots, id)
	return nil
}

func (f *wLots) ListAvailableForUpdate(itemID int64) ([]*entity.StockLot, error) {
	var out []*entity.StockLot
	for id := range f.w.lots {
		l := f.w.lots[id]
		if l.ItemID == itemID && !l.Sold && !l.Cancelled {
			lot := l
			out = append(out, &lot)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *wLots) GroupedTotals(itemID int64) (repository.IntakeTotals, error) {
	t := repository.IntakeTotals{ItemID: itemID, Value: decimal.Zero}
	for _, l := range f.w.lots {
		if l.ItemID == itemID && !l.Cancelled {
			t.Quantity += l.QuantityInitiated
			t.Value = t.Value.Add(l.Cost.Mul(decimal.NewFromInt(int64(l.QuantityInitiated))))
		}
	}
	return t, nil
}

func (f *wLots) ListByItem(itemID int64) ([]entity.StockLot, error) { return nil, nil }

type wOuts struct{ w *world }

func (f *wOuts) Create(out *entity.StockOutEntry) (*entity.StockOutEntry, error) {
	out.ID = f.w.id()
	f.w.outs = append(f.w.outs, *out)
	return out, nil
}

func (f *wOuts) SumForItem(itemID int64) (repository.LedgerSum, error) {
	sum := repository.LedgerSum{Value: decimal.Zero}
	for _, o := range f.w.outs {
		if o.ItemID == itemID {
			sum.Quantity += o.Quantity
			sum.Value = sum.Value.Add(o.Cost.Mul(decimal.NewFromInt(int64(o.Quantity))))
		}
	}
	return sum, nil
}

func (f *wOuts) ListByItem(itemID int64) ([]entity.StockOutEntry, error) { return nil, nil }

type wEvals struct{ w *world }

func (f *wEvals) Create(ev *entity.CostEvaluation) error {
	f.w.evals = append(f.w.evals, *ev)
	return nil
}

func (f *wEvals) ListByItem(itemID int64) ([]entity.CostEvaluation, error) { return nil, nil }

// wAdjs: las órdenes no tocan el libro de ajustes.
type wAdjs struct{}

func (wAdjs) Create(adj *entity.StockAdjustmentEntry) (*entity.StockAdjustmentEntry, error) {
	return adj, nil
}
func (wAdjs) GetByID(int64) (*entity.StockAdjustmentEntry, error) { return nil, nil }
func (wAdjs) Update(*entity.StockAdjustmentEntry) error           { return nil }
func (wAdjs) Delete(int64) error                                  { return nil }
func (wAdjs) SumForItem(int64) (repository.LedgerSum, error) {
	return repository.LedgerSum{Value: decimal.Zero}, nil
}
func (wAdjs) CountForItem(int64) (int, error)              { return 0, nil }
func (wAdjs) List() ([]entity.StockAdjustmentEntry, error) { return nil, nil }

type wRunning struct{ w *world }

func (f *wRunning) GetByItem(itemID int64) (*entity.RunningStock, error) {
	if rs, ok := f.w.running[itemID]; ok {
		return &rs, nil
	}
	return nil, nil
}

func (f *wRunning) GetByItemForUpdate(itemID int64) (*entity.RunningStock, error) {
	return f.GetByItem(itemID)
}

func (f *wRunning) Save(rs *entity.RunningStock) (*entity.RunningStock, error) {
	if rs.ID == 0 {
		rs.ID = f.w.id()
	}
	f.w.running[rs.ItemID] = *rs
	return rs, nil
}

func (f *wRunning) List() ([]entity.RunningStock, error) { return nil, nil }

type wOrders struct{ w *world }

func (f *wOrders) Create(order *entity.Order) (*entity.Order, error) {
	order.ID = f.w.id()
	f.w.orders[order.ID] = *order
	return order, nil
}

func (f *wOrders) GetByID(id int64) (*entity.Order, error) {
	if o, ok := f.w.orders[id]; ok {
		return &o, nil
	}
	return nil, nil
}

func (f *wOrders) Update(order *entity.Order) error {
	f.w.orders[order.ID] = *order
	return nil
}

func (f *wOrders) List(from, to time.Time) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range f.w.orders {
		if !from.IsZero() && o.CreatedAt.Before(from) {
			continue
		}
		if !to.IsZero() && !o.CreatedAt.Before(to) {
			continue
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// fakeNotifier acumula las alertas encoladas.
type fakeNotifier struct {
	alerts []string
}

func (n *fakeNotifier) ReorderAlert(item entity.Item, remaining int) {
	n.alerts = append(n.alerts, item.Barcode)
}
