package sales

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/autoparts-api/internal/domain"
	"github.com/jhoicas/autoparts-api/internal/domain/entity"
	"github.com/jhoicas/autoparts-api/internal/domain/repository"
	domsales "github.com/jhoicas/autoparts-api/internal/domain/sales"
)

// memStore base en memoria compartida por los repos falsos. Guarda valores (no punteros)
// para que snapshot/restore emulen commit y rollback.
type memStore struct {
	customers map[string]entity.Customer
	inventory map[string]entity.InventoryItem
	orders    map[string]entity.Order
	items     []entity.OrderItem
	txns      map[string]entity.Transaction

	failTxnCreate error
}

func newMemStore() *memStore {
	return &memStore{
		customers: map[string]entity.Customer{},
		inventory: map[string]entity.InventoryItem{},
		orders:    map[string]entity.Order{},
		txns:      map[string]entity.Transaction{},
	}
}

type snapshot struct {
	customers map[string]entity.Customer
	inventory map[string]entity.InventoryItem
	orders    map[string]entity.Order
	items     []entity.OrderItem
	txns      map[string]entity.Transaction
}

func (s *memStore) snapshot() snapshot {
	snap := snapshot{
		customers: make(map[string]entity.Customer, len(s.customers)),
		inventory: make(map[string]entity.InventoryItem, len(s.inventory)),
		orders:    make(map[string]entity.Order, len(s.orders)),
		items:     append([]entity.OrderItem(nil), s.items...),
		txns:      make(map[string]entity.Transaction, len(s.txns)),
	}
	for k, v := range s.customers {
		snap.customers[k] = v
	}
	for k, v := range s.inventory {
		snap.inventory[k] = v
	}
	for k, v := range s.orders {
		snap.orders[k] = v
	}
	for k, v := range s.txns {
		snap.txns[k] = v
	}
	return snap
}

func (s *memStore) restore(snap snapshot) {
	s.customers = snap.customers
	s.inventory = snap.inventory
	s.orders = snap.orders
	s.items = snap.items
	s.txns = snap.txns
}

// ── TxRunner ──

type snapshotTxRunner struct {
	store     *memStore
	commits   int
	rollbacks int
}

func (r *snapshotTxRunner) RunSales(ctx context.Context, fn func(
	inventoryRepo repository.InventoryRepository,
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	txnRepo repository.TransactionRepository,
) error) error {
	snap := r.store.snapshot()
	if err := fn(&memInventory{r.store}, &memOrders{r.store}, &memCustomers{r.store}, &memTxns{r.store}); err != nil {
		r.store.restore(snap)
		r.rollbacks++
		return err
	}
	r.commits++
	return nil
}

// ── Inventario ──

type memInventory struct{ s *memStore }

func (r *memInventory) Create(_ context.Context, it *entity.InventoryItem) error {
	r.s.inventory[it.ID] = *it
	return nil
}

func (r *memInventory) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	it, ok := r.s.inventory[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (r *memInventory) List(context.Context, repository.InventoryFilter, repository.Page) ([]*entity.InventoryItem, int, error) {
	return nil, 0, nil
}

func (r *memInventory) Search(context.Context, string, int) ([]*entity.InventoryItem, error) {
	return nil, nil
}

func (r *memInventory) Update(_ context.Context, it *entity.InventoryItem) error {
	r.s.inventory[it.ID] = *it
	return nil
}

func (r *memInventory) Delete(_ context.Context, id string) error {
	delete(r.s.inventory, id)
	return nil
}

func (r *memInventory) ListInStock(context.Context, string) ([]*entity.InventoryItem, error) {
	return nil, nil
}

func (r *memInventory) ListLowStock(context.Context, int) ([]*entity.InventoryItem, error) {
	return nil, nil
}

func (r *memInventory) ListByContainer(context.Context, string) ([]*entity.InventoryItem, error) {
	return nil, nil
}

func (r *memInventory) Reserve(_ context.Context, id string, quantity int) (*entity.InventoryItem, error) {
	it, ok := r.s.inventory[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if it.Quantity < quantity {
		return nil, domain.ErrInsufficientStock
	}
	it.Quantity -= quantity
	if it.Quantity == 0 {
		it.Status = entity.InventoryStatusSold
	}
	r.s.inventory[id] = it
	return &it, nil
}

// ── Órdenes ──

type memOrders struct{ s *memStore }

func (r *memOrders) Create(_ context.Context, o *entity.Order) error {
	for _, existing := range r.s.orders {
		if existing.OrderNumber == o.OrderNumber {
			return fmt.Errorf("orden %s: %w", o.OrderNumber, domain.ErrNumberCollision)
		}
	}
	cp := *o
	cp.Customer, cp.Items = nil, nil
	r.s.orders[o.ID] = cp
	return nil
}

func (r *memOrders) CreateItem(_ context.Context, it *entity.OrderItem) error {
	cp := *it
	cp.Inventory = nil
	r.s.items = append(r.s.items, cp)
	return nil
}

func (r *memOrders) GetByID(_ context.Context, id string) (*entity.Order, error) {
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	if c, ok := r.s.customers[o.CustomerID]; ok {
		o.Customer = &c
	}
	return &o, nil
}

func (r *memOrders) GetForUpdate(ctx context.Context, id string) (*entity.Order, error) {
	return r.GetByID(ctx, id)
}

func (r *memOrders) ListItems(_ context.Context, orderID string) ([]*entity.OrderItem, error) {
	out := []*entity.OrderItem{}
	for _, it := range r.s.items {
		if it.OrderID != orderID {
			continue
		}
		cp := it
		if inv, ok := r.s.inventory[it.InventoryID]; ok {
			cp.Inventory = &inv
		}
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memOrders) List(_ context.Context, f repository.OrderFilter, _ repository.Page) ([]*entity.Order, int, error) {
	out := []*entity.Order{}
	for _, o := range r.s.orders {
		switch {
		case f.Status != "" && o.Status != f.Status,
			f.PaymentStatus != "" && o.PaymentStatus != f.PaymentStatus,
			f.Location != "" && o.Location != f.Location,
			f.CustomerID != "" && o.CustomerID != f.CustomerID,
			f.ExcludeCancelled && o.Status == entity.OrderStatusCancelled,
			f.Unpaid && o.PaymentStatus == entity.PaymentStatusPaid,
			f.OrderDate.From != nil && o.OrderDate.Before(*f.OrderDate.From),
			f.OrderDate.To != nil && o.OrderDate.After(*f.OrderDate.To):
			continue
		}
		cp := o
		if c, ok := r.s.customers[o.CustomerID]; ok {
			cp.Customer = &c
		}
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderNumber < out[j].OrderNumber })
	return out, len(out), nil
}

func (r *memOrders) Update(_ context.Context, o *entity.Order) error {
	if _, ok := r.s.orders[o.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *o
	cp.Customer, cp.Items = nil, nil
	r.s.orders[o.ID] = cp
	return nil
}

func (r *memOrders) Delete(_ context.Context, id string) error {
	delete(r.s.orders, id)
	kept := r.s.items[:0:0]
	for _, it := range r.s.items {
		if it.OrderID != id {
			kept = append(kept, it)
		}
	}
	r.s.items = kept
	return nil
}

// ── Clientes ──

type memCustomers struct{ s *memStore }

func (r *memCustomers) Create(_ context.Context, c *entity.Customer) error {
	r.s.customers[c.ID] = *c
	return nil
}

func (r *memCustomers) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	c, ok := r.s.customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *memCustomers) List(context.Context, repository.CustomerFilter, repository.Page) ([]*entity.Customer, int, error) {
	out := []*entity.Customer{}
	for _, c := range r.s.customers {
		cp := c
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (r *memCustomers) Search(_ context.Context, q string, limit int) ([]*entity.Customer, error) {
	out := []*entity.Customer{}
	for _, c := range r.s.customers {
		if strings.Contains(strings.ToLower(c.Name), strings.ToLower(q)) && len(out) < limit {
			cp := c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memCustomers) Update(_ context.Context, c *entity.Customer) error {
	r.s.customers[c.ID] = *c
	return nil
}

func (r *memCustomers) Delete(_ context.Context, id string) error {
	for _, o := range r.s.orders {
		if o.CustomerID == id {
			return fmt.Errorf("%w: existen registros relacionados", domain.ErrConflict)
		}
	}
	delete(r.s.customers, id)
	return nil
}

// ── Transacciones ──

type memTxns struct{ s *memStore }

func (r *memTxns) Create(_ context.Context, t *entity.Transaction) error {
	if r.s.failTxnCreate != nil {
		return r.s.failTxnCreate
	}
	for _, existing := range r.s.txns {
		if existing.TransactionNumber == t.TransactionNumber {
			return fmt.Errorf("transacción %s: %w", t.TransactionNumber, domain.ErrNumberCollision)
		}
	}
	r.s.txns[t.ID] = *t
	return nil
}

func (r *memTxns) GetByID(_ context.Context, id string) (*entity.Transaction, error) {
	t, ok := r.s.txns[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *memTxns) List(context.Context, repository.TransactionFilter, repository.Page) ([]*entity.Transaction, int, error) {
	return nil, 0, nil
}

func (r *memTxns) Update(_ context.Context, t *entity.Transaction) error {
	r.s.txns[t.ID] = *t
	return nil
}

func (r *memTxns) Delete(_ context.Context, id string) error {
	delete(r.s.txns, id)
	return nil
}

// ── Números, eventos y métricas ──

// seqNumbers numera en memoria; fixed fuerza siempre el mismo número.
type seqNumbers struct {
	next  map[string]int64
	fixed string
	calls int
}

func (n *seqNumbers) Next(_ context.Context, prefix string, at time.Time) (string, error) {
	n.calls++
	if n.fixed != "" {
		return n.fixed, nil
	}
	if n.next == nil {
		n.next = map[string]int64{}
	}
	n.next[prefix]++
	return domsales.DocumentNumber(prefix, at, n.next[prefix]), nil
}

type recordingPublisher struct {
	events []Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, evt Event) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, evt)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

type recordingMetrics struct {
	created  int
	rejected []string
	payments int
}

func (m *recordingMetrics) OrderCreated()          { m.created++ }
func (m *recordingMetrics) OrderRejected(r string) { m.rejected = append(m.rejected, r) }
func (m *recordingMetrics) PaymentRecorded()       { m.payments++ }
