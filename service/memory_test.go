package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"cantina-api/models"
	"cantina-api/repository"
)

// memStore is an in-memory UnitOfWork. Do serializes transactions and
// restores the previous state when fn fails.
type memStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	products map[int64]models.Product
	orders   map[int64]models.Order
	sales    map[int64]models.Sale
	nextID   int64

	failOrderCreate error
	failSaleCreate  error
}

func newMemStore() *memStore {
	return &memStore{
		products: map[int64]models.Product{},
		orders:   map[int64]models.Order{},
		sales:    map[int64]models.Sale{},
	}
}

func (m *memStore) addProduct(p models.Product) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	p.ID = m.nextID
	m.products[p.ID] = p
	return p.ID
}

func (m *memStore) Catalog() repository.CatalogRepository  { return memCatalog{m} }
func (m *memStore) Accounts() repository.AccountRepository { return nil }
func (m *memStore) Orders() repository.OrderRepository     { return memOrders{m} }
func (m *memStore) Sales() repository.SalesRepository      { return memSales{m} }

func (m *memStore) Do(ctx context.Context, fn func(tx repository.Provider) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()

	m.mu.Lock()
	products, orders, sales, nextID := cloneMap(m.products), cloneMap(m.orders), cloneMap(m.sales), m.nextID
	m.mu.Unlock()

	if err := fn(m); err != nil {
		m.mu.Lock()
		m.products, m.orders, m.sales, m.nextID = products, orders, sales, nextID
		m.mu.Unlock()
		return err
	}
	return nil
}

func cloneMap[V any](in map[int64]V) map[int64]V {
	out := make(map[int64]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

type memCatalog struct{ m *memStore }

func (r memCatalog) Create(_ context.Context, p *models.Product) (int64, error) {
	if err := repository.ValidateProduct(p.Name, p.Price, p.Quantity); err != nil {
		return 0, err
	}
	return r.m.addProduct(*p), nil
}

func (r memCatalog) Update(_ context.Context, id int64, name string, price float64, quantity int) (int64, error) {
	if err := repository.ValidateProduct(name, price, quantity); err != nil {
		return 0, err
	}
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	p, ok := r.m.products[id]
	if !ok {
		return 0, nil
	}
	p.Name, p.Price, p.Quantity = name, price, quantity
	r.m.products[id] = p
	return 1, nil
}

func (r memCatalog) Delete(_ context.Context, id int64) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.products[id]; !ok {
		return 0, nil
	}
	delete(r.m.products, id)
	return 1, nil
}

func (r memCatalog) List(context.Context) ([]models.Product, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := []models.Product{}
	for _, p := range r.m.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r memCatalog) GetByID(_ context.Context, id int64) (*models.Product, bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	p, ok := r.m.products[id]
	if !ok {
		return nil, false, nil
	}
	return &p, true, nil
}

func (r memCatalog) Search(ctx context.Context, query string) ([]models.Product, error) {
	all, _ := r.List(ctx)
	out := []models.Product{}
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(query)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r memCatalog) DecrementStock(_ context.Context, id int64, amount int) (int, error) {
	if amount <= 0 {
		return 0, models.NewValidationError("cantidad", "must be greater than zero")
	}
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	p, ok := r.m.products[id]
	if !ok {
		return 0, fmt.Errorf("product %d: %w", id, models.ErrNotFound)
	}
	if p.Quantity < amount {
		return 0, &models.InsufficientStockError{ProductID: id, Requested: amount, Available: p.Quantity}
	}
	p.Quantity -= amount
	r.m.products[id] = p
	return p.Quantity, nil
}

type memOrders struct{ m *memStore }

func (r memOrders) Create(_ context.Context, o *models.Order) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.failOrderCreate != nil {
		return 0, r.m.failOrderCreate
	}
	r.m.nextID++
	o.ID = r.m.nextID
	r.m.orders[o.ID] = *o
	return o.ID, nil
}

func (r memOrders) ListActive(context.Context) ([]models.Order, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := []models.Order{}
	for _, o := range r.m.orders {
		if o.Status != models.StatusDelivered {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r memOrders) GetByID(_ context.Context, id int64) (*models.Order, bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	o, ok := r.m.orders[id]
	if !ok {
		return nil, false, nil
	}
	return &o, true, nil
}

func (r memOrders) UpdateStatus(_ context.Context, id int64, status models.OrderStatus) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	o, ok := r.m.orders[id]
	if !ok {
		return 0, nil
	}
	o.Status = status
	r.m.orders[id] = o
	return 1, nil
}

func (r memOrders) Delete(_ context.Context, id int64) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.orders[id]; !ok {
		return 0, nil
	}
	delete(r.m.orders, id)
	return 1, nil
}

type memSales struct{ m *memStore }

func (r memSales) Create(_ context.Context, s *models.Sale) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.failSaleCreate != nil {
		return 0, r.m.failSaleCreate
	}
	r.m.nextID++
	s.ID = r.m.nextID
	r.m.sales[s.ID] = *s
	return s.ID, nil
}

func (r memSales) ListAll(context.Context) ([]models.Sale, error) {
	return r.filter(func(models.Sale) bool { return true }), nil
}

func (r memSales) ListByPurchaser(_ context.Context, purchaser string) ([]models.Sale, error) {
	return r.filter(func(s models.Sale) bool { return s.Purchaser == purchaser }), nil
}

func (r memSales) filter(keep func(models.Sale) bool) []models.Sale {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := []models.Sale{}
	for _, s := range r.m.sales {
		if keep(s) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

var errBackend = &models.StorageError{Op: "insert", Err: errors.New("connection reset")}
