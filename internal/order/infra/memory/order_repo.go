package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dwikikusuma/checkout-sim/internal/order/app"
	"github.com/dwikikusuma/checkout-sim/internal/order/domain"
	"github.com/google/uuid"
)

type OrderRepo struct {
	mu         sync.RWMutex
	orders     map[string]domain.Order
	byCustomer map[string][]string
}

func NewOrderRepo() *OrderRepo {
	return &OrderRepo{
		orders:     make(map[string]domain.Order),
		byCustomer: make(map[string][]string),
	}
}

func (r *OrderRepo) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	order.ID = uuid.NewString()
	order.CreatedAt = now
	order.UpdatedAt = now

	items := make([]domain.OrderItem, len(order.OrderItems))
	for i, it := range order.OrderItems {
		it.ID = uuid.NewString()
		it.OrderID = order.ID
		items[i] = it
	}
	order.OrderItems = items

	r.orders[order.ID] = order
	r.byCustomer[order.CustomerID] = append(r.byCustomer[order.CustomerID], order.ID)
	return clone(order), nil
}

func (r *OrderRepo) Get(ctx context.Context, id string) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return domain.Order{}, app.ErrNotFound
	}
	return clone(o), nil
}

func (r *OrderRepo) ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byCustomer[customerID]
	out := make([]domain.Order, 0, len(ids))
	for _, id := range ids {
		out = append(out, clone(r.orders[id]))
	}
	return out, nil
}

func clone(o domain.Order) domain.Order {
	o.OrderItems = slices.Clone(o.OrderItems)
	return o
}
