package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dwikikusuma/checkout-sim/internal/catalog/app"
	"github.com/dwikikusuma/checkout-sim/internal/catalog/domain"
	"github.com/google/uuid"
)

// ProductRepo keeps products in insertion order and returns shared pointers.
type ProductRepo struct {
	mu       sync.RWMutex
	products map[string]*domain.Product
	order    []string
}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{
		products: make(map[string]*domain.Product),
	}
}

func (r *ProductRepo) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now

	r.products[p.ID] = p
	r.order = append(r.order, p.ID)
	return p, nil
}

func (r *ProductRepo) Get(ctx context.Context, id string) (*domain.Product, error) {
	prodID, err := uuid.Parse(id)
	if err != nil {
		return nil, app.ErrInvalidInput
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[prodID.String()]
	if !ok {
		return nil, app.ErrNotFound
	}
	return p, nil
}

func (r *ProductRepo) List(ctx context.Context, query string, limit int, cursor string) ([]*domain.Product, string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start := 0
	if strings.TrimSpace(cursor) != "" {
		uid, err := uuid.Parse(strings.TrimSpace(cursor))
		if err != nil {
			return nil, "", app.ErrInvalidInput
		}
		start = -1
		for i, id := range r.order {
			if id == uid.String() {
				start = i + 1
				break
			}
		}
		if start < 0 {
			return nil, "", app.ErrInvalidInput
		}
	}

	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]*domain.Product, 0, limit)
	var nextCursor string

	for _, id := range r.order[start:] {
		if len(out) == limit {
			break
		}
		p := r.products[id]
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		out = append(out, p)
		nextCursor = p.ID
	}

	if len(out) < limit {
		nextCursor = ""
	}

	return out, nextCursor, nil
}
