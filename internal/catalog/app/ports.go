package app

import (
	"context"

	"github.com/dwikikusuma/checkout-sim/internal/catalog/domain"
)

// ProductRepo stores products by reference: every caller of Get sees the same
// *domain.Product, so stock reductions made by a cart are visible here.
type ProductRepo interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, query string, limit int, cursor string) ([]*domain.Product, string, error)
}
