package app

import (
	"context"
	"testing"

	"github.com/dwikikusuma/checkout-sim/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

type fakeRepo struct {
	lastLimit int
}

func (*fakeRepo) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	p.ID = "p-1"
	return p, nil
}
func (*fakeRepo) Get(ctx context.Context, id string) (*domain.Product, error) {
	return &domain.Product{ID: id}, nil
}
func (f *fakeRepo) List(ctx context.Context, query string, limit int, cursor string) ([]*domain.Product, string, error) {
	f.lastLimit = limit
	return nil, "", nil
}

func TestCreateProductValidation(t *testing.T) {
	svc := NewService(&fakeRepo{})
	ctx := context.Background()

	t.Run("empty name -> invalid", func(t *testing.T) {
		_, err := svc.CreateProduct(ctx, "   ", decimal.NewFromInt(100), 1)
		if err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("negative price -> invalid", func(t *testing.T) {
		_, err := svc.CreateProduct(ctx, "TV", decimal.NewFromInt(-1), 1)
		if err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("negative quantity -> invalid", func(t *testing.T) {
		_, err := svc.CreateProduct(ctx, "TV", decimal.NewFromInt(300), -5)
		if err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("negative weight -> invalid", func(t *testing.T) {
		_, err := svc.CreateShippableProduct(ctx, "Cheese", decimal.NewFromInt(100), 1, decimal.RequireFromString("-0.4"))
		if err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("free product is allowed", func(t *testing.T) {
		p, err := svc.CreateProduct(ctx, "  Sample  ", decimal.Zero, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Name != "Sample" {
			t.Fatalf("expected trimmed name, got %q", p.Name)
		}
	})

	t.Run("shippable product keeps weight", func(t *testing.T) {
		p, err := svc.CreateShippableProduct(ctx, "Cheese", decimal.NewFromInt(100), 10, decimal.RequireFromString("0.4"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !p.IsShippable() || p.FormattedWeight() != "400g" {
			t.Fatalf("expected shippable 400g product, got %+v", p)
		}
	})
}

func TestGetProductValidation(t *testing.T) {
	svc := NewService(&fakeRepo{})

	if _, err := svc.GetProduct(context.Background(), " "); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestListProductsClampsLimit(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	cases := map[int]int{0: 20, -3: 20, 5: 5, 500: 100}
	for in, want := range cases {
		if _, _, err := svc.ListProducts(ctx, "", in, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.lastLimit != want {
			t.Fatalf("limit %d: expected %d, got %d", in, want, repo.lastLimit)
		}
	}
}
