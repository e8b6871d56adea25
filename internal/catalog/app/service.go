package app

import (
	"context"
	"errors"
	"strings"

	"github.com/dwikikusuma/checkout-sim/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) CreateProduct(ctx context.Context, name string, price decimal.Decimal, quantity int) (*domain.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" || price.IsNegative() || quantity < 0 {
		return nil, ErrInvalidInput
	}

	return s.repo.Create(ctx, domain.NewProduct(name, price, quantity))
}

func (s *Service) CreateShippableProduct(ctx context.Context, name string, price decimal.Decimal, quantity int, weightKg decimal.Decimal) (*domain.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" || price.IsNegative() || quantity < 0 || weightKg.IsNegative() {
		return nil, ErrInvalidInput
	}

	return s.repo.Create(ctx, domain.NewShippableProduct(name, price, quantity, weightKg))
}

func (s *Service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) ListProducts(ctx context.Context, query string, limit int, cursor string) ([]*domain.Product, string, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return s.repo.List(ctx, query, limit, cursor)
}
