package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dwikikusuma/checkout-sim/internal/order/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("order not found")
)

type Service struct {
	repo OrderRepo
}

const (
	OrderStatusPaid = "PAID"
)

func NewService(repo OrderRepo) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.OrderResponse, error) {
	if strings.TrimSpace(req.CustomerID) == "" {
		return domain.OrderResponse{}, fmt.Errorf("%w: customer id is required", ErrInvalidInput)
	}
	if req.ShippingAmount.IsNegative() {
		return domain.OrderResponse{}, fmt.Errorf("%w: shipping amount cannot be negative, got %s", ErrInvalidInput, req.ShippingAmount)
	}

	orderItems := make([]domain.OrderItem, 0, len(req.Items))
	subTotalAmount := decimal.Zero

	for i, item := range req.Items {
		if item.Quantity <= 0 {
			return domain.OrderResponse{}, fmt.Errorf("%w: item %d: quantity must be positive, got %d", ErrInvalidInput, i, item.Quantity)
		}
		if item.UnitAmount.IsNegative() {
			return domain.OrderResponse{}, fmt.Errorf("%w: item %d: unit amount cannot be negative, got %s", ErrInvalidInput, i, item.UnitAmount)
		}

		lineTotal := item.UnitAmount.Mul(decimal.NewFromInt(int64(item.Quantity)))
		orderItems = append(orderItems, domain.OrderItem{
			Name:            item.Name,
			UnitAmount:      item.UnitAmount,
			Quantity:        item.Quantity,
			LineTotalAmount: lineTotal,
		})

		subTotalAmount = subTotalAmount.Add(lineTotal)
	}

	order := domain.Order{
		CartID:         req.CartID,
		CustomerID:     req.CustomerID,
		Status:         OrderStatusPaid,
		ShippingAmount: req.ShippingAmount,
		SubTotalAmount: subTotalAmount,
		TotalAmount:    subTotalAmount.Add(req.ShippingAmount),
		OrderItems:     orderItems,
	}

	createdOrder, err := s.repo.Create(ctx, order)
	if err != nil {
		return domain.OrderResponse{}, err
	}

	return domain.OrderResponse{
		ID:          createdOrder.ID,
		Status:      createdOrder.Status,
		TotalAmount: createdOrder.TotalAmount,
		CreatedAt:   createdOrder.CreatedAt,
	}, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Order{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) ListOrders(ctx context.Context, customerID string) ([]domain.Order, error) {
	if strings.TrimSpace(customerID) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByCustomer(ctx, customerID)
}
