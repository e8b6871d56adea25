package app

import (
	"context"
	"errors"
	"testing"

	"github.com/dwikikusuma/checkout-sim/internal/order/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	created []domain.Order
	err     error
}

func (f *fakeRepo) Create(ctx context.Context, o domain.Order) (domain.Order, error) {
	if f.err != nil {
		return domain.Order{}, f.err
	}
	o.ID = "order-1"
	f.created = append(f.created, o)
	return o, nil
}

func (f *fakeRepo) Get(ctx context.Context, id string) (domain.Order, error) {
	return domain.Order{}, ErrNotFound
}

func (f *fakeRepo) ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	return f.created, nil
}

func TestCreateOrder_ComputesTotals(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	resp, err := svc.CreateOrder(context.Background(), domain.CreateOrderRequest{
		CartID:         "cart-1",
		CustomerID:     "cust-1",
		ShippingAmount: decimal.NewFromInt(30),
		Items: []domain.OrderItemRequest{
			{Name: "Cheese", UnitAmount: decimal.NewFromInt(100), Quantity: 2},
			{Name: "Biscuits", UnitAmount: decimal.NewFromInt(150), Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "order-1", resp.ID)
	assert.Equal(t, OrderStatusPaid, resp.Status)
	assert.Equal(t, "380", resp.TotalAmount.String())

	require.Len(t, repo.created, 1)
	o := repo.created[0]
	assert.Equal(t, "350", o.SubTotalAmount.String())
	assert.Equal(t, "30", o.ShippingAmount.String())
	assert.Equal(t, "200", o.OrderItems[0].LineTotalAmount.String())
	assert.Equal(t, "cart-1", o.CartID)
}

func TestCreateOrder_EmptyItemsChargesShipping(t *testing.T) {
	svc := NewService(&fakeRepo{})

	resp, err := svc.CreateOrder(context.Background(), domain.CreateOrderRequest{
		CustomerID:     "cust-1",
		ShippingAmount: decimal.NewFromInt(30),
	})
	require.NoError(t, err)
	assert.Equal(t, "30", resp.TotalAmount.String())
}

func TestCreateOrder_Validation(t *testing.T) {
	svc := NewService(&fakeRepo{})
	ctx := context.Background()

	tests := []struct {
		name string
		req  domain.CreateOrderRequest
	}{
		{"missing customer", domain.CreateOrderRequest{ShippingAmount: decimal.NewFromInt(30)}},
		{"negative shipping", domain.CreateOrderRequest{CustomerID: "c", ShippingAmount: decimal.NewFromInt(-1)}},
		{"zero quantity", domain.CreateOrderRequest{CustomerID: "c", Items: []domain.OrderItemRequest{
			{Name: "TV", UnitAmount: decimal.NewFromInt(300), Quantity: 0},
		}}},
		{"negative unit amount", domain.CreateOrderRequest{CustomerID: "c", Items: []domain.OrderItemRequest{
			{Name: "TV", UnitAmount: decimal.NewFromInt(-300), Quantity: 1},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateOrder(ctx, tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreateOrder_RepoError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(&fakeRepo{err: boom})

	_, err := svc.CreateOrder(context.Background(), domain.CreateOrderRequest{CustomerID: "c"})
	assert.ErrorIs(t, err, boom)
}

func TestGetAndListValidation(t *testing.T) {
	svc := NewService(&fakeRepo{})
	ctx := context.Background()

	_, err := svc.GetOrder(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ListOrders(ctx, " ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
