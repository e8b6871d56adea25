package adapter

import (
	"context"
	"testing"

	catalogapp "github.com/dwikikusuma/checkout-sim/internal/catalog/app"
	catalogmem "github.com/dwikikusuma/checkout-sim/internal/catalog/infra/memory"
	"github.com/dwikikusuma/checkout-sim/internal/checkout/domain"
	orderapp "github.com/dwikikusuma/checkout-sim/internal/order/app"
	ordermem "github.com/dwikikusuma/checkout-sim/internal/order/infra/memory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogServiceReader(t *testing.T) {
	ctx := context.Background()
	svc := catalogapp.NewService(catalogmem.NewProductRepo())
	p, err := svc.CreateShippableProduct(ctx, "Cheese", decimal.NewFromInt(100), 10, decimal.RequireFromString("0.4"))
	require.NoError(t, err)

	reader := NewCatalogServiceReader(svc)

	got, err := reader.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, "Cheese", got.Name)
	assert.Equal(t, "100", got.Price.String())

	_, err = reader.GetProduct(ctx, uuid.NewString())
	assert.ErrorIs(t, err, catalogapp.ErrNotFound)
}

func TestOrderServiceRecorder(t *testing.T) {
	ctx := context.Background()
	svc := orderapp.NewService(ordermem.NewOrderRepo())
	recorder := NewOrderServiceRecorder(svc)

	id, err := recorder.RecordOrder(ctx, domain.Receipt{
		CartID:     "cart-1",
		CustomerID: "cust-1",
		Lines: []domain.ReceiptLine{
			{Name: "Cheese", Quantity: 2, UnitPrice: decimal.NewFromInt(100), ItemTotal: decimal.NewFromInt(200)},
			{Name: "Biscuits", Quantity: 1, UnitPrice: decimal.NewFromInt(150), ItemTotal: decimal.NewFromInt(150)},
		},
		Subtotal: decimal.NewFromInt(350),
		Shipping: decimal.NewFromInt(30),
		Total:    decimal.NewFromInt(380),
	})
	require.NoError(t, err)

	order, err := svc.GetOrder(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "cart-1", order.CartID)
	assert.Equal(t, "350", order.SubTotalAmount.String())
	assert.Equal(t, "380", order.TotalAmount.String())
	assert.Len(t, order.OrderItems, 2)

	orders, err := svc.ListOrders(ctx, "cust-1")
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestOrderServiceRecorder_InvalidReceipt(t *testing.T) {
	recorder := NewOrderServiceRecorder(orderapp.NewService(ordermem.NewOrderRepo()))

	_, err := recorder.RecordOrder(context.Background(), domain.Receipt{
		CustomerID: "cust-1",
		Shipping:   decimal.NewFromInt(-30),
	})
	assert.ErrorIs(t, err, orderapp.ErrInvalidInput)
}
