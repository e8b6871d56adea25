package adapter

import (
	"context"

	"github.com/dwikikusuma/checkout-sim/internal/checkout/domain"
	orderapp "github.com/dwikikusuma/checkout-sim/internal/order/app"
	orderdomain "github.com/dwikikusuma/checkout-sim/internal/order/domain"
)

type OrderServiceRecorder struct {
	svc *orderapp.Service
}

func NewOrderServiceRecorder(svc *orderapp.Service) *OrderServiceRecorder {
	return &OrderServiceRecorder{svc: svc}
}

func (r *OrderServiceRecorder) RecordOrder(ctx context.Context, receipt domain.Receipt) (string, error) {
	items := make([]orderdomain.OrderItemRequest, 0, len(receipt.Lines))
	for _, l := range receipt.Lines {
		items = append(items, orderdomain.OrderItemRequest{
			Name:       l.Name,
			UnitAmount: l.UnitPrice,
			Quantity:   l.Quantity,
		})
	}

	resp, err := r.svc.CreateOrder(ctx, orderdomain.CreateOrderRequest{
		CartID:         receipt.CartID,
		CustomerID:     receipt.CustomerID,
		ShippingAmount: receipt.Shipping,
		Items:          items,
	})
	if err != nil {
		return "", err
	}
	return resp.ID, nil
}
