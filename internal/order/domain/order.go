package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID             string
	CartID         string
	CustomerID     string
	Status         string
	SubTotalAmount decimal.Decimal
	ShippingAmount decimal.Decimal
	TotalAmount    decimal.Decimal
	OrderItems     []OrderItem
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type OrderItem struct {
	ID              string
	OrderID         string
	Name            string
	UnitAmount      decimal.Decimal
	Quantity        int
	LineTotalAmount decimal.Decimal
}

type CreateOrderRequest struct {
	CartID         string
	CustomerID     string
	ShippingAmount decimal.Decimal
	Items          []OrderItemRequest
}

type OrderItemRequest struct {
	Name       string
	UnitAmount decimal.Decimal
	Quantity   int
}

type OrderResponse struct {
	ID          string          `json:"id"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
}
