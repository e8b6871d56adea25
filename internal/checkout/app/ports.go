package app

import (
	"context"

	"github.com/dwikikusuma/checkout-sim/internal/checkout/domain"
	shipping "github.com/dwikikusuma/checkout-sim/internal/shipping/domain"
	"github.com/shopspring/decimal"
)

type Shipper interface {
	ShipItems(ctx context.Context, parcels []shipping.Parcel) (shipping.Notice, error)
}

type CatalogReader interface {
	GetProduct(ctx context.Context, productID string) (Product, error)
}

type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal
}

// OrderRecorder stores a completed checkout and returns the order id.
type OrderRecorder interface {
	RecordOrder(ctx context.Context, receipt domain.Receipt) (string, error)
}
