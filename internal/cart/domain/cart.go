package domain

import (
	"errors"
	"fmt"
	"time"

	catalog "github.com/dwikikusuma/checkout-sim/internal/catalog/domain"
	customer "github.com/dwikikusuma/checkout-sim/internal/customer/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusBuilding   Status = "building"
	StatusCheckedOut Status = "checked_out"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrOutOfStock      = errors.New("out of stock")
	ErrCartCheckedOut  = errors.New("cart is already checked out")
)

// CartItem pairs a catalog product with the quantity requested when it was
// added. The product is shared with the catalog, not copied.
type CartItem struct {
	product  *catalog.Product
	quantity int
}

func (i CartItem) Product() *catalog.Product { return i.product }
func (i CartItem) Name() string              { return i.product.Name }
func (i CartItem) Quantity() int             { return i.quantity }
func (i CartItem) IsShippable() bool         { return i.product.IsShippable() }

func (i CartItem) ItemTotal() decimal.Decimal {
	return i.product.Price.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// UnitWeight is the weight of a single unit in kg, zero when the product
// cannot be shipped.
func (i CartItem) UnitWeight() decimal.Decimal {
	w, _ := i.product.ShippingWeight()
	return w
}

func (i CartItem) TotalWeight() decimal.Decimal {
	return i.UnitWeight().Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i CartItem) FormattedWeight() string {
	return i.product.FormattedWeight()
}

type Cart struct {
	ID        string
	Customer  *customer.Customer
	CreatedAt time.Time
	UpdatedAt time.Time

	status Status
	items  []CartItem
}

func NewCart(c *customer.Customer) *Cart {
	now := time.Now()
	return &Cart{
		ID:        uuid.NewString(),
		Customer:  c,
		CreatedAt: now,
		UpdatedAt: now,
		status:    StatusBuilding,
	}
}

func (c *Cart) Status() Status { return c.status }

// Items returns the cart lines in the order they were added.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Add reserves stock for the product and appends a new line. When the product
// cannot cover the quantity neither the cart nor the stock change.
func (c *Cart) Add(p *catalog.Product, quantity int) error {
	if c.status == StatusCheckedOut {
		return ErrCartCheckedOut
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if !p.IsAvailable(quantity) {
		return fmt.Errorf("%w: %s has %d, requested %d", ErrOutOfStock, p.Name, p.Quantity, quantity)
	}
	if err := p.ReduceQuantity(quantity); err != nil {
		return fmt.Errorf("reduce stock of %s: %w", p.Name, err)
	}

	c.items = append(c.items, CartItem{product: p, quantity: quantity})
	c.UpdatedAt = time.Now()
	return nil
}

func (c *Cart) MarkCheckedOut() error {
	if c.status == StatusCheckedOut {
		return ErrCartCheckedOut
	}
	c.status = StatusCheckedOut
	c.UpdatedAt = time.Now()
	return nil
}
