package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity   = errors.New("quantity must not be negative")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Shipping is the capability of a product that has a physical weight.
type Shipping struct {
	WeightKg decimal.Decimal
}

type Product struct {
	ID        string
	Name      string
	Price     decimal.Decimal
	Quantity  int
	Shipping  *Shipping
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewProduct(name string, price decimal.Decimal, quantity int) *Product {
	return &Product{
		Name:     name,
		Price:    price,
		Quantity: quantity,
	}
}

func NewShippableProduct(name string, price decimal.Decimal, quantity int, weightKg decimal.Decimal) *Product {
	p := NewProduct(name, price, quantity)
	p.Shipping = &Shipping{WeightKg: weightKg}
	return p
}

func (p *Product) IsAvailable(requested int) bool {
	return p.Quantity >= requested
}

// ReduceQuantity is the only way stock goes down. Stock is left untouched
// when the amount cannot be covered.
func (p *Product) ReduceQuantity(amount int) error {
	if amount < 0 {
		return ErrInvalidQuantity
	}
	if amount > p.Quantity {
		return ErrInsufficientStock
	}
	p.Quantity -= amount
	p.UpdatedAt = time.Now()
	return nil
}

// ShippingWeight returns the per-unit weight in kilograms and whether the
// product can be shipped at all.
func (p *Product) ShippingWeight() (decimal.Decimal, bool) {
	if p.Shipping == nil {
		return decimal.Zero, false
	}
	return p.Shipping.WeightKg, true
}

func (p *Product) IsShippable() bool {
	return p.Shipping != nil
}

func (p *Product) FormattedWeight() string {
	w, _ := p.ShippingWeight()
	return FormatGrams(w)
}
