package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	cart "github.com/dwikikusuma/checkout-sim/internal/cart/domain"
	"github.com/dwikikusuma/checkout-sim/internal/checkout/domain"
	shipping "github.com/dwikikusuma/checkout-sim/internal/shipping/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrMissingCustomer     = errors.New("cart has no customer")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

type Service struct {
	Shipper Shipper
	Catalog CatalogReader
	// Orders is optional; when nil completed checkouts are not recorded.
	Orders OrderRecorder

	out           io.Writer
	policy        Policy
	log           *slog.Logger
	maxConcurrent int
}

func NewService(shipper Shipper, catalog CatalogReader, orders OrderRecorder, out io.Writer, policy Policy, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}

	return &Service{
		Shipper:       shipper,
		Catalog:       catalog,
		Orders:        orders,
		out:           out,
		policy:        policy,
		log:           slog.Default(),
		maxConcurrent: maxConcurrent,
	}
}

// Checkout ships what can be shipped, prints the receipt, records the order
// and charges the customer. A cart can be checked out once.
func (s *Service) Checkout(ctx context.Context, c *cart.Cart) (domain.Result, error) {
	if c.Status() == cart.StatusCheckedOut {
		return domain.Result{}, cart.ErrCartCheckedOut
	}
	if c.Customer == nil {
		return domain.Result{}, ErrMissingCustomer
	}

	var parcels []shipping.Parcel
	receipt := domain.Receipt{
		CartID:     c.ID,
		CustomerID: c.Customer.ID,
		Subtotal:   decimal.Zero,
		Shipping:   s.policy.ShippingFee,
	}

	for _, it := range c.Items() {
		if it.IsShippable() {
			parcels = append(parcels, it)
		}
		if s.policy.onReceipt(it.Name()) {
			receipt.Lines = append(receipt.Lines, domain.ReceiptLine{
				Name:      it.Name(),
				Quantity:  it.Quantity(),
				UnitPrice: it.Product().Price,
				ItemTotal: it.ItemTotal(),
			})
			receipt.Subtotal = receipt.Subtotal.Add(it.ItemTotal())
		}
	}
	receipt.Total = receipt.Subtotal.Add(receipt.Shipping)

	customer := c.Customer
	if !s.policy.AllowNegativeBalance && !customer.CanAfford(receipt.Total) {
		return domain.Result{}, fmt.Errorf("%w: balance %s, amount %s", ErrInsufficientBalance, customer.Balance, receipt.Total)
	}

	// Record first: a failed checkout must leave the output untouched.
	result := domain.Result{TotalWeight: decimal.Zero}
	if s.Orders != nil {
		orderID, err := s.Orders.RecordOrder(ctx, receipt)
		if err != nil {
			return domain.Result{}, fmt.Errorf("record order: %w", err)
		}
		result.OrderID = orderID
	}

	if len(parcels) > 0 {
		notice, err := s.Shipper.ShipItems(ctx, parcels)
		if err != nil {
			return domain.Result{}, fmt.Errorf("ship items: %w", err)
		}
		result.Shipped = true
		result.TotalWeight = notice.TotalWeight
	}

	if err := receipt.Render(s.out); err != nil {
		return domain.Result{}, fmt.Errorf("print receipt: %w", err)
	}

	customer.DeductBalance(receipt.Total)
	if err := c.MarkCheckedOut(); err != nil {
		return domain.Result{}, err
	}

	result.Receipt = receipt
	result.BalanceAfter = customer.Balance

	s.log.InfoContext(ctx, "checkout completed",
		slog.String("cart_id", c.ID),
		slog.String("customer", customer.Name),
		slog.String("total", receipt.Total.String()),
		slog.String("balance", customer.Balance.String()),
		slog.Bool("shipped", result.Shipped),
	)
	return result, nil
}

// Quote prices the receipt lines against the catalog without touching the
// cart, the customer or stdout.
func (s *Service) Quote(ctx context.Context, c *cart.Cart) (domain.Quote, error) {
	items := c.Items()
	if len(items) == 0 {
		return domain.Quote{}, ErrEmptyCart
	}

	billed := make([]cart.CartItem, 0, len(items))
	for _, it := range items {
		if s.policy.onReceipt(it.Name()) {
			billed = append(billed, it)
		}
	}

	lines := make([]domain.QuoteLine, len(billed))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range billed {
		idx := idx
		g.Go(func() error {
			it := billed[idx]
			product, err := s.Catalog.GetProduct(ctx, it.Product().ID)
			if err != nil {
				return fmt.Errorf("failed to get product %s: %w", it.Name(), err)
			}

			lines[idx] = domain.QuoteLine{
				ProductID: product.ID,
				Name:      product.Name,
				Quantity:  it.Quantity(),
				UnitPrice: product.Price,
				LineTotal: product.Price.Mul(decimal.NewFromInt(int64(it.Quantity()))),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Quote{}, err
	}

	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.LineTotal)
	}

	return domain.Quote{
		Lines:    lines,
		Subtotal: subtotal,
		Shipping: s.policy.ShippingFee,
		Total:    subtotal.Add(s.policy.ShippingFee),
	}, nil
}
