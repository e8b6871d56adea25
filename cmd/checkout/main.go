package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	cartdomain "github.com/dwikikusuma/checkout-sim/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/checkout-sim/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/checkout-sim/internal/catalog/domain"
	catalogmem "github.com/dwikikusuma/checkout-sim/internal/catalog/infra/memory"
	checkoutapp "github.com/dwikikusuma/checkout-sim/internal/checkout/app"
	checkoutadapter "github.com/dwikikusuma/checkout-sim/internal/checkout/infra/adapter"
	customerdomain "github.com/dwikikusuma/checkout-sim/internal/customer/domain"
	orderapp "github.com/dwikikusuma/checkout-sim/internal/order/app"
	ordermem "github.com/dwikikusuma/checkout-sim/internal/order/infra/memory"
	shippingapp "github.com/dwikikusuma/checkout-sim/internal/shipping/app"

	"github.com/dwikikusuma/checkout-sim/pkg/config"
	"github.com/dwikikusuma/checkout-sim/pkg/logger"
	"github.com/dwikikusuma/checkout-sim/pkg/shutdown"
	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service:   "checkout",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		AddSource: true,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	if err := run(ctx, cfg, os.Stdout, log); err != nil {
		log.Error("checkout failed", slog.Any("err", err))
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, stdout io.Writer, log *slog.Logger) error {
	sc, err := LoadScenario(cfg.ScenarioFile)
	if err != nil {
		return err
	}

	// Catalog
	catalogSvc := catalogapp.NewService(catalogmem.NewProductRepo())
	products, err := seedCatalog(ctx, catalogSvc, sc.Products)
	if err != nil {
		return err
	}

	// Orders
	orderSvc := orderapp.NewService(ordermem.NewOrderRepo())

	// Checkout (adapters)
	policy := checkoutapp.Policy{
		ShippingFee:          cfg.ShippingFee,
		AllowNegativeBalance: cfg.AllowNegativeBalance,
		ReceiptItems:         cfg.ReceiptItems,
	}
	checkoutSvc := checkoutapp.NewService(
		shippingapp.NewService(stdout, log),
		checkoutadapter.NewCatalogServiceReader(catalogSvc),
		checkoutadapter.NewOrderServiceRecorder(orderSvc),
		stdout,
		policy,
		cfg.QuoteConcurrency,
	)

	customer := customerdomain.NewCustomer(sc.Customer.Name, decimal.NewFromFloat(sc.Customer.Balance))
	cart := cartdomain.NewCart(customer)

	for _, line := range sc.Cart {
		p := products[line.Product]
		err := cart.Add(p, line.Quantity)
		if errors.Is(err, cartdomain.ErrOutOfStock) || errors.Is(err, cartdomain.ErrInvalidQuantity) {
			log.Warn("item not added", slog.String("product", line.Product), slog.Int("quantity", line.Quantity), slog.Any("err", err))
			continue
		}
		if err != nil {
			return fmt.Errorf("add %s: %w", line.Product, err)
		}
	}

	quote, err := checkoutSvc.Quote(ctx, cart)
	switch {
	case errors.Is(err, checkoutapp.ErrEmptyCart):
		log.Debug("cart is empty, skipping quote")
	case err != nil:
		return fmt.Errorf("quote: %w", err)
	default:
		log.Debug("quote", slog.Int("lines", len(quote.Lines)), slog.String("total", quote.Total.String()))
	}

	res, err := checkoutSvc.Checkout(ctx, cart)
	if err != nil {
		return err
	}

	log.Info("customer charged",
		slog.String("customer", customer.Name),
		slog.String("order_id", res.OrderID),
		slog.String("balance", res.BalanceAfter.String()),
	)
	return nil
}

func seedCatalog(ctx context.Context, svc *catalogapp.Service, products []ScenarioProduct) (map[string]*catalogdomain.Product, error) {
	out := make(map[string]*catalogdomain.Product, len(products))
	for _, sp := range products {
		price := decimal.NewFromFloat(sp.Price)

		var (
			p   *catalogdomain.Product
			err error
		)
		if sp.WeightKg != nil {
			p, err = svc.CreateShippableProduct(ctx, sp.Name, price, sp.Quantity, decimal.NewFromFloat(*sp.WeightKg))
		} else {
			p, err = svc.CreateProduct(ctx, sp.Name, price, sp.Quantity)
		}
		if err != nil {
			return nil, fmt.Errorf("create product %q: %w", sp.Name, err)
		}
		out[sp.Name] = p
	}
	return out, nil
}
