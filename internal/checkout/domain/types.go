package domain

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

const receiptSeparator = "----------------------"

type QuoteLine struct {
	ProductID string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// Quote is a side-effect free preview of what a checkout would charge.
type Quote struct {
	Lines    []QuoteLine
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

type ReceiptLine struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	ItemTotal decimal.Decimal
}

type Receipt struct {
	CartID     string
	CustomerID string
	Lines      []ReceiptLine
	Subtotal   decimal.Decimal
	Shipping   decimal.Decimal
	Total      decimal.Decimal
}

// Render writes the receipt with every amount rounded to whole units.
func (r Receipt) Render(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "** Checkout receipt **"); err != nil {
		return err
	}
	for _, l := range r.Lines {
		if _, err := fmt.Fprintf(w, "%dx %s %s\n", l.Quantity, l.Name, l.ItemTotal.StringFixed(0)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s\nSubtotal %s\nShipping %s\nAmount %s\n",
		receiptSeparator,
		r.Subtotal.StringFixed(0),
		r.Shipping.StringFixed(0),
		r.Total.StringFixed(0),
	)
	return err
}

type Result struct {
	Receipt Receipt
	// Shipped is false when the cart had nothing shippable and no notice
	// was produced.
	Shipped      bool
	TotalWeight  decimal.Decimal
	OrderID      string
	BalanceAfter decimal.Decimal
}
