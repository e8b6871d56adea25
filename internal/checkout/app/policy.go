package app

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Policy holds the business rules applied by Checkout.
type Policy struct {
	ShippingFee          decimal.Decimal
	AllowNegativeBalance bool
	// ReceiptItems lists the product names that are billed and printed on
	// the receipt. Names are matched exactly.
	ReceiptItems []string
}

func DefaultPolicy() Policy {
	return Policy{
		ShippingFee:          decimal.NewFromInt(30),
		AllowNegativeBalance: true,
		ReceiptItems:         []string{"Cheese", "Biscuits"},
	}
}

func (p Policy) onReceipt(name string) bool {
	return slices.Contains(p.ReceiptItems, name)
}
