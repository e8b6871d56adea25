package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Customer struct {
	ID      string
	Name    string
	Balance decimal.Decimal
}

func NewCustomer(name string, balance decimal.Decimal) *Customer {
	return &Customer{
		ID:      uuid.NewString(),
		Name:    name,
		Balance: balance,
	}
}

func (c *Customer) CanAfford(amount decimal.Decimal) bool {
	return c.Balance.GreaterThanOrEqual(amount)
}

// DeductBalance always succeeds; the balance is allowed to go negative.
func (c *Customer) DeductBalance(amount decimal.Decimal) {
	c.Balance = c.Balance.Sub(amount)
}
