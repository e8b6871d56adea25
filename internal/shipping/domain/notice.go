package domain

import (
	"fmt"
	"io"

	catalog "github.com/dwikikusuma/checkout-sim/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

// Parcel is anything that can be packed: it knows how many units it holds
// and what one unit weighs.
type Parcel interface {
	Name() string
	Quantity() int
	UnitWeight() decimal.Decimal
	FormattedWeight() string
}

type NoticeLine struct {
	Quantity        int
	Name            string
	FormattedWeight string
}

type Notice struct {
	Lines       []NoticeLine
	TotalWeight decimal.Decimal
}

func NewNotice(parcels []Parcel) Notice {
	n := Notice{
		Lines:       make([]NoticeLine, 0, len(parcels)),
		TotalWeight: decimal.Zero,
	}
	for _, p := range parcels {
		n.Lines = append(n.Lines, NoticeLine{
			Quantity:        p.Quantity(),
			Name:            p.Name(),
			FormattedWeight: p.FormattedWeight(),
		})
		n.TotalWeight = n.TotalWeight.Add(p.UnitWeight().Mul(decimal.NewFromInt(int64(p.Quantity()))))
	}
	return n
}

func (n Notice) Render(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "** Shipment notice **"); err != nil {
		return err
	}
	for _, l := range n.Lines {
		if _, err := fmt.Fprintf(w, "%dx %s %s\n", l.Quantity, l.Name, l.FormattedWeight); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Total package weight %s\n\n", catalog.FormatKilograms(n.TotalWeight))
	return err
}
