package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dwikikusuma/checkout-sim/internal/shipping/domain"
)

// Service prints shipment notices. It holds no state between calls.
type Service struct {
	out io.Writer
	log *slog.Logger
}

func NewService(out io.Writer, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		out: out,
		log: log,
	}
}

func (s *Service) ShipItems(ctx context.Context, parcels []domain.Parcel) (domain.Notice, error) {
	notice := domain.NewNotice(parcels)
	if err := notice.Render(s.out); err != nil {
		return domain.Notice{}, fmt.Errorf("render shipment notice: %w", err)
	}

	s.log.DebugContext(ctx, "shipment dispatched",
		slog.Int("parcels", len(notice.Lines)),
		slog.String("total_weight_kg", notice.TotalWeight.String()),
	)
	return notice, nil
}
