package kitchenriders

import (
	"context"
	"log/slog"

	"kitchenpos/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// LoggingDispatcher accepts every request and only logs it.
type LoggingDispatcher struct {
	logger *slog.Logger
}

func NewLoggingDispatcher(logger *slog.Logger) *LoggingDispatcher {
	return &LoggingDispatcher{logger: logger.With("component", "logging_dispatcher")}
}

func (d *LoggingDispatcher) RequestDelivery(
	ctx context.Context,
	orderID kernel.UUID,
	total decimal.Decimal,
	address string,
) error {
	d.logger.InfoContext(ctx, "Delivery requested",
		"order_id", orderID.String(),
		"amount", total.String(),
		"delivery_address", address,
	)
	return nil
}
