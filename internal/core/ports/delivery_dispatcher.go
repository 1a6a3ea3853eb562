package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// DeliveryDispatcher asks the courier service to pick up an accepted delivery order.
// A returned error fails the accept.
type DeliveryDispatcher interface {
	RequestDelivery(ctx context.Context, orderID kernel.UUID, total decimal.Decimal, address string) error
}
