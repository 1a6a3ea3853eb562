// Package ports defines the contracts between the order core and its collaborators:
// the order stores, the menu lookup, the table registry and delivery dispatch.
package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/deliveryorder"
	"kitchenpos/internal/core/domain/model/eatinorder"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/takeoutorder"
)

// EatInOrderRepository is the order store for eat-in orders.
type EatInOrderRepository interface {
	// Add persists a new order. The order must be valid and not exist yet.
	Add(ctx context.Context, aggregate eatinorder.EatInOrder) error

	// Update persists the order's new status.
	Update(ctx context.Context, aggregate eatinorder.EatInOrder) error

	// Get loads an order and locks it for the rest of the unit of work.
	// Returns errs.ObjectNotFoundError when no order has the id.
	Get(ctx context.Context, id kernel.UUID) (eatinorder.EatInOrder, error)

	GetAll(ctx context.Context) ([]eatinorder.EatInOrder, error)

	// ExistsByTableAndStatusNot reports whether any order placed against tableID has a
	// status other than status. Used to decide whether a table can be released.
	ExistsByTableAndStatusNot(ctx context.Context, tableID kernel.UUID, status eatinorder.Status) (bool, error)

	// CountByStatusNot counts orders whose status differs from status.
	CountByStatusNot(ctx context.Context, status eatinorder.Status) (int64, error)
}

// TakeoutOrderRepository is the order store for takeout orders.
type TakeoutOrderRepository interface {
	Add(ctx context.Context, aggregate takeoutorder.TakeoutOrder) error
	Update(ctx context.Context, aggregate takeoutorder.TakeoutOrder) error
	Get(ctx context.Context, id kernel.UUID) (takeoutorder.TakeoutOrder, error)
	GetAll(ctx context.Context) ([]takeoutorder.TakeoutOrder, error)
	CountByStatusNot(ctx context.Context, status takeoutorder.Status) (int64, error)
}

// DeliveryOrderRepository is the order store for delivery orders.
type DeliveryOrderRepository interface {
	Add(ctx context.Context, aggregate deliveryorder.DeliveryOrder) error
	Update(ctx context.Context, aggregate deliveryorder.DeliveryOrder) error
	Get(ctx context.Context, id kernel.UUID) (deliveryorder.DeliveryOrder, error)
	GetAll(ctx context.Context) ([]deliveryorder.DeliveryOrder, error)
	CountByStatusNot(ctx context.Context, status deliveryorder.Status) (int64, error)
}
