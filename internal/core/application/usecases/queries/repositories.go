// Package queries contains read-only operations over the order stores.
// Queries do not open a transaction; they read committed state.
package queries

import (
	"kitchenpos/internal/core/ports"
)

type (
	// OrderReaders exposes the order stores a query may read.
	OrderReaders interface {
		EatInOrderRepository() ports.EatInOrderRepository
		TakeoutOrderRepository() ports.TakeoutOrderRepository
		DeliveryOrderRepository() ports.DeliveryOrderRepository
	}

	OrderReadersFactory interface {
		Create() OrderReaders
	}
)
