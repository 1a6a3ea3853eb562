package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"
)

// TableRepository is the table registry.
type TableRepository interface {
	// Add stores a table. Used by the catalog seeder.
	Add(ctx context.Context, t *table.RestaurantTable) error

	// Update persists occupancy and guest count.
	Update(ctx context.Context, t *table.RestaurantTable) error

	// Get loads a table and locks it for the rest of the unit of work, so two
	// completions on the same table are decided one after the other.
	Get(ctx context.Context, id kernel.UUID) (*table.RestaurantTable, error)
}
