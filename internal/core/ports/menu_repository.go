package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
)

// MenuRepository is the menu lookup. Menus are maintained elsewhere; the order core
// only reads them, except for seeding.
type MenuRepository interface {
	// Add stores a menu. Used by the catalog seeder.
	Add(ctx context.Context, m *menu.Menu) error

	// Get returns errs.ObjectNotFoundError for an unknown id.
	Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error)

	// GetAllByIDs returns one menu per distinct id that exists. Missing ids are
	// skipped, so callers must compare the count with what they asked for.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Menu, error)
}
