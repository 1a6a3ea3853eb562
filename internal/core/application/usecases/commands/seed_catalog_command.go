package commands

import (
	"errors"
	"fmt"

	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var ErrSeedCatalogCommandIsNotConstructed = errors.New(
	"SeedCatalogCommand must be created via NewSeedCatalogCommand constructor",
)

// SeedCatalogCommand carries the menus and tables to store before any order is taken.
type SeedCatalogCommand struct { //nolint:recvcheck //using for validation
	menus  []*menu.Menu
	tables []*table.RestaurantTable

	guard guard.ConstructorGuard
}

func NewSeedCatalogCommand(menus []*menu.Menu, tables []*table.RestaurantTable) (SeedCatalogCommand, error) {
	command := SeedCatalogCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setMenus(menus),
		command.setTables(tables),
	); err != nil {
		return SeedCatalogCommand{}, err
	}
	if len(command.menus) == 0 && len(command.tables) == 0 {
		return SeedCatalogCommand{}, errs.NewValueIsRequiredError("catalog")
	}

	return command, nil
}

func (c SeedCatalogCommand) Validate() error {
	return c.guard.Validate(ErrSeedCatalogCommandIsNotConstructed)
}

func (c SeedCatalogCommand) Menus() []*menu.Menu {
	return c.menus
}

func (c SeedCatalogCommand) Tables() []*table.RestaurantTable {
	return c.tables
}

func (c *SeedCatalogCommand) setMenus(menus []*menu.Menu) error {
	for i, m := range menus {
		if err := m.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("menus", fmt.Errorf("menu %d: %w", i, err))
		}
	}

	c.menus = menus
	return nil
}

func (c *SeedCatalogCommand) setTables(tables []*table.RestaurantTable) error {
	for i, t := range tables {
		if err := t.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("tables", fmt.Errorf("table %d: %w", i, err))
		}
	}

	c.tables = tables
	return nil
}
