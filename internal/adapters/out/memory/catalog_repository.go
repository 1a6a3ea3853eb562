package memory

import (
	"context"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/pkg/errs"
)

// MenuRepository, like TableRepository, hands out copies of what it stores.
type MenuRepository struct {
	uow *UnitOfWork
}

func (r *MenuRepository) Add(_ context.Context, m *menu.Menu) error {
	stored, err := cloneMenu(m)
	if err != nil {
		return err
	}
	return r.uow.view(func(staged, committed *state) error {
		if _, ok := lookup(staged.menus, committed.menus, m.ID()); ok {
			return errAlreadyExists("menu", m.ID())
		}
		staged.menus[m.ID()] = stored
		return nil
	})
}

func (r *MenuRepository) Get(_ context.Context, id kernel.UUID) (*menu.Menu, error) {
	var found *menu.Menu
	err := r.uow.view(func(staged, committed *state) error {
		m, ok := lookup(staged.menus, committed.menus, id)
		if !ok {
			return errs.NewObjectNotFoundError("menu", id.String())
		}
		var cloneErr error
		found, cloneErr = cloneMenu(m)
		return cloneErr
	})
	return found, err
}

func (r *MenuRepository) GetAllByIDs(_ context.Context, ids []kernel.UUID) ([]*menu.Menu, error) {
	var found []*menu.Menu
	err := r.uow.view(func(staged, committed *state) error {
		seen := make(map[kernel.UUID]struct{}, len(ids))
		for _, id := range ids {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			m, ok := lookup(staged.menus, committed.menus, id)
			if !ok {
				continue
			}
			loaded, err := cloneMenu(m)
			if err != nil {
				return err
			}
			found = append(found, loaded)
		}
		return nil
	})
	return found, err
}

// TableRepository stores copies so callers can not change a stored table in place.
type TableRepository struct {
	uow *UnitOfWork
}

func (r *TableRepository) Add(_ context.Context, t *table.RestaurantTable) error {
	stored, err := cloneTable(t)
	if err != nil {
		return err
	}
	return r.uow.view(func(staged, committed *state) error {
		if _, ok := lookup(staged.tables, committed.tables, t.ID()); ok {
			return errAlreadyExists("restaurant table", t.ID())
		}
		staged.tables[t.ID()] = stored
		return nil
	})
}

func (r *TableRepository) Update(_ context.Context, t *table.RestaurantTable) error {
	stored, err := cloneTable(t)
	if err != nil {
		return err
	}
	return r.uow.view(func(staged, committed *state) error {
		if _, ok := lookup(staged.tables, committed.tables, t.ID()); !ok {
			return errs.NewObjectNotFoundError("restaurant table", t.ID().String())
		}
		staged.tables[t.ID()] = stored
		return nil
	})
}

func (r *TableRepository) Get(_ context.Context, id kernel.UUID) (*table.RestaurantTable, error) {
	var found *table.RestaurantTable
	err := r.uow.view(func(staged, committed *state) error {
		t, ok := lookup(staged.tables, committed.tables, id)
		if !ok {
			return errs.NewObjectNotFoundError("restaurant table", id.String())
		}
		var cloneErr error
		found, cloneErr = cloneTable(t)
		return cloneErr
	})
	return found, err
}

func cloneMenu(m *menu.Menu) (*menu.Menu, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return menu.NewMenu(m.ID(), m.Name(), m.Price(), m.IsDisplayed())
}

func cloneTable(t *table.RestaurantTable) (*table.RestaurantTable, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return table.NewRestaurantTable(t.ID(), t.Name(), t.IsOccupied(), t.NumberOfGuests())
}

func errAlreadyExists(name string, id kernel.UUID) error {
	return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s already exists", id))
}
