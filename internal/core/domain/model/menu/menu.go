// Package menu models the parts of a catalog menu the order services read:
// its current price and whether it is displayed (orderable).
package menu

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
)

var ErrMenuIsNotConstructed = errors.New("Menu must be created via NewMenu constructor")

// Menu is a read model of a catalog entry. Order services never modify it.
type Menu struct {
	id        kernel.UUID
	name      string
	price     kernel.Price
	displayed bool

	isConstructed bool
}

// NewMenu builds a menu, used by the catalog seeder and by repositories restoring rows.
func NewMenu(id kernel.UUID, name string, price kernel.Price, displayed bool) (*Menu, error) {
	var nameErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("menu name")
	}
	if err := errors.Join(id.Validate(), price.Validate(), nameErr); err != nil {
		return nil, err
	}
	return &Menu{
		id:            id,
		name:          name,
		price:         price,
		displayed:     displayed,
		isConstructed: true,
	}, nil
}

func (m *Menu) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuIsNotConstructed
	}
	return nil
}

func (m *Menu) ID() kernel.UUID {
	return m.id
}

func (m *Menu) Name() string {
	return m.name
}

func (m *Menu) Price() kernel.Price {
	return m.price
}

// IsDisplayed reports whether the menu can currently be ordered.
func (m *Menu) IsDisplayed() bool {
	return m.displayed
}
