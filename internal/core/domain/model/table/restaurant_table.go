// Package table models a dining table as the eat-in order service sees it:
// whether it is occupied and how many guests sit at it.
package table

import (
	"errors"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
)

var ErrRestaurantTableIsNotConstructed = errors.New("RestaurantTable must be created via NewRestaurantTable constructor")

// RestaurantTable is owned by the table registry. The order services only read it,
// except for Clear, which eat-in completion applies once every order on the table is done.
type RestaurantTable struct {
	id             kernel.UUID
	name           string
	occupied       bool
	numberOfGuests int

	isConstructed bool
}

// NewRestaurantTable builds a table. An unoccupied table must have no guests.
func NewRestaurantTable(id kernel.UUID, name string, occupied bool, numberOfGuests int) (*RestaurantTable, error) {
	t := &RestaurantTable{
		occupied:      occupied,
		isConstructed: true,
	}
	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setNumberOfGuests(numberOfGuests),
	); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *RestaurantTable) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrRestaurantTableIsNotConstructed
	}
	return nil
}

func (t *RestaurantTable) ID() kernel.UUID {
	return t.id
}

func (t *RestaurantTable) Name() string {
	return t.name
}

func (t *RestaurantTable) IsOccupied() bool {
	return t.occupied
}

func (t *RestaurantTable) NumberOfGuests() int {
	return t.numberOfGuests
}

// Clear marks the table unoccupied with zero guests.
func (t *RestaurantTable) Clear() {
	t.occupied = false
	t.numberOfGuests = 0
}

func (t *RestaurantTable) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *RestaurantTable) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("table name")
	}
	t.name = name
	return nil
}

func (t *RestaurantTable) setNumberOfGuests(n int) error {
	if n < 0 {
		return errs.NewValueIsInvalidErrorWithCause("number of guests", fmt.Errorf("%d is less than 0", n))
	}
	if !t.occupied && n != 0 {
		return errs.NewValueIsInvalidErrorWithCause("number of guests", fmt.Errorf("unoccupied table can not seat %d guests", n))
	}
	t.numberOfGuests = n
	return nil
}
