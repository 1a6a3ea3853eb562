package eatinorder

import (
	"errors"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"
)

var (
	// ErrEatInOrderIsNotConstructed is returned when an EatInOrder was not created through
	// NewEatInOrder or RestoreEatInOrder.
	ErrEatInOrderIsNotConstructed = errors.New("EatInOrder must be created via NewEatInOrder constructor")
)

// EatInOrder is the aggregate root for orders eaten at a restaurant table.
//
// EatInOrder follows these invariants:
//   - Has a valid identifier, order type and order time
//   - Has at least one line item; the list never changes after creation
//   - References the table it was placed against
//   - Status only moves forward along Waiting -> Accepted -> Served -> Completed
//
// Transition methods take the order by value and return the updated copy, so a
// loaded aggregate is never mutated in place.
type EatInOrder struct {
	id            kernel.UUID
	orderType     order.Type
	status        Status
	orderDateTime time.Time
	lineItems     []order.LineItem
	tableID       kernel.UUID

	isConstructed bool
}

// NewEatInOrder creates a Waiting order against tableID.
//
// Example:
//
//	item, _ := order.NewLineItem(menuID, price, 3)
//	o, err := eatinorder.NewEatInOrder(kernel.NewUUID(), order.EatIn, tableID, []order.LineItem{item}, time.Now())
func NewEatInOrder(
	id kernel.UUID,
	orderType order.Type,
	tableID kernel.UUID,
	lineItems []order.LineItem,
	orderDateTime time.Time,
) (EatInOrder, error) {
	return RestoreEatInOrder(id, orderType, Waiting, orderDateTime, lineItems, tableID)
}

// RestoreEatInOrder rebuilds an order read back from storage, validating every field.
func RestoreEatInOrder(
	id kernel.UUID,
	orderType order.Type,
	status Status,
	orderDateTime time.Time,
	lineItems []order.LineItem,
	tableID kernel.UUID,
) (EatInOrder, error) {
	o := EatInOrder{
		id:            id,
		orderType:     orderType,
		status:        status,
		orderDateTime: orderDateTime,
		tableID:       tableID,
		isConstructed: true,
	}
	var timeErr error
	if orderDateTime.IsZero() {
		timeErr = errs.NewValueIsRequiredError("order date time")
	}
	items, itemsErr := order.ValidateLineItems(lineItems)
	if err := errors.Join(
		id.Validate(),
		orderType.Validate(),
		status.Validate(),
		timeErr,
		itemsErr,
		tableID.Validate(),
	); err != nil {
		return EatInOrder{}, err
	}
	o.lineItems = items
	return o, nil
}

// Validate ensures the order was built by a constructor.
func (o EatInOrder) Validate() error {
	if !o.isConstructed {
		return ErrEatInOrderIsNotConstructed
	}
	return nil
}

func (o EatInOrder) ID() kernel.UUID {
	return o.id
}

func (o EatInOrder) Type() order.Type {
	return o.orderType
}

func (o EatInOrder) Status() Status {
	return o.status
}

func (o EatInOrder) OrderDateTime() time.Time {
	return o.orderDateTime
}

func (o EatInOrder) TableID() kernel.UUID {
	return o.tableID
}

// LineItems returns a copy of the order's line items.
func (o EatInOrder) LineItems() []order.LineItem {
	out := make([]order.LineItem, len(o.lineItems))
	copy(out, o.lineItems)
	return out
}

// Accept moves a Waiting order to Accepted.
func (o EatInOrder) Accept() (EatInOrder, error) {
	return o.apply(order.Accept)
}

// Serve moves an Accepted order to Served.
func (o EatInOrder) Serve() (EatInOrder, error) {
	return o.apply(order.Serve)
}

// Complete moves a Served order to Completed. Releasing the table is decided by the
// caller once the new status is stored.
func (o EatInOrder) Complete() (EatInOrder, error) {
	return o.apply(order.Complete)
}

func (o EatInOrder) apply(op order.Operation) (EatInOrder, error) {
	if err := o.Validate(); err != nil {
		return EatInOrder{}, err
	}
	next, err := o.status.Apply(op)
	if err != nil {
		return EatInOrder{}, err
	}
	o.status = next
	return o, nil
}
