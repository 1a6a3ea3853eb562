// Package takeoutorder contains the aggregate for orders collected at the counter,
// the simplest of the three channels: no table and no courier.
package takeoutorder

import (
	"errors"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"
)

var ErrTakeoutOrderIsNotConstructed = errors.New("TakeoutOrder must be created via NewTakeoutOrder constructor")

// TakeoutOrder is the aggregate root of a takeout order. Like the other channels it is
// handled by value: transitions return an updated copy.
type TakeoutOrder struct {
	id            kernel.UUID
	orderType     order.Type
	status        Status
	orderDateTime time.Time
	lineItems     []order.LineItem

	isConstructed bool
}

// NewTakeoutOrder creates a Waiting takeout order.
func NewTakeoutOrder(
	id kernel.UUID,
	orderType order.Type,
	lineItems []order.LineItem,
	orderDateTime time.Time,
) (TakeoutOrder, error) {
	return RestoreTakeoutOrder(id, orderType, Waiting, orderDateTime, lineItems)
}

// RestoreTakeoutOrder rebuilds an order read back from storage.
func RestoreTakeoutOrder(
	id kernel.UUID,
	orderType order.Type,
	status Status,
	orderDateTime time.Time,
	lineItems []order.LineItem,
) (TakeoutOrder, error) {
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
	); err != nil {
		return TakeoutOrder{}, err
	}
	return TakeoutOrder{
		id:            id,
		orderType:     orderType,
		status:        status,
		orderDateTime: orderDateTime,
		lineItems:     items,
		isConstructed: true,
	}, nil
}

func (o TakeoutOrder) Validate() error {
	if !o.isConstructed {
		return ErrTakeoutOrderIsNotConstructed
	}
	return nil
}

func (o TakeoutOrder) ID() kernel.UUID {
	return o.id
}

func (o TakeoutOrder) Type() order.Type {
	return o.orderType
}

func (o TakeoutOrder) Status() Status {
	return o.status
}

func (o TakeoutOrder) OrderDateTime() time.Time {
	return o.orderDateTime
}

func (o TakeoutOrder) LineItems() []order.LineItem {
	out := make([]order.LineItem, len(o.lineItems))
	copy(out, o.lineItems)
	return out
}

func (o TakeoutOrder) Accept() (TakeoutOrder, error) {
	return o.apply(order.Accept)
}

func (o TakeoutOrder) Serve() (TakeoutOrder, error) {
	return o.apply(order.Serve)
}

func (o TakeoutOrder) Complete() (TakeoutOrder, error) {
	return o.apply(order.Complete)
}

func (o TakeoutOrder) apply(op order.Operation) (TakeoutOrder, error) {
	if err := o.Validate(); err != nil {
		return TakeoutOrder{}, err
	}
	next, err := o.status.Apply(op)
	if err != nil {
		return TakeoutOrder{}, err
	}
	o.status = next
	return o, nil
}
