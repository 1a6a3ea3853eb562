package deliveryorder

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"
)

var (
	ErrDeliveryOrderIsNotConstructed = errors.New("DeliveryOrder must be created via NewDeliveryOrder constructor")
)

// DeliveryOrder is the aggregate root of an order delivered by a courier.
//
// DeliveryOrder follows these invariants:
//   - Has a valid identifier, order type, order time and at least one line item
//   - Has a non-empty delivery address if and only if its type is DELIVERY
//   - The address and line items never change after creation
//   - Status only moves forward; see Status for the transition table
type DeliveryOrder struct {
	id              kernel.UUID
	orderType       order.Type
	status          Status
	orderDateTime   time.Time
	lineItems       []order.LineItem
	deliveryAddress string

	isConstructed bool
}

// NewDeliveryOrder creates a Waiting order. The address is required for DELIVERY typed
// orders and ignored for any other type.
//
// Example:
//
//	o, err := deliveryorder.NewDeliveryOrder(
//	    kernel.NewUUID(), order.Delivery, "12 Baker Street", items, time.Now(),
//	)
func NewDeliveryOrder(
	id kernel.UUID,
	orderType order.Type,
	deliveryAddress string,
	lineItems []order.LineItem,
	orderDateTime time.Time,
) (DeliveryOrder, error) {
	if orderType != order.Delivery {
		deliveryAddress = ""
	}
	return RestoreDeliveryOrder(id, orderType, Waiting, orderDateTime, lineItems, deliveryAddress)
}

// RestoreDeliveryOrder rebuilds an order read back from storage.
func RestoreDeliveryOrder(
	id kernel.UUID,
	orderType order.Type,
	status Status,
	orderDateTime time.Time,
	lineItems []order.LineItem,
	deliveryAddress string,
) (DeliveryOrder, error) {
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
		validateAddress(orderType, deliveryAddress),
	); err != nil {
		return DeliveryOrder{}, err
	}
	return DeliveryOrder{
		id:              id,
		orderType:       orderType,
		status:          status,
		orderDateTime:   orderDateTime,
		lineItems:       items,
		deliveryAddress: deliveryAddress,
		isConstructed:   true,
	}, nil
}

func validateAddress(orderType order.Type, address string) error {
	if orderType == order.Delivery && strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	if orderType != order.Delivery && address != "" {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery address",
			fmt.Errorf("%s order can not have a delivery address", orderType),
		)
	}
	return nil
}

func (o DeliveryOrder) Validate() error {
	if !o.isConstructed {
		return ErrDeliveryOrderIsNotConstructed
	}
	return nil
}

func (o DeliveryOrder) ID() kernel.UUID {
	return o.id
}

func (o DeliveryOrder) Type() order.Type {
	return o.orderType
}

// IsDelivery reports whether the order is DELIVERY typed.
func (o DeliveryOrder) IsDelivery() bool {
	return o.orderType == order.Delivery
}

func (o DeliveryOrder) Status() Status {
	return o.status
}

func (o DeliveryOrder) OrderDateTime() time.Time {
	return o.orderDateTime
}

func (o DeliveryOrder) DeliveryAddress() string {
	return o.deliveryAddress
}

func (o DeliveryOrder) LineItems() []order.LineItem {
	out := make([]order.LineItem, len(o.lineItems))
	copy(out, o.lineItems)
	return out
}

// Accept moves a Waiting order to Accepted. Dispatching a courier is the caller's job.
func (o DeliveryOrder) Accept() (DeliveryOrder, error) {
	return o.apply(order.Accept)
}

// Serve hands the order to the courier: Accepted -> PickedUp.
func (o DeliveryOrder) Serve() (DeliveryOrder, error) {
	return o.apply(order.Serve)
}

// StartDelivery moves a DELIVERY typed, PickedUp order to Delivering.
func (o DeliveryOrder) StartDelivery() (DeliveryOrder, error) {
	if err := o.Validate(); err != nil {
		return DeliveryOrder{}, err
	}
	if !o.IsDelivery() {
		return DeliveryOrder{}, errs.NewStateIsInvalidErrorWithCause(
			"order type",
			fmt.Errorf("%s order can not %s", o.orderType, order.StartDelivery),
		)
	}
	return o.apply(order.StartDelivery)
}

// CompleteDelivery moves a Delivering order to Delivered.
func (o DeliveryOrder) CompleteDelivery() (DeliveryOrder, error) {
	return o.apply(order.CompleteDelivery)
}

// Complete finishes the order. A DELIVERY typed order must be Delivered first; any
// other type is completed from whatever status it is in, unless already Completed.
func (o DeliveryOrder) Complete() (DeliveryOrder, error) {
	if err := o.Validate(); err != nil {
		return DeliveryOrder{}, err
	}
	if o.IsDelivery() {
		return o.apply(order.Complete)
	}
	if o.status == Completed {
		return DeliveryOrder{}, o.status.conflict(order.Complete)
	}
	o.status = Completed
	return o, nil
}

func (o DeliveryOrder) apply(op order.Operation) (DeliveryOrder, error) {
	if err := o.Validate(); err != nil {
		return DeliveryOrder{}, err
	}
	next, err := o.status.Apply(op)
	if err != nil {
		return DeliveryOrder{}, err
	}
	o.status = next
	return o, nil
}
