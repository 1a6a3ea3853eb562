package commands

import (
	"errors"
	"strings"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var ErrCreateDeliveryOrderCommandIsNotConstructed = errors.New(
	"CreateDeliveryOrderCommand must be created via NewCreateDeliveryOrderCommand constructor",
)

// CreateDeliveryOrderCommand asks for a new order sent out with a courier.
// The address is required for DELIVERY typed orders and dropped for any other type.
type CreateDeliveryOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	orderType       order.Type
	deliveryAddress string
	lineItems       []order.LineItemRequest

	guard guard.ConstructorGuard
}

func NewCreateDeliveryOrderCommand(
	orderType order.Type,
	deliveryAddress string,
	lineItems []order.LineItemRequest,
) (CreateDeliveryOrderCommand, error) {
	command := CreateDeliveryOrderCommand{
		orderID: kernel.NewUUID(),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderType(orderType),
		command.setLineItems(lineItems),
	); err != nil {
		return CreateDeliveryOrderCommand{}, err
	}
	if err := command.setDeliveryAddress(deliveryAddress); err != nil {
		return CreateDeliveryOrderCommand{}, err
	}

	return command, nil
}

func (c CreateDeliveryOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryOrderCommandIsNotConstructed)
}

func (c CreateDeliveryOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateDeliveryOrderCommand) OrderType() order.Type {
	return c.orderType
}

func (c CreateDeliveryOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c CreateDeliveryOrderCommand) LineItems() []order.LineItemRequest {
	out := make([]order.LineItemRequest, len(c.lineItems))
	copy(out, c.lineItems)
	return out
}

func (c *CreateDeliveryOrderCommand) setOrderType(orderType order.Type) error {
	if err := validateOrderType(orderType); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}

func (c *CreateDeliveryOrderCommand) setLineItems(lineItems []order.LineItemRequest) error {
	items, err := copyLineItemRequests(lineItems)
	if err != nil {
		return err
	}

	c.lineItems = items
	return nil
}

// setDeliveryAddress must run after setOrderType.
func (c *CreateDeliveryOrderCommand) setDeliveryAddress(address string) error {
	if c.orderType != order.Delivery {
		c.deliveryAddress = ""
		return nil
	}
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}

	c.deliveryAddress = address
	return nil
}
