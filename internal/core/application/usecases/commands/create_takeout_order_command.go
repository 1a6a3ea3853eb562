package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/guard"
)

var ErrCreateTakeoutOrderCommandIsNotConstructed = errors.New(
	"CreateTakeoutOrderCommand must be created via NewCreateTakeoutOrderCommand constructor",
)

// CreateTakeoutOrderCommand asks for a new order collected at the counter.
type CreateTakeoutOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	orderType order.Type
	lineItems []order.LineItemRequest

	guard guard.ConstructorGuard
}

func NewCreateTakeoutOrderCommand(
	orderType order.Type,
	lineItems []order.LineItemRequest,
) (CreateTakeoutOrderCommand, error) {
	command := CreateTakeoutOrderCommand{
		orderID: kernel.NewUUID(),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderType(orderType),
		command.setLineItems(lineItems),
	); err != nil {
		return CreateTakeoutOrderCommand{}, err
	}

	return command, nil
}

func (c CreateTakeoutOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateTakeoutOrderCommandIsNotConstructed)
}

func (c CreateTakeoutOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateTakeoutOrderCommand) OrderType() order.Type {
	return c.orderType
}

func (c CreateTakeoutOrderCommand) LineItems() []order.LineItemRequest {
	out := make([]order.LineItemRequest, len(c.lineItems))
	copy(out, c.lineItems)
	return out
}

func (c *CreateTakeoutOrderCommand) setOrderType(orderType order.Type) error {
	if err := validateOrderType(orderType); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}

func (c *CreateTakeoutOrderCommand) setLineItems(lineItems []order.LineItemRequest) error {
	items, err := copyLineItemRequests(lineItems)
	if err != nil {
		return err
	}

	c.lineItems = items
	return nil
}
