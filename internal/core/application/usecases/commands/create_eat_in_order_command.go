package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/guard"
)

var ErrCreateEatInOrderCommandIsNotConstructed = errors.New(
	"CreateEatInOrderCommand must be created via NewCreateEatInOrderCommand constructor",
)

// CreateEatInOrderCommand asks for a new order served at an occupied table.
//
// Example:
//
//	cmd, err := NewCreateEatInOrderCommand(order.EatIn, tableID, []order.LineItemRequest{
//	    {MenuID: menuID, Price: kernel.MustNewPriceFromInt(19000), Quantity: 3},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateEatInOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	orderType order.Type
	tableID   kernel.UUID
	lineItems []order.LineItemRequest

	guard guard.ConstructorGuard
}

// NewCreateEatInOrderCommand generates the new order's id.
func NewCreateEatInOrderCommand(
	orderType order.Type,
	tableID kernel.UUID,
	lineItems []order.LineItemRequest,
) (CreateEatInOrderCommand, error) {
	command := CreateEatInOrderCommand{
		orderID: kernel.NewUUID(),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderType(orderType),
		command.setLineItems(lineItems),
		command.setTableID(tableID),
	); err != nil {
		return CreateEatInOrderCommand{}, err
	}

	return command, nil
}

func (c CreateEatInOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateEatInOrderCommandIsNotConstructed)
}

func (c CreateEatInOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateEatInOrderCommand) OrderType() order.Type {
	return c.orderType
}

func (c CreateEatInOrderCommand) TableID() kernel.UUID {
	return c.tableID
}

func (c CreateEatInOrderCommand) LineItems() []order.LineItemRequest {
	out := make([]order.LineItemRequest, len(c.lineItems))
	copy(out, c.lineItems)
	return out
}

func (c *CreateEatInOrderCommand) setOrderType(orderType order.Type) error {
	if err := validateOrderType(orderType); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}

func (c *CreateEatInOrderCommand) setTableID(tableID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}

	c.tableID = tableID
	return nil
}

func (c *CreateEatInOrderCommand) setLineItems(lineItems []order.LineItemRequest) error {
	items, err := copyLineItemRequests(lineItems)
	if err != nil {
		return err
	}

	c.lineItems = items
	return nil
}
