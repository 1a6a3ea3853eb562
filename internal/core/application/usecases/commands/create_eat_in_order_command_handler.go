package commands

import (
	"context"
	"errors"
	"time"

	"kitchenpos/internal/core/domain/model/eatinorder"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/services"
	"kitchenpos/internal/pkg/errs"
)

// ErrTableIsNotOccupied is the cause attached when an order targets an empty table.
var ErrTableIsNotOccupied = errors.New("can not order against an unoccupied table")

// CreateEatInOrderCommandHandler validates the line items against the menu lookup,
// checks the table is occupied and stores the order as Waiting.
type CreateEatInOrderCommandHandler struct {
	uowFactory EatInOrderUoWFactory
	validator  services.LineItemsValidator
	now        func() time.Time
}

func NewCreateEatInOrderCommandHandler(uowFactory EatInOrderUoWFactory) CreateEatInOrderCommandHandler {
	return CreateEatInOrderCommandHandler{
		uowFactory: uowFactory,
		validator:  services.NewLineItemsValidator(),
		now:        time.Now,
	}
}

// Handle returns the stored order. Nothing is written unless every check passes.
// Negative quantities are accepted only for EAT_IN typed orders.
func (h CreateEatInOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateEatInOrderCommand,
) (eatinorder.EatInOrder, error) {
	if err := cmd.Validate(); err != nil {
		return eatinorder.EatInOrder{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return eatinorder.EatInOrder{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menus, err := uow.MenuRepository().GetAllByIDs(ctx, menuIDs(cmd.LineItems()))
	if err != nil {
		return eatinorder.EatInOrder{}, err
	}

	policy := services.NonNegativeQuantity
	if cmd.OrderType() == order.EatIn {
		policy = services.AnyQuantity
	}
	items, err := h.validator.Validate(cmd.LineItems(), menus, policy)
	if err != nil {
		return eatinorder.EatInOrder{}, err
	}

	restaurantTable, err := uow.TableRepository().Get(ctx, cmd.TableID())
	if err != nil {
		return eatinorder.EatInOrder{}, err
	}
	if !restaurantTable.IsOccupied() {
		return eatinorder.EatInOrder{}, errs.NewStateIsInvalidErrorWithCause("restaurant table", ErrTableIsNotOccupied)
	}

	created, err := eatinorder.NewEatInOrder(cmd.OrderID(), cmd.OrderType(), cmd.TableID(), items, h.now())
	if err != nil {
		return eatinorder.EatInOrder{}, err
	}

	if err = uow.EatInOrderRepository().Add(ctx, created); err != nil {
		return eatinorder.EatInOrder{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return eatinorder.EatInOrder{}, err
	}

	return created, nil
}
