package commands

import (
	"context"
	"time"

	"kitchenpos/internal/core/domain/model/takeoutorder"
	"kitchenpos/internal/core/domain/services"
)

type CreateTakeoutOrderCommandHandler struct {
	uowFactory TakeoutOrderUoWFactory
	validator  services.LineItemsValidator
	now        func() time.Time
}

func NewCreateTakeoutOrderCommandHandler(uowFactory TakeoutOrderUoWFactory) CreateTakeoutOrderCommandHandler {
	return CreateTakeoutOrderCommandHandler{
		uowFactory: uowFactory,
		validator:  services.NewLineItemsValidator(),
		now:        time.Now,
	}
}

// Handle stores a Waiting takeout order. Quantities must not be negative.
func (h CreateTakeoutOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateTakeoutOrderCommand,
) (takeoutorder.TakeoutOrder, error) {
	if err := cmd.Validate(); err != nil {
		return takeoutorder.TakeoutOrder{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return takeoutorder.TakeoutOrder{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menus, err := uow.MenuRepository().GetAllByIDs(ctx, menuIDs(cmd.LineItems()))
	if err != nil {
		return takeoutorder.TakeoutOrder{}, err
	}

	items, err := h.validator.Validate(cmd.LineItems(), menus, services.NonNegativeQuantity)
	if err != nil {
		return takeoutorder.TakeoutOrder{}, err
	}

	created, err := takeoutorder.NewTakeoutOrder(cmd.OrderID(), cmd.OrderType(), items, h.now())
	if err != nil {
		return takeoutorder.TakeoutOrder{}, err
	}

	if err = uow.TakeoutOrderRepository().Add(ctx, created); err != nil {
		return takeoutorder.TakeoutOrder{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return takeoutorder.TakeoutOrder{}, err
	}

	return created, nil
}
