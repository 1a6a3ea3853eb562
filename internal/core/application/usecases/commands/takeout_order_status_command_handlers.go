package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/takeoutorder"
)

// TakeoutOrderStatusCommandHandler loads a takeout order under lock, applies one
// transition and stores the result.
type TakeoutOrderStatusCommandHandler struct {
	uowFactory TakeoutOrderUoWFactory
	transition func(takeoutorder.TakeoutOrder) (takeoutorder.TakeoutOrder, error)
}

func NewAcceptTakeoutOrderCommandHandler(uowFactory TakeoutOrderUoWFactory) TakeoutOrderStatusCommandHandler {
	return TakeoutOrderStatusCommandHandler{uowFactory: uowFactory, transition: takeoutorder.TakeoutOrder.Accept}
}

func NewServeTakeoutOrderCommandHandler(uowFactory TakeoutOrderUoWFactory) TakeoutOrderStatusCommandHandler {
	return TakeoutOrderStatusCommandHandler{uowFactory: uowFactory, transition: takeoutorder.TakeoutOrder.Serve}
}

func NewCompleteTakeoutOrderCommandHandler(uowFactory TakeoutOrderUoWFactory) TakeoutOrderStatusCommandHandler {
	return TakeoutOrderStatusCommandHandler{uowFactory: uowFactory, transition: takeoutorder.TakeoutOrder.Complete}
}

func (h TakeoutOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
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

	repo := uow.TakeoutOrderRepository()
	current, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return takeoutorder.TakeoutOrder{}, err
	}

	next, err := h.transition(current)
	if err != nil {
		return takeoutorder.TakeoutOrder{}, err
	}

	if err = repo.Update(ctx, next); err != nil {
		return takeoutorder.TakeoutOrder{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return takeoutorder.TakeoutOrder{}, err
	}

	return next, nil
}
