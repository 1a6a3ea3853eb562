package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/eatinorder"
)

// EatInOrderStatusCommandHandler loads an eat-in order under lock, applies one
// transition and stores the result.
type EatInOrderStatusCommandHandler struct {
	uowFactory EatInOrderUoWFactory
	transition func(eatinorder.EatInOrder) (eatinorder.EatInOrder, error)
}

// NewAcceptEatInOrderCommandHandler moves Waiting orders to Accepted.
func NewAcceptEatInOrderCommandHandler(uowFactory EatInOrderUoWFactory) EatInOrderStatusCommandHandler {
	return EatInOrderStatusCommandHandler{uowFactory: uowFactory, transition: eatinorder.EatInOrder.Accept}
}

// NewServeEatInOrderCommandHandler moves Accepted orders to Served.
func NewServeEatInOrderCommandHandler(uowFactory EatInOrderUoWFactory) EatInOrderStatusCommandHandler {
	return EatInOrderStatusCommandHandler{uowFactory: uowFactory, transition: eatinorder.EatInOrder.Serve}
}

func (h EatInOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
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

	repo := uow.EatInOrderRepository()
	current, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return eatinorder.EatInOrder{}, err
	}

	next, err := h.transition(current)
	if err != nil {
		return eatinorder.EatInOrder{}, err
	}

	if err = repo.Update(ctx, next); err != nil {
		return eatinorder.EatInOrder{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return eatinorder.EatInOrder{}, err
	}

	return next, nil
}
