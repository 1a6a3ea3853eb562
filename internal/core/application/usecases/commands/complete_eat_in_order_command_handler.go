package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/eatinorder"
)

// CompleteEatInOrderCommandHandler completes a Served order and releases its table
// once no order on that table is left uncompleted.
//
// The order row is locked by Get and the table row by the table lookup, so two
// orders completing on the same table at once are decided one after the other and
// only the later one sees an empty sibling set.
type CompleteEatInOrderCommandHandler struct {
	uowFactory EatInOrderUoWFactory
}

func NewCompleteEatInOrderCommandHandler(uowFactory EatInOrderUoWFactory) CompleteEatInOrderCommandHandler {
	return CompleteEatInOrderCommandHandler{uowFactory: uowFactory}
}

func (h CompleteEatInOrderCommandHandler) Handle(
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

	orderRepo := uow.EatInOrderRepository()
	tableRepo := uow.TableRepository()

	current, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return eatinorder.EatInOrder{}, err
	}

	completed, err := current.Complete()
	if err != nil {
		return eatinorder.EatInOrder{}, err
	}

	restaurantTable, err := tableRepo.Get(ctx, completed.TableID())
	if err != nil {
		return eatinorder.EatInOrder{}, err
	}

	if err = orderRepo.Update(ctx, completed); err != nil {
		return eatinorder.EatInOrder{}, err
	}

	pending, err := orderRepo.ExistsByTableAndStatusNot(ctx, completed.TableID(), eatinorder.Completed)
	if err != nil {
		return eatinorder.EatInOrder{}, err
	}
	if !pending {
		restaurantTable.Clear()
		if err = tableRepo.Update(ctx, restaurantTable); err != nil {
			return eatinorder.EatInOrder{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return eatinorder.EatInOrder{}, err
	}

	return completed, nil
}
