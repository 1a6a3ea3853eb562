package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/deliveryorder"
)

// DeliveryOrderStatusCommandHandler loads a delivery order under lock, applies one
// transition and stores the result. Accepting is handled by
// AcceptDeliveryOrderCommandHandler because it also dispatches a courier.
type DeliveryOrderStatusCommandHandler struct {
	uowFactory DeliveryOrderUoWFactory
	transition func(deliveryorder.DeliveryOrder) (deliveryorder.DeliveryOrder, error)
}

// NewServeDeliveryOrderCommandHandler hands the order to the courier: Accepted -> PickedUp.
func NewServeDeliveryOrderCommandHandler(uowFactory DeliveryOrderUoWFactory) DeliveryOrderStatusCommandHandler {
	return DeliveryOrderStatusCommandHandler{uowFactory: uowFactory, transition: deliveryorder.DeliveryOrder.Serve}
}

func NewStartDeliveryCommandHandler(uowFactory DeliveryOrderUoWFactory) DeliveryOrderStatusCommandHandler {
	return DeliveryOrderStatusCommandHandler{
		uowFactory: uowFactory,
		transition: deliveryorder.DeliveryOrder.StartDelivery,
	}
}

func NewCompleteDeliveryCommandHandler(uowFactory DeliveryOrderUoWFactory) DeliveryOrderStatusCommandHandler {
	return DeliveryOrderStatusCommandHandler{
		uowFactory: uowFactory,
		transition: deliveryorder.DeliveryOrder.CompleteDelivery,
	}
}

func NewCompleteDeliveryOrderCommandHandler(uowFactory DeliveryOrderUoWFactory) DeliveryOrderStatusCommandHandler {
	return DeliveryOrderStatusCommandHandler{uowFactory: uowFactory, transition: deliveryorder.DeliveryOrder.Complete}
}

func (h DeliveryOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (deliveryorder.DeliveryOrder, error) {
	if err := cmd.Validate(); err != nil {
		return deliveryorder.DeliveryOrder{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return deliveryorder.DeliveryOrder{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryOrderRepository()
	current, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return deliveryorder.DeliveryOrder{}, err
	}

	next, err := h.transition(current)
	if err != nil {
		return deliveryorder.DeliveryOrder{}, err
	}

	if err = repo.Update(ctx, next); err != nil {
		return deliveryorder.DeliveryOrder{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return deliveryorder.DeliveryOrder{}, err
	}

	return next, nil
}
