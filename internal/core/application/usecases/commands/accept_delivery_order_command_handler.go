package commands

import (
	"context"
	"fmt"

	"kitchenpos/internal/core/domain/model/deliveryorder"
	"kitchenpos/internal/core/domain/services"
	"kitchenpos/internal/core/ports"
)

// AcceptDeliveryOrderCommandHandler accepts a Waiting order and, for DELIVERY typed
// orders, asks the courier service to pick it up.
//
// The dispatch happens before the commit. If it fails the status change is rolled
// back and the order stays Waiting.
//
// Example:
//
//	handler := NewAcceptDeliveryOrderCommandHandler(uowFactory, dispatcher)
//	accepted, err := handler.Handle(ctx, cmd)
type AcceptDeliveryOrderCommandHandler struct {
	uowFactory DeliveryOrderUoWFactory
	dispatcher ports.DeliveryDispatcher
}

func NewAcceptDeliveryOrderCommandHandler(
	uowFactory DeliveryOrderUoWFactory,
	dispatcher ports.DeliveryDispatcher,
) AcceptDeliveryOrderCommandHandler {
	return AcceptDeliveryOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

func (h AcceptDeliveryOrderCommandHandler) Handle(
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

	accepted, err := current.Accept()
	if err != nil {
		return deliveryorder.DeliveryOrder{}, err
	}

	if err = repo.Update(ctx, accepted); err != nil {
		return deliveryorder.DeliveryOrder{}, err
	}

	if accepted.IsDelivery() {
		total := services.DeliveryTotal(accepted.LineItems())
		if err = h.dispatcher.RequestDelivery(ctx, accepted.ID(), total, accepted.DeliveryAddress()); err != nil {
			return deliveryorder.DeliveryOrder{}, fmt.Errorf("request delivery for order %s: %w", accepted.ID(), err)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return deliveryorder.DeliveryOrder{}, err
	}

	return accepted, nil
}
