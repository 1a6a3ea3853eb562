package commands

import (
	"context"
	"time"

	"kitchenpos/internal/core/domain/model/deliveryorder"
	"kitchenpos/internal/core/domain/services"
)

type CreateDeliveryOrderCommandHandler struct {
	uowFactory DeliveryOrderUoWFactory
	validator  services.LineItemsValidator
	now        func() time.Time
}

func NewCreateDeliveryOrderCommandHandler(uowFactory DeliveryOrderUoWFactory) CreateDeliveryOrderCommandHandler {
	return CreateDeliveryOrderCommandHandler{
		uowFactory: uowFactory,
		validator:  services.NewLineItemsValidator(),
		now:        time.Now,
	}
}

// Handle stores a Waiting delivery order. Quantities must not be negative.
func (h CreateDeliveryOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateDeliveryOrderCommand,
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

	menus, err := uow.MenuRepository().GetAllByIDs(ctx, menuIDs(cmd.LineItems()))
	if err != nil {
		return deliveryorder.DeliveryOrder{}, err
	}

	items, err := h.validator.Validate(cmd.LineItems(), menus, services.NonNegativeQuantity)
	if err != nil {
		return deliveryorder.DeliveryOrder{}, err
	}

	created, err := deliveryorder.NewDeliveryOrder(
		cmd.OrderID(), cmd.OrderType(), cmd.DeliveryAddress(), items, h.now(),
	)
	if err != nil {
		return deliveryorder.DeliveryOrder{}, err
	}

	if err = uow.DeliveryOrderRepository().Add(ctx, created); err != nil {
		return deliveryorder.DeliveryOrder{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return deliveryorder.DeliveryOrder{}, err
	}

	return created, nil
}
