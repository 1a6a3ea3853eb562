package queries

import (
	"context"
	"slices"

	"kitchenpos/internal/core/domain/model/deliveryorder"
	"kitchenpos/internal/core/domain/model/eatinorder"
	"kitchenpos/internal/core/domain/model/takeoutorder"
)

// Results are sorted oldest first.

type GetAllEatInOrdersQueryHandler struct {
	readers OrderReadersFactory
}

func NewGetAllEatInOrdersQueryHandler(readers OrderReadersFactory) GetAllEatInOrdersQueryHandler {
	return GetAllEatInOrdersQueryHandler{readers: readers}
}

func (h GetAllEatInOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]eatinorder.EatInOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.readers.Create().EatInOrderRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(orders, func(a, b eatinorder.EatInOrder) int {
		return a.OrderDateTime().Compare(b.OrderDateTime())
	})
	return orders, nil
}

type GetAllTakeoutOrdersQueryHandler struct {
	readers OrderReadersFactory
}

func NewGetAllTakeoutOrdersQueryHandler(readers OrderReadersFactory) GetAllTakeoutOrdersQueryHandler {
	return GetAllTakeoutOrdersQueryHandler{readers: readers}
}

func (h GetAllTakeoutOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]takeoutorder.TakeoutOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.readers.Create().TakeoutOrderRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(orders, func(a, b takeoutorder.TakeoutOrder) int {
		return a.OrderDateTime().Compare(b.OrderDateTime())
	})
	return orders, nil
}

type GetAllDeliveryOrdersQueryHandler struct {
	readers OrderReadersFactory
}

func NewGetAllDeliveryOrdersQueryHandler(readers OrderReadersFactory) GetAllDeliveryOrdersQueryHandler {
	return GetAllDeliveryOrdersQueryHandler{readers: readers}
}

func (h GetAllDeliveryOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]deliveryorder.DeliveryOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.readers.Create().DeliveryOrderRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(orders, func(a, b deliveryorder.DeliveryOrder) int {
		return a.OrderDateTime().Compare(b.OrderDateTime())
	})
	return orders, nil
}
