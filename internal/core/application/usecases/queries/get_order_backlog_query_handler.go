package queries

import (
	"context"
	"fmt"

	"kitchenpos/internal/core/domain/model/deliveryorder"
	"kitchenpos/internal/core/domain/model/eatinorder"
	"kitchenpos/internal/core/domain/model/takeoutorder"
)

// GetOrderBacklogQueryHandler feeds the backlog endpoint and the backlog job.
//
// Example:
//
//	backlog, err := handler.Handle(ctx, NewGetOrderBacklogQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders in progress\n", backlog.Total())
type GetOrderBacklogQueryHandler struct {
	readers OrderReadersFactory
}

func NewGetOrderBacklogQueryHandler(readers OrderReadersFactory) GetOrderBacklogQueryHandler {
	return GetOrderBacklogQueryHandler{readers: readers}
}

func (h GetOrderBacklogQueryHandler) Handle(
	ctx context.Context,
	query GetOrderBacklogQuery,
) (GetOrderBacklogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderBacklogQueryResponse{}, err
	}

	readers := h.readers.Create()

	eatIn, err := readers.EatInOrderRepository().CountByStatusNot(ctx, eatinorder.Completed)
	if err != nil {
		return GetOrderBacklogQueryResponse{}, fmt.Errorf("count eat-in orders: %w", err)
	}

	takeout, err := readers.TakeoutOrderRepository().CountByStatusNot(ctx, takeoutorder.Completed)
	if err != nil {
		return GetOrderBacklogQueryResponse{}, fmt.Errorf("count takeout orders: %w", err)
	}

	delivery, err := readers.DeliveryOrderRepository().CountByStatusNot(ctx, deliveryorder.Completed)
	if err != nil {
		return GetOrderBacklogQueryResponse{}, fmt.Errorf("count delivery orders: %w", err)
	}

	return GetOrderBacklogQueryResponse{EatIn: eatIn, Takeout: takeout, Delivery: delivery}, nil
}
