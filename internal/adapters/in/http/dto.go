package http

import (
	"errors"
	"time"

	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/deliveryorder"
	"kitchenpos/internal/core/domain/model/eatinorder"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/takeoutorder"
	"kitchenpos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderLineItemRequest accepts the price as a JSON number or string.
type OrderLineItemRequest struct {
	MenuID   string           `json:"menuId"`
	Price    *decimal.Decimal `json:"price"`
	Quantity int64            `json:"quantity"`
}

type CreateEatInOrderRequest struct {
	Type           string                 `json:"type"`
	OrderTableID   string                 `json:"orderTableId"`
	OrderLineItems []OrderLineItemRequest `json:"orderLineItems"`
}

type CreateTakeoutOrderRequest struct {
	Type           string                 `json:"type"`
	OrderLineItems []OrderLineItemRequest `json:"orderLineItems"`
}

type CreateDeliveryOrderRequest struct {
	Type            string                 `json:"type"`
	DeliveryAddress string                 `json:"deliveryAddress"`
	OrderLineItems  []OrderLineItemRequest `json:"orderLineItems"`
}

type OrderLineItemResponse struct {
	MenuID   string          `json:"menuId"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
}

type EatInOrderResponse struct {
	ID             string                  `json:"id"`
	Type           string                  `json:"type"`
	Status         string                  `json:"status"`
	OrderDateTime  time.Time               `json:"orderDateTime"`
	OrderTableID   string                  `json:"orderTableId"`
	OrderLineItems []OrderLineItemResponse `json:"orderLineItems"`
}

type TakeoutOrderResponse struct {
	ID             string                  `json:"id"`
	Type           string                  `json:"type"`
	Status         string                  `json:"status"`
	OrderDateTime  time.Time               `json:"orderDateTime"`
	OrderLineItems []OrderLineItemResponse `json:"orderLineItems"`
}

type DeliveryOrderResponse struct {
	ID              string                  `json:"id"`
	Type            string                  `json:"type"`
	Status          string                  `json:"status"`
	OrderDateTime   time.Time               `json:"orderDateTime"`
	DeliveryAddress string                  `json:"deliveryAddress,omitempty"`
	OrderLineItems  []OrderLineItemResponse `json:"orderLineItems"`
}

type OrderBacklogResponse struct {
	EatIn    int64 `json:"eatIn"`
	Takeout  int64 `json:"takeout"`
	Delivery int64 `json:"delivery"`
	Total    int64 `json:"total"`
}

func parseLineItems(items []OrderLineItemRequest) ([]order.LineItemRequest, error) {
	requests := make([]order.LineItemRequest, 0, len(items))
	var problems []error
	for _, item := range items {
		menuID, err := kernel.UUIDFromString(item.MenuID)
		if err != nil {
			problems = append(problems, err)
			continue
		}
		if item.Price == nil {
			problems = append(problems, errs.NewValueIsRequiredError("line item price"))
			continue
		}
		price, err := kernel.NewPrice(*item.Price)
		if err != nil {
			problems = append(problems, err)
			continue
		}
		requests = append(requests, order.LineItemRequest{
			MenuID:   menuID,
			Price:    price,
			Quantity: item.Quantity,
		})
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}
	return requests, nil
}

func parseTableID(s string) (kernel.UUID, error) {
	if s == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError("order table id")
	}
	return kernel.UUIDFromString(s)
}

func newLineItemResponses(items []order.LineItem) []OrderLineItemResponse {
	out := make([]OrderLineItemResponse, len(items))
	for i, item := range items {
		out[i] = OrderLineItemResponse{
			MenuID:   item.MenuID().String(),
			Price:    item.Price().Amount(),
			Quantity: item.Quantity(),
		}
	}
	return out
}

func newEatInOrderResponse(o eatinorder.EatInOrder) EatInOrderResponse {
	return EatInOrderResponse{
		ID:             o.ID().String(),
		Type:           o.Type().String(),
		Status:         o.Status().String(),
		OrderDateTime:  o.OrderDateTime(),
		OrderTableID:   o.TableID().String(),
		OrderLineItems: newLineItemResponses(o.LineItems()),
	}
}

func newTakeoutOrderResponse(o takeoutorder.TakeoutOrder) TakeoutOrderResponse {
	return TakeoutOrderResponse{
		ID:             o.ID().String(),
		Type:           o.Type().String(),
		Status:         o.Status().String(),
		OrderDateTime:  o.OrderDateTime(),
		OrderLineItems: newLineItemResponses(o.LineItems()),
	}
}

func newDeliveryOrderResponse(o deliveryorder.DeliveryOrder) DeliveryOrderResponse {
	return DeliveryOrderResponse{
		ID:              o.ID().String(),
		Type:            o.Type().String(),
		Status:          o.Status().String(),
		OrderDateTime:   o.OrderDateTime(),
		DeliveryAddress: o.DeliveryAddress(),
		OrderLineItems:  newLineItemResponses(o.LineItems()),
	}
}

func newOrderBacklogResponse(r queries.GetOrderBacklogQueryResponse) OrderBacklogResponse {
	return OrderBacklogResponse{
		EatIn:    r.EatIn,
		Takeout:  r.Takeout,
		Delivery: r.Delivery,
		Total:    r.Total(),
	}
}

func mapSlice[T, R any](in []T, f func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}
