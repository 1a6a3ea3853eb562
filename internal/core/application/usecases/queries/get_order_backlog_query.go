package queries

import (
	"errors"

	"kitchenpos/internal/pkg/guard"
)

var ErrGetOrderBacklogQueryIsNotConstructed = errors.New(
	"GetOrderBacklogQuery must be created via NewGetOrderBacklogQuery constructor",
)

// GetOrderBacklogQuery counts the orders of each channel that are not completed yet.
type GetOrderBacklogQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderBacklogQuery() GetOrderBacklogQuery {
	return GetOrderBacklogQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderBacklogQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderBacklogQueryIsNotConstructed)
}

// GetOrderBacklogQueryResponse holds the number of uncompleted orders per channel.
type GetOrderBacklogQueryResponse struct {
	EatIn    int64
	Takeout  int64
	Delivery int64
}

// Total is the number of uncompleted orders across all channels.
func (r GetOrderBacklogQueryResponse) Total() int64 {
	return r.EatIn + r.Takeout + r.Delivery
}
