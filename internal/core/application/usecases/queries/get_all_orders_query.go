package queries

import (
	"errors"

	"kitchenpos/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery lists every order of one channel. The handler it is passed to
// decides the channel.
//
// Example:
//
//	query := NewGetAllOrdersQuery()
//	orders, err := NewGetAllEatInOrdersQueryHandler(readers).Handle(ctx, query)
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}
