package order

import (
	"errors"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one menu selection inside an order. The price is the menu price at the
// time the order was created and is never recomputed. The quantity is signed; which
// values are acceptable depends on the channel and is checked before a LineItem is built.
type LineItem struct {
	menuID   kernel.UUID
	price    kernel.Price
	quantity int64

	guard guard.ConstructorGuard
}

// NewLineItem builds a line item for a resolved menu.
func NewLineItem(menuID kernel.UUID, price kernel.Price, quantity int64) (LineItem, error) {
	if err := errors.Join(menuID.Validate(), price.Validate()); err != nil {
		return LineItem{}, err
	}
	return LineItem{
		menuID:   menuID,
		price:    price,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (l LineItem) MenuID() kernel.UUID {
	return l.menuID
}

func (l LineItem) Price() kernel.Price {
	return l.price
}

func (l LineItem) Quantity() int64 {
	return l.quantity
}

func (l LineItem) Validate() error {
	return l.guard.Validate(ErrLineItemIsNotConstructed)
}

// LineItemRequest is the unvalidated line item a client asks for.
type LineItemRequest struct {
	MenuID   kernel.UUID
	Price    kernel.Price
	Quantity int64
}

// ValidateLineItems checks that items is non-empty and every element was constructed.
// It returns a copy so the caller's slice can not alias the aggregate's.
func ValidateLineItems(items []LineItem) ([]LineItem, error) {
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("order line items")
	}
	out := make([]LineItem, len(items))
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("order line items", fmt.Errorf("item %d: %w", i, err))
		}
		out[i] = item
	}
	return out, nil
}
