package services

import (
	"fmt"
	"math"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"
)

// QuantityPolicy decides which line item quantities a channel accepts.
type QuantityPolicy int

const (
	// NonNegativeQuantity rejects quantities below zero.
	NonNegativeQuantity QuantityPolicy = iota
	// AnyQuantity accepts negative quantities as well. Only eat-in orders use it.
	AnyQuantity
)

// LineItemsValidator turns line item requests into line items, checking each one
// against the menu it references.
//
// Rules, in order:
//   - at least one line item is requested
//   - every requested menu was resolved; menus holds one entry per distinct resolved id,
//     so requesting the same menu twice fails the count check
//   - each menu is displayed (state conflict otherwise)
//   - each requested price equals the menu price exactly
//   - each quantity satisfies the channel's QuantityPolicy
//
// Example:
//
//	items, err := services.NewLineItemsValidator().Validate(requests, menus, services.NonNegativeQuantity)
type LineItemsValidator struct{}

func NewLineItemsValidator() LineItemsValidator {
	return LineItemsValidator{}
}

func (v LineItemsValidator) Validate(
	requests []order.LineItemRequest,
	menus []*menu.Menu,
	policy QuantityPolicy,
) ([]order.LineItem, error) {
	if len(requests) == 0 {
		return nil, errs.NewValueIsRequiredError("order line items")
	}
	if len(menus) != len(requests) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"order line items",
			fmt.Errorf("%d of %d requested menus were found", len(menus), len(requests)),
		)
	}

	byID := make(map[kernel.UUID]*menu.Menu, len(menus))
	for _, m := range menus {
		if err := m.Validate(); err != nil {
			return nil, err
		}
		byID[m.ID()] = m
	}

	items := make([]order.LineItem, 0, len(requests))
	for _, req := range requests {
		m, ok := byID[req.MenuID]
		if !ok {
			return nil, errs.NewObjectNotFoundError("menu", req.MenuID.String())
		}
		if !m.IsDisplayed() {
			return nil, errs.NewStateIsInvalidErrorWithCause(
				"menu",
				fmt.Errorf("menu %s is not displayed", m.ID()),
			)
		}
		if !m.Price().IsEqual(req.Price) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"line item price",
				fmt.Errorf("requested %s but menu %s costs %s", req.Price, m.ID(), m.Price()),
			)
		}
		if policy == NonNegativeQuantity && req.Quantity < 0 {
			return nil, errs.NewValueIsOutOfRangeError("line item quantity", req.Quantity, 0, int64(math.MaxInt64))
		}

		item, err := order.NewLineItem(m.ID(), req.Price, req.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
