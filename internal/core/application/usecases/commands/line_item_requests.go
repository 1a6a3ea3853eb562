package commands

import (
	"errors"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"
)

func validateOrderType(orderType order.Type) error {
	if orderType == order.UnknownType {
		return errs.NewValueIsRequiredError("order type")
	}
	return orderType.Validate()
}

// copyLineItemRequests checks the requests are structurally sound. Menu resolution,
// prices and quantities are checked later against the menu lookup.
func copyLineItemRequests(requests []order.LineItemRequest) ([]order.LineItemRequest, error) {
	if len(requests) == 0 {
		return nil, errs.NewValueIsRequiredError("order line items")
	}
	out := make([]order.LineItemRequest, len(requests))
	for i, req := range requests {
		if err := errors.Join(req.MenuID.Validate(), req.Price.Validate()); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("order line items", fmt.Errorf("item %d: %w", i, err))
		}
		out[i] = req
	}
	return out, nil
}

func menuIDs(requests []order.LineItemRequest) []kernel.UUID {
	ids := make([]kernel.UUID, len(requests))
	for i, req := range requests {
		ids[i] = req.MenuID
	}
	return ids
}
