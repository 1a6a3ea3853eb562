package services

import (
	"kitchenpos/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// DeliveryTotal returns the amount reported to the courier service on accept.
// It is the last line item's price times its quantity; earlier items do not
// contribute.
func DeliveryTotal(items []order.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = item.Price().MultiplyQuantity(item.Quantity())
	}
	return total
}
