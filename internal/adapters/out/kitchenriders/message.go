package kitchenriders

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeliveryRequestedMessage is the body published for every dispatched order.
// Amount is encoded as a JSON string to keep it exact.
type DeliveryRequestedMessage struct {
	OrderID     string          `json:"order_id"`
	Amount      decimal.Decimal `json:"amount"`
	Address     string          `json:"delivery_address"`
	RequestedAt time.Time       `json:"requested_at"`
}
