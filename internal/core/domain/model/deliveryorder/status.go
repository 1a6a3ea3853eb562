package deliveryorder

import (
	"fmt"

	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery order.
//
// State transitions:
//
//	Waiting ──accept──> Accepted ──serve──> PickedUp ──start delivery──> Delivering
//	    ──complete delivery──> Delivered ──complete──> Completed
type Status int

const (
	Unknown Status = iota
	Waiting
	Accepted
	// PickedUp means a courier collected the order from the kitchen.
	PickedUp
	Delivering
	Delivered
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Waiting:    "WAITING",
		Accepted:   "ACCEPTED",
		PickedUp:   "PICKED_UP",
		Delivering: "DELIVERING",
		Delivered:  "DELIVERED",
		Completed:  "COMPLETED",
	}
}

func getTransitions() map[Status]map[order.Operation]Status {
	//nolint:exhaustive // Unknown and Completed have no outgoing transitions
	return map[Status]map[order.Operation]Status{
		Waiting:    {order.Accept: Accepted},
		Accepted:   {order.Serve: PickedUp},
		PickedUp:   {order.StartDelivery: Delivering},
		Delivering: {order.CompleteDelivery: Delivered},
		Delivered:  {order.Complete: Completed},
	}
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Apply returns the status reached by op, or a state conflict when the
// transition table has no entry for (s, op).
func (s Status) Apply(op order.Operation) (Status, error) {
	next, ok := getTransitions()[s][op]
	if !ok {
		return Unknown, s.conflict(op)
	}
	return next, nil
}

func (s Status) conflict(op order.Operation) error {
	return errs.NewStateIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%s is not a valid status to %s", s.String(), op),
	)
}
