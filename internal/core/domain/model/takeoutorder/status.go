package takeoutorder

import (
	"fmt"

	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"
)

// Status represents the lifecycle state of a takeout order.
//
//	Waiting ──accept──> Accepted ──serve──> Served ──complete──> Completed
type Status int

const (
	Unknown Status = iota
	Waiting
	Accepted
	// Served means the order was handed over the counter.
	Served
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Waiting:   "WAITING",
		Accepted:  "ACCEPTED",
		Served:    "SERVED",
		Completed: "COMPLETED",
	}
}

func getTransitions() map[Status]map[order.Operation]Status {
	//nolint:exhaustive // Unknown and Completed have no outgoing transitions
	return map[Status]map[order.Operation]Status{
		Waiting:  {order.Accept: Accepted},
		Accepted: {order.Serve: Served},
		Served:   {order.Complete: Completed},
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

// Apply returns the status reached by op, or a state conflict.
func (s Status) Apply(op order.Operation) (Status, error) {
	next, ok := getTransitions()[s][op]
	if !ok {
		return Unknown, errs.NewStateIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to %s", s.String(), op),
		)
	}
	return next, nil
}
