package eatinorder

import (
	"fmt"

	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"
)

// Status represents the lifecycle state of an eat-in order.
//
// State transitions:
//
//	Waiting ──accept──> Accepted ──serve──> Served ──complete──> Completed
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Waiting is the initial status of a newly created order.
	Waiting

	// Accepted indicates the kitchen took the order.
	Accepted

	// Served indicates the food reached the table.
	Served

	// Completed is final; no further transitions are allowed.
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

// Validate checks if the Status value is one of the known lifecycle states.
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

// Apply looks up the next status for op. Anything outside the transition table
// is a state conflict.
//
// Example:
//
//	next, err := eatinorder.Waiting.Apply(order.Accept) // Accepted, nil
//	_, err = eatinorder.Waiting.Apply(order.Serve)      // state conflict
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
