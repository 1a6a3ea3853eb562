package order

import (
	"fmt"
	"strings"

	"kitchenpos/internal/pkg/errs"
)

// Type is the channel an order was placed through. It is fixed at creation.
type Type int

const (
	// UnknownType is the zero value and marks a missing type.
	UnknownType Type = iota
	EatIn
	Takeout
	Delivery
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType: "UNKNOWN",
		EatIn:       "EAT_IN",
		Takeout:     "TAKEOUT",
		Delivery:    "DELIVERY",
	}
}

// ParseType converts the wire name ("EAT_IN", "TAKEOUT", "DELIVERY") to a Type.
// An empty string yields UnknownType without error so that callers can report
// the missing value through Validate.
func ParseType(s string) (Type, error) {
	if s == "" {
		return UnknownType, nil
	}
	for t, name := range getTypeStrings() {
		if t != UnknownType && strings.EqualFold(name, s) {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("order type", fmt.Errorf("%q is not a known order type", s))
}

// Validate returns a validation error for UnknownType or out-of-range values.
func (t Type) Validate() error {
	if t == UnknownType {
		return errs.NewValueIsRequiredError("order type")
	}
	if _, ok := getTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order type", fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}
