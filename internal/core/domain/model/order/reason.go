package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// ExceptionReason is the closed set of reasons a picker or packer may give
// when a line item cannot be verified in full. Each reason maps to exactly
// one quantity bucket on the item state.
//
// Reasons arrive from clients as display strings ("Damaged", "Out Of Stock");
// unrecognized strings are rejected at the boundary instead of silently
// falling through.
type ExceptionReason int

const (
	// ReasonUnknown represents an invalid or undefined reason.
	ReasonUnknown ExceptionReason = iota

	// ReasonDamaged marks units found physically damaged on the shelf.
	ReasonDamaged

	// ReasonOutOfStock marks units missing from the shelf.
	ReasonOutOfStock
)

// getReasonStrings returns the wire strings for each reason.
func getReasonStrings() map[ExceptionReason]string {
	return map[ExceptionReason]string{
		ReasonUnknown:    "Unknown",
		ReasonDamaged:    "Damaged",
		ReasonOutOfStock: "Out Of Stock",
	}
}

// ParseExceptionReason converts a wire string into an ExceptionReason.
// Returns an error for any string outside the closed set.
func ParseExceptionReason(raw string) (ExceptionReason, error) {
	switch raw {
	case "Damaged":
		return ReasonDamaged, nil
	case "Out Of Stock":
		return ReasonOutOfStock, nil
	default:
		return ReasonUnknown, errs.NewValueIsInvalidErrorWithCause(
			"reason is invalid",
			fmt.Errorf("%q is not a recognized exception reason", raw),
		)
	}
}

// Validate checks if the reason is one of the recognized values.
func (r ExceptionReason) Validate() error {
	if r != ReasonDamaged && r != ReasonOutOfStock {
		return errs.NewValueIsInvalidErrorWithCause(
			"reason is invalid",
			fmt.Errorf("%d is not a valid exception reason", r),
		)
	}
	return nil
}

// String returns the wire form of the reason.
// Implements fmt.Stringer; safe on any value, including invalid ones.
func (r ExceptionReason) String() string {
	if str, ok := getReasonStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
