package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a fulfillment order.
// It implements a state machine with defined transitions so orders follow
// the warehouse workflow in one direction only.
//
// State transitions:
//
//	New ──> Picking ──> Picked ──> Packing ──> Packed ──> Delivered
//
// The New→Picking and Picked→Packing edges are ratchets: they fire as a side
// effect of the first pick/pack mutation and never revert, even if the
// mutation that triggered them is later undone.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status assigned at order import.
	// Orders in this status are waiting for a picker to start work.
	New

	// Picking indicates at least one pick mutation has been recorded.
	Picking

	// Picked indicates every line item is fully picked and the picking
	// completion checkpoint has been passed.
	Picked

	// Packing indicates a packer has claimed the order or recorded
	// the first pack mutation.
	Packing

	// Packed indicates every line item is fully packed and the packing
	// completion checkpoint has been passed.
	Packed

	// Delivered indicates the external delivery system has confirmed
	// the order reached the customer. Final state.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// The strings are the wire/persistence form shared with the external systems.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		New:       "new",
		Picking:   "picking",
		Picked:    "picked",
		Packing:   "packing",
		Packed:    "packed",
		Delivered: "delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:       "new",
		Picking:   "picking",
		Picked:    "picked",
		Packing:   "packing",
		Packed:    "packed",
		Delivered: "delivered",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persistence form of the status ("new", "picking", ...).
// Implements fmt.Stringer; safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a persisted status string back into a Status.
// Returns an error for anything outside the valid set.
func StatusFromString(raw string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == raw {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", raw),
	)
}

// RatchetPicking advances New to Picking as a side effect of the first pick
// mutation. All other statuses pass through unchanged: the ratchet never
// reverts and never errors.
func (s Status) RatchetPicking() Status {
	if s == New {
		return Picking
	}
	return s
}

// RatchetPacking advances Picked to Packing as a side effect of the first
// pack mutation. All other statuses pass through unchanged.
func (s Status) RatchetPacking() Status {
	if s == Picked {
		return Packing
	}
	return s
}

// CompletePicking transitions the status to Picked.
//
// Valid transitions:
//   - Picking -> Picked (normal flow)
//   - New -> Picked (order whose items were never individually mutated)
//
// Returns:
//   - (Picked, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) CompletePicking() (Status, error) {
	if s != New && s != Picking {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete picking", s.String()),
		)
	}

	return Picked, nil
}

// StartPacking transitions the status to Packing.
//
// Valid transitions:
//   - Picked -> Packing (packer claims the order)
//   - Packing -> Packing (re-claim by another packer is allowed)
//
// Returns:
//   - (Packing, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) StartPacking() (Status, error) {
	if s != Picked && s != Packing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start packing", s.String()),
		)
	}

	return Packing, nil
}

// CompletePacking transitions the status to Packed.
//
// Valid transitions:
//   - Packing -> Packed (normal flow)
//   - Picked -> Packed (packer completed without an explicit claim)
//
// Returns:
//   - (Packed, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) CompletePacking() (Status, error) {
	if s != Picked && s != Packing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete packing", s.String()),
		)
	}

	return Packed, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Packed -> Delivered
//
// Delivered is a final state with no further transitions.
func (s Status) Deliver() (Status, error) {
	if s != Packed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}
