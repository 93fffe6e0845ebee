package tote

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrToteIsNotConstructed is returned when a Tote instance was not created
// through NewTote or RestoreTote.
var ErrToteIsNotConstructed = errors.New("Tote must be created via NewTote constructor")

// Status is the tote lifecycle state.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusAvailable means the tote sits empty on the rack and may be
	// assigned to an order.
	StatusAvailable

	// StatusAssigned means the tote holds picked goods for one order.
	StatusAssigned

	// StatusInPacking means the tote is at a packing station being emptied.
	StatusInPacking
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusAvailable: "available",
		StatusAssigned:  "assigned",
		StatusInPacking: "in_packing",
	}
}

// StatusFromString converts a stored string into a Status.
func StatusFromString(raw string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == raw && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid tote status", raw),
	)
}

// String returns the stored form of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if s != StatusAvailable && s != StatusAssigned && s != StatusInPacking {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid tote status", s),
		)
	}
	return nil
}

// Tote is a physical picking container identified by the barcode label on
// its side. A tote belongs to at most one order at a time; assignment must
// stay consistent with the order's own tote list, which the command layer
// guarantees by updating both inside one transaction.
type Tote struct {
	// id is the unique identifier for the tote
	id kernel.UUID

	// barcode is the label scanned by pickers, unique across totes
	barcode string

	status Status

	// orderID is the order currently holding the tote (nil when available)
	orderID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewTote creates an available tote with the given barcode.
func NewTote(id kernel.UUID, barcode string) (*Tote, error) {
	t := &Tote{
		status: StatusAvailable,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setBarcode(barcode),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTote reconstructs a tote from persistence.
func RestoreTote(id kernel.UUID, barcode string, status Status, orderID *kernel.UUID) (*Tote, error) {
	t, err := NewTote(id, barcode)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	t.status = status
	t.orderID = orderID
	return t, nil
}

// Validate ensures the Tote instance was created through a constructor.
func (t *Tote) Validate() error {
	if t == nil {
		return ErrToteIsNotConstructed
	}
	return t.guard.Validate(ErrToteIsNotConstructed)
}

// ID returns the tote's unique identifier.
func (t *Tote) ID() kernel.UUID { return t.id }

// Barcode returns the scanned label.
func (t *Tote) Barcode() string { return t.barcode }

// Status returns the current lifecycle state.
func (t *Tote) Status() Status { return t.status }

// OrderID returns the holding order's ID, nil when the tote is available.
func (t *Tote) OrderID() *kernel.UUID { return t.orderID }

// Assign attaches the tote to an order. Only an available tote can be
// assigned; a tote already on another order yields a precondition error so
// the scan surfaces the conflict instead of silently stealing the tote.
func (t *Tote) Assign(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	if t.status != StatusAvailable {
		return errs.NewPreconditionFailedErrorWithCause(
			"tote",
			[]string{t.barcode},
			fmt.Errorf("tote is %s", t.status),
		)
	}

	t.status = StatusAssigned
	t.orderID = &orderID
	return nil
}

// MarkInPacking moves an assigned tote to the packing station state.
func (t *Tote) MarkInPacking() error {
	if t.status != StatusAssigned {
		return errs.NewPreconditionFailedErrorWithCause(
			"tote",
			[]string{t.barcode},
			fmt.Errorf("tote is %s", t.status),
		)
	}

	t.status = StatusInPacking
	return nil
}

// Release returns the tote to the rack: available, no order. Releasing an
// already-available tote is a no-op so pack completion stays idempotent.
func (t *Tote) Release() {
	t.status = StatusAvailable
	t.orderID = nil
}

func (t *Tote) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Tote) setBarcode(barcode string) error {
	if barcode == "" {
		return errs.NewValueIsRequiredError("barcode")
	}
	t.barcode = barcode
	return nil
}
