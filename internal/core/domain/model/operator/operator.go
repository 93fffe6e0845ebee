// Package operator provides the warehouse staff model: pickers, packers and
// admins, including the running workload counter the dispatcher balances on.
package operator

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrOperatorIsNotConstructed is returned when an Operator instance was not
// created through NewOperator or RestoreOperator.
var ErrOperatorIsNotConstructed = errors.New("Operator must be created via NewOperator constructor")

// Role is the operator's function on the floor.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RolePicker walks the shelves collecting line items into totes.
	RolePicker

	// RolePacker empties totes into shipping boxes at a station.
	RolePacker

	// RoleAdmin supervises, approves exceptions and issues refunds.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "unknown",
		RolePicker:  "picker",
		RolePacker:  "packer",
		RoleAdmin:   "admin",
	}
}

// RoleFromString converts a stored string into a Role.
func RoleFromString(raw string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == raw && role != RoleUnknown {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid",
		fmt.Errorf("%q is not a valid operator role", raw),
	)
}

// String returns the stored form of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the role is one of the defined values.
func (r Role) Validate() error {
	if r != RolePicker && r != RolePacker && r != RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%d is not a valid operator role", r),
		)
	}
	return nil
}

// Operator is one member of the warehouse staff. Pickers carry a running
// line-item workload counter that the dispatcher uses to find the least
// busy candidate; the counter grows on assignment and is reset by admins
// at shift boundaries.
type Operator struct {
	// id is the unique identifier for the operator
	id kernel.UUID

	// name is the display name shown on boards and activity logs
	name string

	role Role

	// active gates dispatch; inactive operators keep their history
	active bool

	// lineItemsAssigned is the running workload counter for pickers
	lineItemsAssigned int

	guard guard.ConstructorGuard
}

// NewOperator creates an active operator with a zero workload counter.
func NewOperator(id kernel.UUID, name string, role Role) (*Operator, error) {
	op := &Operator{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		op.setID(id),
		op.setName(name),
		op.setRole(role),
	); err != nil {
		return nil, err
	}

	return op, nil
}

// RestoreOperator reconstructs an operator from persistence.
func RestoreOperator(id kernel.UUID, name string, role Role, active bool, lineItemsAssigned int) (*Operator, error) {
	op, err := NewOperator(id, name, role)
	if err != nil {
		return nil, err
	}

	op.active = active
	op.lineItemsAssigned = lineItemsAssigned
	return op, nil
}

// Validate ensures the Operator instance was created through a constructor.
func (op *Operator) Validate() error {
	if op == nil {
		return ErrOperatorIsNotConstructed
	}
	return op.guard.Validate(ErrOperatorIsNotConstructed)
}

// ID returns the operator's unique identifier.
func (op *Operator) ID() kernel.UUID { return op.id }

// Name returns the display name.
func (op *Operator) Name() string { return op.name }

// Role returns the operator's role.
func (op *Operator) Role() Role { return op.role }

// Active reports whether the operator can receive new work.
func (op *Operator) Active() bool { return op.active }

// LineItemsAssigned returns the running workload counter.
func (op *Operator) LineItemsAssigned() int { return op.lineItemsAssigned }

// AddLoad increases the workload counter by the total quantity of a newly
// assigned order.
func (op *Operator) AddLoad(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxLoad)
	}

	op.lineItemsAssigned += quantity
	return nil
}

// ResetLoad zeroes the workload counter at a shift boundary.
func (op *Operator) ResetLoad() {
	op.lineItemsAssigned = 0
}

// Activate makes the operator eligible for dispatch again.
func (op *Operator) Activate() {
	op.active = true
}

// Deactivate removes the operator from dispatch without deleting history.
func (op *Operator) Deactivate() {
	op.active = false
}

// Rename updates the display name.
func (op *Operator) Rename(name string) error {
	return op.setName(name)
}

func (op *Operator) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	op.id = id
	return nil
}

func (op *Operator) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	op.name = name
	return nil
}

func (op *Operator) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	op.role = role
	return nil
}

// maxLoad bounds a single assignment's quantity contribution.
const maxLoad = 100_000
