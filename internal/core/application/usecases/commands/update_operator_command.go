package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateOperatorCommandIsNotConstructed = errors.New(
	"UpdateOperatorCommand must be created via NewUpdateOperatorCommand constructor",
)

// UpdateOperatorCommand represents an admin editing a staff member: renaming,
// toggling the active flag, or resetting the workload counter at a shift
// boundary. Nil pointers leave the corresponding field untouched.
type UpdateOperatorCommand struct { //nolint:recvcheck //using for validation
	operatorID kernel.UUID
	name       *string
	active     *bool
	resetLoad  bool

	guard guard.ConstructorGuard
}

// NewUpdateOperatorCommand creates a command to edit an operator.
func NewUpdateOperatorCommand(
	operatorID kernel.UUID,
	name *string,
	active *bool,
	resetLoad bool,
) (UpdateOperatorCommand, error) {
	cmd := UpdateOperatorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOperatorID(operatorID); err != nil {
		return UpdateOperatorCommand{}, err
	}

	cmd.name = name
	cmd.active = active
	cmd.resetLoad = resetLoad
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOperatorCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOperatorCommandIsNotConstructed)
}

// OperatorID returns the target operator's identifier.
func (c UpdateOperatorCommand) OperatorID() kernel.UUID { return c.operatorID }

// Name returns the replacement name, nil to keep the current one.
func (c UpdateOperatorCommand) Name() *string { return c.name }

// Active returns the replacement active flag, nil to keep the current one.
func (c UpdateOperatorCommand) Active() *bool { return c.active }

// ResetLoad reports whether the workload counter is zeroed.
func (c UpdateOperatorCommand) ResetLoad() bool { return c.resetLoad }

func (c *UpdateOperatorCommand) setOperatorID(operatorID kernel.UUID) error {
	if err := operatorID.Validate(); err != nil {
		return err
	}
	c.operatorID = operatorID
	return nil
}
