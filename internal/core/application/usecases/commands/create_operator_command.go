package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/operator"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateOperatorCommandIsNotConstructed = errors.New(
		"CreateOperatorCommand must be created via NewCreateOperatorCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
)

// CreateOperatorCommand represents an admin registering a new member of the
// warehouse staff.
type CreateOperatorCommand struct { //nolint:recvcheck //using for validation
	operatorID kernel.UUID
	name       string
	role       operator.Role

	guard guard.ConstructorGuard
}

// NewCreateOperatorCommand creates a command to register an operator.
func NewCreateOperatorCommand(operatorID kernel.UUID, name string, role operator.Role) (CreateOperatorCommand, error) {
	cmd := CreateOperatorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOperatorID(operatorID),
		cmd.setName(name),
		cmd.setRole(role),
	); err != nil {
		return CreateOperatorCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOperatorCommand) Validate() error {
	return c.guard.Validate(ErrCreateOperatorCommandIsNotConstructed)
}

// OperatorID returns the new operator's identifier.
func (c CreateOperatorCommand) OperatorID() kernel.UUID { return c.operatorID }

// Name returns the operator's display name.
func (c CreateOperatorCommand) Name() string { return c.name }

// Role returns the operator's role.
func (c CreateOperatorCommand) Role() operator.Role { return c.role }

func (c *CreateOperatorCommand) setOperatorID(operatorID kernel.UUID) error {
	if err := operatorID.Validate(); err != nil {
		return err
	}
	c.operatorID = operatorID
	return nil
}

func (c *CreateOperatorCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateOperatorCommand) setRole(role operator.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
