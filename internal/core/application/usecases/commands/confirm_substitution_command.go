package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrConfirmSubstitutionCommandIsNotConstructed = errors.New(
	"ConfirmSubstitutionCommand must be created via NewConfirmSubstitutionCommand constructor",
)

// ConfirmSubstitutionCommand represents a packer confirming that a recorded
// substitution was actually placed in the box.
type ConfirmSubstitutionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemRef string
	actor   string

	guard guard.ConstructorGuard
}

// NewConfirmSubstitutionCommand creates a command to confirm a substitution.
func NewConfirmSubstitutionCommand(orderID kernel.UUID, itemRef, actor string) (ConfirmSubstitutionCommand, error) {
	cmd := ConfirmSubstitutionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemRef(itemRef),
		cmd.setActor(actor),
	); err != nil {
		return ConfirmSubstitutionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmSubstitutionCommand) Validate() error {
	return c.guard.Validate(ErrConfirmSubstitutionCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ConfirmSubstitutionCommand) OrderID() kernel.UUID { return c.orderID }

// ItemRef returns the target line item's external reference.
func (c ConfirmSubstitutionCommand) ItemRef() string { return c.itemRef }

// Actor returns the operator confirming the substitution.
func (c ConfirmSubstitutionCommand) Actor() string { return c.actor }

func (c *ConfirmSubstitutionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ConfirmSubstitutionCommand) setItemRef(itemRef string) error {
	if itemRef == "" {
		return ErrItemRefIsRequired
	}
	c.itemRef = itemRef
	return nil
}

func (c *ConfirmSubstitutionCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
