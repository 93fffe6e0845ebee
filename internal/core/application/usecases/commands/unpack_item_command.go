package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrUnpackItemCommandIsNotConstructed = errors.New(
	"UnpackItemCommand must be created via NewUnpackItemCommand constructor",
)

// UnpackItemCommand represents a packer removing previously verified units
// from one line item's packing accounting.
type UnpackItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemRef string
	delta   int
	actor   string

	guard guard.ConstructorGuard
}

// NewUnpackItemCommand creates a command to remove packed units.
func NewUnpackItemCommand(orderID kernel.UUID, itemRef string, delta int, actor string) (UnpackItemCommand, error) {
	cmd := UnpackItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemRef(itemRef),
		cmd.setDelta(delta),
		cmd.setActor(actor),
	); err != nil {
		return UnpackItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UnpackItemCommand) Validate() error {
	return c.guard.Validate(ErrUnpackItemCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UnpackItemCommand) OrderID() kernel.UUID { return c.orderID }

// ItemRef returns the target line item's external reference.
func (c UnpackItemCommand) ItemRef() string { return c.itemRef }

// Delta returns the requested number of units.
func (c UnpackItemCommand) Delta() int { return c.delta }

// Actor returns the operator performing the removal.
func (c UnpackItemCommand) Actor() string { return c.actor }

func (c *UnpackItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UnpackItemCommand) setItemRef(itemRef string) error {
	if itemRef == "" {
		return ErrItemRefIsRequired
	}
	c.itemRef = itemRef
	return nil
}

func (c *UnpackItemCommand) setDelta(delta int) error {
	if delta <= 0 {
		return ErrDeltaIsInvalid
	}
	c.delta = delta
	return nil
}

func (c *UnpackItemCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
