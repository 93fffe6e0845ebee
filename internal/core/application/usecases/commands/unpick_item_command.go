package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrUnpickItemCommandIsNotConstructed = errors.New(
	"UnpickItemCommand must be created via NewUnpickItemCommand constructor",
)

// UnpickItemCommand represents a picker removing previously verified units
// from one line item, floored at zero by the aggregate.
type UnpickItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemRef string
	delta   int
	actor   string

	guard guard.ConstructorGuard
}

// NewUnpickItemCommand creates a command to remove picked units.
func NewUnpickItemCommand(orderID kernel.UUID, itemRef string, delta int, actor string) (UnpickItemCommand, error) {
	cmd := UnpickItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemRef(itemRef),
		cmd.setDelta(delta),
		cmd.setActor(actor),
	); err != nil {
		return UnpickItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UnpickItemCommand) Validate() error {
	return c.guard.Validate(ErrUnpickItemCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UnpickItemCommand) OrderID() kernel.UUID { return c.orderID }

// ItemRef returns the target line item's external reference.
func (c UnpickItemCommand) ItemRef() string { return c.itemRef }

// Delta returns the requested number of units.
func (c UnpickItemCommand) Delta() int { return c.delta }

// Actor returns the operator performing the removal.
func (c UnpickItemCommand) Actor() string { return c.actor }

func (c *UnpickItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UnpickItemCommand) setItemRef(itemRef string) error {
	if itemRef == "" {
		return ErrItemRefIsRequired
	}
	c.itemRef = itemRef
	return nil
}

func (c *UnpickItemCommand) setDelta(delta int) error {
	if delta <= 0 {
		return ErrDeltaIsInvalid
	}
	c.delta = delta
	return nil
}

func (c *UnpickItemCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
