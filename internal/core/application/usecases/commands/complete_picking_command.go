package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCompletePickingCommandIsNotConstructed = errors.New(
	"CompletePickingCommand must be created via NewCompletePickingCommand constructor",
)

// CompletePickingCommand represents a picker closing out an order after
// accounting for every line item.
type CompletePickingCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   string

	guard guard.ConstructorGuard
}

// NewCompletePickingCommand creates a command to complete picking.
func NewCompletePickingCommand(orderID kernel.UUID, actor string) (CompletePickingCommand, error) {
	cmd := CompletePickingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return CompletePickingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompletePickingCommand) Validate() error {
	return c.guard.Validate(ErrCompletePickingCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c CompletePickingCommand) OrderID() kernel.UUID { return c.orderID }

// Actor returns the operator completing the picking.
func (c CompletePickingCommand) Actor() string { return c.actor }

func (c *CompletePickingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CompletePickingCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
