package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrStartPackingCommandIsNotConstructed = errors.New(
	"StartPackingCommand must be created via NewStartPackingCommand constructor",
)

// StartPackingCommand represents a packer claiming a picked order before
// touching any item. Claiming an order already in packing is allowed and
// replaces the packer.
type StartPackingCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	packerID kernel.UUID
	actor    string

	guard guard.ConstructorGuard
}

// NewStartPackingCommand creates a command to claim an order for packing.
func NewStartPackingCommand(orderID, packerID kernel.UUID, actor string) (StartPackingCommand, error) {
	cmd := StartPackingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPackerID(packerID),
		cmd.setActor(actor),
	); err != nil {
		return StartPackingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartPackingCommand) Validate() error {
	return c.guard.Validate(ErrStartPackingCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c StartPackingCommand) OrderID() kernel.UUID { return c.orderID }

// PackerID returns the claiming operator's identifier.
func (c StartPackingCommand) PackerID() kernel.UUID { return c.packerID }

// Actor returns the operator claiming the order.
func (c StartPackingCommand) Actor() string { return c.actor }

func (c *StartPackingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *StartPackingCommand) setPackerID(packerID kernel.UUID) error {
	if err := packerID.Validate(); err != nil {
		return err
	}
	c.packerID = packerID
	return nil
}

func (c *StartPackingCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
