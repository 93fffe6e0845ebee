package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCompletePackingCommandIsNotConstructed = errors.New(
		"CompletePackingCommand must be created via NewCompletePackingCommand constructor",
	)
	ErrBoxCountIsInvalid = errors.New("box count must be greater than 0")
)

// CompletePackingCommand represents a packer closing out an order: every
// item accounted for, the goods in boxCount shipping boxes, totes freed.
type CompletePackingCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	boxCount int
	actor    string

	guard guard.ConstructorGuard
}

// NewCompletePackingCommand creates a command to complete packing.
func NewCompletePackingCommand(orderID kernel.UUID, boxCount int, actor string) (CompletePackingCommand, error) {
	cmd := CompletePackingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBoxCount(boxCount),
		cmd.setActor(actor),
	); err != nil {
		return CompletePackingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompletePackingCommand) Validate() error {
	return c.guard.Validate(ErrCompletePackingCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c CompletePackingCommand) OrderID() kernel.UUID { return c.orderID }

// BoxCount returns the number of shipping boxes.
func (c CompletePackingCommand) BoxCount() int { return c.boxCount }

// Actor returns the operator completing the packing.
func (c CompletePackingCommand) Actor() string { return c.actor }

func (c *CompletePackingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CompletePackingCommand) setBoxCount(boxCount int) error {
	if boxCount <= 0 {
		return ErrBoxCountIsInvalid
	}
	c.boxCount = boxCount
	return nil
}

func (c *CompletePackingCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
