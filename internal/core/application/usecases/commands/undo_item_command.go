package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrUndoItemCommandIsNotConstructed = errors.New(
	"UndoItemCommand must be created via NewUndoItemCommand constructor",
)

// UndoItemCommand represents resetting one stage of a line item: all three
// buckets back to zero and the completion flag cleared. Undoing the pick
// stage also clears any recorded substitution.
type UndoItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemRef string
	stage   Stage
	actor   string

	guard guard.ConstructorGuard
}

// NewUndoItemCommand creates a command to reset a line item stage.
func NewUndoItemCommand(orderID kernel.UUID, itemRef string, stage Stage, actor string) (UndoItemCommand, error) {
	cmd := UndoItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemRef(itemRef),
		cmd.setStage(stage),
		cmd.setActor(actor),
	); err != nil {
		return UndoItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UndoItemCommand) Validate() error {
	return c.guard.Validate(ErrUndoItemCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UndoItemCommand) OrderID() kernel.UUID { return c.orderID }

// ItemRef returns the target line item's external reference.
func (c UndoItemCommand) ItemRef() string { return c.itemRef }

// Stage returns the stage being reset.
func (c UndoItemCommand) Stage() Stage { return c.stage }

// Actor returns the operator performing the reset.
func (c UndoItemCommand) Actor() string { return c.actor }

func (c *UndoItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UndoItemCommand) setItemRef(itemRef string) error {
	if itemRef == "" {
		return ErrItemRefIsRequired
	}
	c.itemRef = itemRef
	return nil
}

func (c *UndoItemCommand) setStage(stage Stage) error {
	if stage != StagePick && stage != StagePack {
		return ErrStageIsInvalid
	}
	c.stage = stage
	return nil
}

func (c *UndoItemCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
