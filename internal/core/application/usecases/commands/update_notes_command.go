package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateNotesCommandIsNotConstructed = errors.New(
	"UpdateNotesCommand must be created via NewUpdateNotesCommand constructor",
)

// UpdateNotesCommand represents an admin replacing the free-text note on an
// order or, with an item ref, on one line item. An empty note clears it.
type UpdateNotesCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemRef string
	note    string
	actor   string

	guard guard.ConstructorGuard
}

// NewUpdateNotesCommand creates a command to update notes.
func NewUpdateNotesCommand(orderID kernel.UUID, itemRef, note, actor string) (UpdateNotesCommand, error) {
	cmd := UpdateNotesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return UpdateNotesCommand{}, err
	}

	cmd.itemRef = itemRef
	cmd.note = note
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateNotesCommand) Validate() error {
	return c.guard.Validate(ErrUpdateNotesCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UpdateNotesCommand) OrderID() kernel.UUID { return c.orderID }

// ItemRef returns the target line item's reference, empty for the order note.
func (c UpdateNotesCommand) ItemRef() string { return c.itemRef }

// Note returns the replacement note text.
func (c UpdateNotesCommand) Note() string { return c.note }

// Actor returns the admin updating the note.
func (c UpdateNotesCommand) Actor() string { return c.actor }

func (c *UpdateNotesCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateNotesCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
