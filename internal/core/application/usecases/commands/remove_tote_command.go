package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRemoveToteCommandIsNotConstructed = errors.New(
	"RemoveToteCommand must be created via NewRemoveToteCommand constructor",
)

// RemoveToteCommand represents detaching a tote from an order and returning
// it to the rack.
type RemoveToteCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	barcode string
	actor   string

	guard guard.ConstructorGuard
}

// NewRemoveToteCommand creates a command to detach a tote.
func NewRemoveToteCommand(orderID kernel.UUID, barcode, actor string) (RemoveToteCommand, error) {
	cmd := RemoveToteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBarcode(barcode),
		cmd.setActor(actor),
	); err != nil {
		return RemoveToteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveToteCommand) Validate() error {
	return c.guard.Validate(ErrRemoveToteCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c RemoveToteCommand) OrderID() kernel.UUID { return c.orderID }

// Barcode returns the scanned tote label.
func (c RemoveToteCommand) Barcode() string { return c.barcode }

// Actor returns the operator removing the tote.
func (c RemoveToteCommand) Actor() string { return c.actor }

func (c *RemoveToteCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RemoveToteCommand) setBarcode(barcode string) error {
	if barcode == "" {
		return ErrBarcodeIsRequired
	}
	c.barcode = barcode
	return nil
}

func (c *RemoveToteCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
