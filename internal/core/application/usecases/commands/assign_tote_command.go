package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrAssignToteCommandIsNotConstructed = errors.New(
		"AssignToteCommand must be created via NewAssignToteCommand constructor",
	)
	ErrBarcodeIsRequired = errors.New("barcode is required")
)

// AssignToteCommand represents a picker scanning a tote onto an order.
// The tote is identified by its barcode, not its ID; that is what the
// scanner produces.
type AssignToteCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	barcode string
	actor   string

	guard guard.ConstructorGuard
}

// NewAssignToteCommand creates a command to attach a tote to an order.
func NewAssignToteCommand(orderID kernel.UUID, barcode, actor string) (AssignToteCommand, error) {
	cmd := AssignToteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBarcode(barcode),
		cmd.setActor(actor),
	); err != nil {
		return AssignToteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignToteCommand) Validate() error {
	return c.guard.Validate(ErrAssignToteCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AssignToteCommand) OrderID() kernel.UUID { return c.orderID }

// Barcode returns the scanned tote label.
func (c AssignToteCommand) Barcode() string { return c.barcode }

// Actor returns the operator scanning the tote.
func (c AssignToteCommand) Actor() string { return c.actor }

func (c *AssignToteCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AssignToteCommand) setBarcode(barcode string) error {
	if barcode == "" {
		return ErrBarcodeIsRequired
	}
	c.barcode = barcode
	return nil
}

func (c *AssignToteCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
