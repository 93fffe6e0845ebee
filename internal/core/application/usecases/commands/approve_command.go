package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrApproveCommandIsNotConstructed = errors.New(
	"ApproveCommand must be created via NewApproveCommand constructor",
)

// ApproveCommand represents an admin signing off exceptions. With an empty
// item ref the whole order is approved, item by item; otherwise only the
// named line item.
type ApproveCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemRef string
	actor   string

	guard guard.ConstructorGuard
}

// NewApproveCommand creates a command to approve an order or one item.
func NewApproveCommand(orderID kernel.UUID, itemRef, actor string) (ApproveCommand, error) {
	cmd := ApproveCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return ApproveCommand{}, err
	}

	cmd.itemRef = itemRef
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveCommand) Validate() error {
	return c.guard.Validate(ErrApproveCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ApproveCommand) OrderID() kernel.UUID { return c.orderID }

// ItemRef returns the target line item's reference, empty for order-level approval.
func (c ApproveCommand) ItemRef() string { return c.itemRef }

// Actor returns the admin approving.
func (c ApproveCommand) Actor() string { return c.actor }

func (c *ApproveCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ApproveCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
