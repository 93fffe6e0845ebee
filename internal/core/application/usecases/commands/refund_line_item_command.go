package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRefundLineItemCommandIsNotConstructed = errors.New(
	"RefundLineItemCommand must be created via NewRefundLineItemCommand constructor",
)

// RefundLineItemCommand represents an admin refunding one line item.
// The operation is idempotent end to end: repeating it neither duplicates
// the Refunded flag nor re-sends the notification.
type RefundLineItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemRef string
	actor   string

	guard guard.ConstructorGuard
}

// NewRefundLineItemCommand creates a command to refund a line item.
func NewRefundLineItemCommand(orderID kernel.UUID, itemRef, actor string) (RefundLineItemCommand, error) {
	cmd := RefundLineItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemRef(itemRef),
		cmd.setActor(actor),
	); err != nil {
		return RefundLineItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RefundLineItemCommand) Validate() error {
	return c.guard.Validate(ErrRefundLineItemCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c RefundLineItemCommand) OrderID() kernel.UUID { return c.orderID }

// ItemRef returns the target line item's external reference.
func (c RefundLineItemCommand) ItemRef() string { return c.itemRef }

// Actor returns the admin issuing the refund.
func (c RefundLineItemCommand) Actor() string { return c.actor }

func (c *RefundLineItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RefundLineItemCommand) setItemRef(itemRef string) error {
	if itemRef == "" {
		return ErrItemRefIsRequired
	}
	c.itemRef = itemRef
	return nil
}

func (c *RefundLineItemCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
