package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrPickItemCommandIsNotConstructed = errors.New(
		"PickItemCommand must be created via NewPickItemCommand constructor",
	)
	ErrItemRefIsRequired = errors.New("line item ref is required")
	ErrActorIsRequired   = errors.New("actor is required")
	ErrDeltaIsInvalid    = errors.New("delta must be greater than 0")
)

// PickItemCommand represents a picker recording verified units for one line
// item of one order. The delta is clamped against the item's remaining
// capacity by the aggregate; the handler reports the applied delta back.
//
// Example:
//
//	cmd, err := NewPickItemCommand(orderID, "li-1", 2, "grace")
//	if err != nil {
//	    return fmt.Errorf("invalid pick: %w", err)
//	}
//
//	handler := NewPickItemCommandHandler(uowFactory)
//	applied, err := handler.Handle(ctx, cmd)
type PickItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemRef string
	delta   int
	actor   string

	guard guard.ConstructorGuard
}

// NewPickItemCommand creates a command to record picked units.
// Validates that the order ID is valid, the item ref and actor are not empty,
// and the delta is positive.
func NewPickItemCommand(orderID kernel.UUID, itemRef string, delta int, actor string) (PickItemCommand, error) {
	cmd := PickItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemRef(itemRef),
		cmd.setDelta(delta),
		cmd.setActor(actor),
	); err != nil {
		return PickItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PickItemCommand) Validate() error {
	return c.guard.Validate(ErrPickItemCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c PickItemCommand) OrderID() kernel.UUID { return c.orderID }

// ItemRef returns the target line item's external reference.
func (c PickItemCommand) ItemRef() string { return c.itemRef }

// Delta returns the requested number of units.
func (c PickItemCommand) Delta() int { return c.delta }

// Actor returns the operator performing the pick.
func (c PickItemCommand) Actor() string { return c.actor }

func (c *PickItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PickItemCommand) setItemRef(itemRef string) error {
	if itemRef == "" {
		return ErrItemRefIsRequired
	}
	c.itemRef = itemRef
	return nil
}

func (c *PickItemCommand) setDelta(delta int) error {
	if delta <= 0 {
		return ErrDeltaIsInvalid
	}
	c.delta = delta
	return nil
}

func (c *PickItemCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
