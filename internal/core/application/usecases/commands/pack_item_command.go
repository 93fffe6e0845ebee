package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrPackItemCommandIsNotConstructed = errors.New(
	"PackItemCommand must be created via NewPackItemCommand constructor",
)

// PackItemCommand represents a packer recording verified units for one line
// item, mirroring PickItemCommand against the packing accounting. The packer
// identity rides along so an order without a packer gets one on its first
// pack action; nil when the caller's identity is unknown.
type PackItemCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	itemRef  string
	delta    int
	packerID *kernel.UUID
	actor    string

	guard guard.ConstructorGuard
}

// NewPackItemCommand creates a command to record packed units.
func NewPackItemCommand(orderID kernel.UUID, itemRef string, delta int, packerID *kernel.UUID, actor string) (PackItemCommand, error) {
	cmd := PackItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemRef(itemRef),
		cmd.setDelta(delta),
		cmd.setPackerID(packerID),
		cmd.setActor(actor),
	); err != nil {
		return PackItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PackItemCommand) Validate() error {
	return c.guard.Validate(ErrPackItemCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c PackItemCommand) OrderID() kernel.UUID { return c.orderID }

// ItemRef returns the target line item's external reference.
func (c PackItemCommand) ItemRef() string { return c.itemRef }

// Delta returns the requested number of units.
func (c PackItemCommand) Delta() int { return c.delta }

// PackerID returns the caller's operator identifier, nil when unknown.
func (c PackItemCommand) PackerID() *kernel.UUID { return c.packerID }

// Actor returns the operator performing the pack.
func (c PackItemCommand) Actor() string { return c.actor }

func (c *PackItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PackItemCommand) setItemRef(itemRef string) error {
	if itemRef == "" {
		return ErrItemRefIsRequired
	}
	c.itemRef = itemRef
	return nil
}

func (c *PackItemCommand) setDelta(delta int) error {
	if delta <= 0 {
		return ErrDeltaIsInvalid
	}
	c.delta = delta
	return nil
}

func (c *PackItemCommand) setPackerID(packerID *kernel.UUID) error {
	if packerID == nil {
		return nil
	}
	if err := packerID.Validate(); err != nil {
		return err
	}
	c.packerID = packerID
	return nil
}

func (c *PackItemCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
