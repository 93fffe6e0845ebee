package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrFlagExceptionCommandIsNotConstructed = errors.New(
		"FlagExceptionCommand must be created via NewFlagExceptionCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
	ErrStageIsInvalid    = errors.New("stage must be pick or pack")
)

// Stage selects which quantity accounting a mutation targets.
type Stage string

const (
	// StagePick targets the picking accounting.
	StagePick Stage = "pick"

	// StagePack targets the packing accounting.
	StagePack Stage = "pack"
)

// FlagExceptionCommand represents an operator marking units of a line item
// as damaged or out of stock, at either stage. The exception units count
// toward the item's accounted total.
type FlagExceptionCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	itemRef  string
	stage    Stage
	reason   order.ExceptionReason
	quantity int
	actor    string

	guard guard.ConstructorGuard
}

// NewFlagExceptionCommand creates a command to flag exception units.
func NewFlagExceptionCommand(
	orderID kernel.UUID,
	itemRef string,
	stage Stage,
	reason order.ExceptionReason,
	quantity int,
	actor string,
) (FlagExceptionCommand, error) {
	cmd := FlagExceptionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemRef(itemRef),
		cmd.setStage(stage),
		cmd.setReason(reason),
		cmd.setQuantity(quantity),
		cmd.setActor(actor),
	); err != nil {
		return FlagExceptionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FlagExceptionCommand) Validate() error {
	return c.guard.Validate(ErrFlagExceptionCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c FlagExceptionCommand) OrderID() kernel.UUID { return c.orderID }

// ItemRef returns the target line item's external reference.
func (c FlagExceptionCommand) ItemRef() string { return c.itemRef }

// Stage returns the targeted accounting stage.
func (c FlagExceptionCommand) Stage() Stage { return c.stage }

// Reason returns the exception reason.
func (c FlagExceptionCommand) Reason() order.ExceptionReason { return c.reason }

// Quantity returns the number of exception units.
func (c FlagExceptionCommand) Quantity() int { return c.quantity }

// Actor returns the operator flagging the exception.
func (c FlagExceptionCommand) Actor() string { return c.actor }

func (c *FlagExceptionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *FlagExceptionCommand) setItemRef(itemRef string) error {
	if itemRef == "" {
		return ErrItemRefIsRequired
	}
	c.itemRef = itemRef
	return nil
}

func (c *FlagExceptionCommand) setStage(stage Stage) error {
	if stage != StagePick && stage != StagePack {
		return ErrStageIsInvalid
	}
	c.stage = stage
	return nil
}

func (c *FlagExceptionCommand) setReason(reason order.ExceptionReason) error {
	if err := reason.Validate(); err != nil {
		return err
	}
	c.reason = reason
	return nil
}

func (c *FlagExceptionCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}
	c.quantity = quantity
	return nil
}

func (c *FlagExceptionCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
