package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRecordSubstitutionCommandIsNotConstructed = errors.New(
		"RecordSubstitutionCommand must be created via NewRecordSubstitutionCommand constructor",
	)
	ErrSubstituteProductIsRequired = errors.New("substitute product is required")
)

// RecordSubstitutionCommand represents a picker substituting a line item
// with another product. The substituted item is considered picked from this
// point on, whatever its quantity accounting says.
type RecordSubstitutionCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	itemRef      string
	reason       order.ExceptionReason
	subProductID string
	subVariantID string
	actor        string

	guard guard.ConstructorGuard
}

// NewRecordSubstitutionCommand creates a command to record a substitution.
func NewRecordSubstitutionCommand(
	orderID kernel.UUID,
	itemRef string,
	reason order.ExceptionReason,
	subProductID, subVariantID string,
	actor string,
) (RecordSubstitutionCommand, error) {
	cmd := RecordSubstitutionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemRef(itemRef),
		cmd.setReason(reason),
		cmd.setSubProduct(subProductID),
		cmd.setActor(actor),
	); err != nil {
		return RecordSubstitutionCommand{}, err
	}

	cmd.subVariantID = subVariantID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordSubstitutionCommand) Validate() error {
	return c.guard.Validate(ErrRecordSubstitutionCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c RecordSubstitutionCommand) OrderID() kernel.UUID { return c.orderID }

// ItemRef returns the target line item's external reference.
func (c RecordSubstitutionCommand) ItemRef() string { return c.itemRef }

// Reason returns the exception bucket holding the substitution.
func (c RecordSubstitutionCommand) Reason() order.ExceptionReason { return c.reason }

// SubProductID returns the substitute product reference.
func (c RecordSubstitutionCommand) SubProductID() string { return c.subProductID }

// SubVariantID returns the substitute variant reference, possibly empty.
func (c RecordSubstitutionCommand) SubVariantID() string { return c.subVariantID }

// Actor returns the operator recording the substitution.
func (c RecordSubstitutionCommand) Actor() string { return c.actor }

func (c *RecordSubstitutionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RecordSubstitutionCommand) setItemRef(itemRef string) error {
	if itemRef == "" {
		return ErrItemRefIsRequired
	}
	c.itemRef = itemRef
	return nil
}

func (c *RecordSubstitutionCommand) setReason(reason order.ExceptionReason) error {
	if err := reason.Validate(); err != nil {
		return err
	}
	c.reason = reason
	return nil
}

func (c *RecordSubstitutionCommand) setSubProduct(subProductID string) error {
	if subProductID == "" {
		return ErrSubstituteProductIsRequired
	}
	c.subProductID = subProductID
	return nil
}

func (c *RecordSubstitutionCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
