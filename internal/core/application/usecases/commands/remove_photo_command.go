package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRemovePhotoCommandIsNotConstructed = errors.New(
		"RemovePhotoCommand must be created via NewRemovePhotoCommand constructor",
	)
	ErrStorageIDIsRequired = errors.New("storage id is required")
)

// RemovePhotoCommand represents removing an evidence photo from an order.
type RemovePhotoCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	storageID string
	actor     string

	guard guard.ConstructorGuard
}

// NewRemovePhotoCommand creates a command to remove a photo.
func NewRemovePhotoCommand(orderID kernel.UUID, storageID, actor string) (RemovePhotoCommand, error) {
	cmd := RemovePhotoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStorageID(storageID),
		cmd.setActor(actor),
	); err != nil {
		return RemovePhotoCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemovePhotoCommand) Validate() error {
	return c.guard.Validate(ErrRemovePhotoCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c RemovePhotoCommand) OrderID() kernel.UUID { return c.orderID }

// StorageID returns the storage key of the photo to remove.
func (c RemovePhotoCommand) StorageID() string { return c.storageID }

// Actor returns the operator removing the photo.
func (c RemovePhotoCommand) Actor() string { return c.actor }

func (c *RemovePhotoCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RemovePhotoCommand) setStorageID(storageID string) error {
	if storageID == "" {
		return ErrStorageIDIsRequired
	}
	c.storageID = storageID
	return nil
}

func (c *RemovePhotoCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
