package commands

import (
	"errors"
	"io"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrAddPhotoCommandIsNotConstructed = errors.New(
		"AddPhotoCommand must be created via NewAddPhotoCommand constructor",
	)
	ErrPhotoBodyIsRequired = errors.New("photo body is required")
	ErrPhotoNameIsRequired = errors.New("photo name is required")
)

// AddPhotoCommand represents a packer attaching an evidence photo to an
// order. The body is streamed to object storage before the order document
// is updated with the resulting URL.
type AddPhotoCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	name        string
	contentType string
	body        io.Reader
	actor       string

	guard guard.ConstructorGuard
}

// NewAddPhotoCommand creates a command to attach a photo.
func NewAddPhotoCommand(
	orderID kernel.UUID,
	name, contentType string,
	body io.Reader,
	actor string,
) (AddPhotoCommand, error) {
	cmd := AddPhotoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setName(name),
		cmd.setBody(body),
		cmd.setActor(actor),
	); err != nil {
		return AddPhotoCommand{}, err
	}

	cmd.contentType = contentType
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddPhotoCommand) Validate() error {
	return c.guard.Validate(ErrAddPhotoCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AddPhotoCommand) OrderID() kernel.UUID { return c.orderID }

// Name returns the upload file name.
func (c AddPhotoCommand) Name() string { return c.name }

// ContentType returns the MIME type of the upload, possibly empty.
func (c AddPhotoCommand) ContentType() string { return c.contentType }

// Body returns the photo content stream.
func (c AddPhotoCommand) Body() io.Reader { return c.body }

// Actor returns the operator attaching the photo.
func (c AddPhotoCommand) Actor() string { return c.actor }

func (c *AddPhotoCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AddPhotoCommand) setName(name string) error {
	if name == "" {
		return ErrPhotoNameIsRequired
	}
	c.name = name
	return nil
}

func (c *AddPhotoCommand) setBody(body io.Reader) error {
	if body == nil {
		return ErrPhotoBodyIsRequired
	}
	c.body = body
	return nil
}

func (c *AddPhotoCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
