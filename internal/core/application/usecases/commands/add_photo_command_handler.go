package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// AddPhotoCommandHandler handles photo attachment. The upload happens before
// the transaction opens; if persisting the order then fails, the uploaded
// object is orphaned, which a cleanup job can sweep later. The reverse order
// would lose a photo the client believes saved.
type AddPhotoCommandHandler struct {
	uowFactory OrderUoWFactory
	storage    ports.ObjectStorage
}

// NewAddPhotoCommandHandler creates a handler for photo attachment.
func NewAddPhotoCommandHandler(uowFactory OrderUoWFactory, storage ports.ObjectStorage) AddPhotoCommandHandler {
	return AddPhotoCommandHandler{
		uowFactory: uowFactory,
		storage:    storage,
	}
}

// Handle processes the photo command and returns the stored photo.
func (h AddPhotoCommandHandler) Handle(ctx context.Context, cmd AddPhotoCommand) (order.Photo, error) {
	if err := cmd.Validate(); err != nil {
		return order.Photo{}, err
	}

	stored, err := h.storage.Upload(ctx, cmd.Name(), cmd.ContentType(), cmd.Body())
	if err != nil {
		return order.Photo{}, err
	}

	photo := order.Photo{URL: stored.URL, StorageID: stored.StorageID}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return order.Photo{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return order.Photo{}, err
	}

	if err = o.AddPhoto(photo, cmd.Actor()); err != nil {
		return order.Photo{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return order.Photo{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Photo{}, err
	}

	return photo, nil
}
