package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// RemovePhotoCommandHandler handles photo removal. The storage delete is
// fail-closed: it runs inside the mutation and an error aborts the local
// removal, so the document never references a half-deleted object while the
// object itself never outlives an acknowledged removal.
type RemovePhotoCommandHandler struct {
	uowFactory OrderUoWFactory
	storage    ports.ObjectStorage
}

// NewRemovePhotoCommandHandler creates a handler for photo removal.
func NewRemovePhotoCommandHandler(uowFactory OrderUoWFactory, storage ports.ObjectStorage) RemovePhotoCommandHandler {
	return RemovePhotoCommandHandler{
		uowFactory: uowFactory,
		storage:    storage,
	}
}

// Handle processes the removal command.
func (h RemovePhotoCommandHandler) Handle(ctx context.Context, cmd RemovePhotoCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if _, err = o.RemovePhoto(cmd.StorageID(), cmd.Actor()); err != nil {
		return err
	}

	// delete the object before committing the local removal
	if err = h.storage.Delete(ctx, cmd.StorageID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
