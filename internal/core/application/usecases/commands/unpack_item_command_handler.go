package commands

import (
	"context"
)

// UnpackItemCommandHandler handles removal of previously packed units.
type UnpackItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUnpackItemCommandHandler creates a handler for unpack mutations.
func NewUnpackItemCommandHandler(uowFactory OrderUoWFactory) UnpackItemCommandHandler {
	return UnpackItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the unpack command and returns the applied delta.
func (h UnpackItemCommandHandler) Handle(ctx context.Context, cmd UnpackItemCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return 0, err
	}

	applied, err := o.UnpackItem(cmd.ItemRef(), cmd.Delta(), cmd.Actor())
	if err != nil {
		return 0, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return applied, nil
}
