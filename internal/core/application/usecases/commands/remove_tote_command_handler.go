package commands

import (
	"context"

	"fulfillment/internal/pkg/errs"
)

// RemoveToteCommandHandler handles tote removal, the inverse of assignment.
// Requires the tote to currently belong to the given order.
type RemoveToteCommandHandler struct {
	uowFactory OrderToteUoWFactory
}

// NewRemoveToteCommandHandler creates a handler for tote removal.
func NewRemoveToteCommandHandler(uowFactory OrderToteUoWFactory) RemoveToteCommandHandler {
	return RemoveToteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
func (h RemoveToteCommandHandler) Handle(ctx context.Context, cmd RemoveToteCommand) error {
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
	toteRepo := uow.ToteRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	t, err := toteRepo.GetByBarcode(ctx, cmd.Barcode())
	if err != nil {
		return err
	}

	if t.OrderID() == nil || !t.OrderID().IsEqual(o.ID()) {
		return errs.NewObjectNotFoundError("toteBarcode", cmd.Barcode())
	}

	t.Release()
	if err = o.RemoveTote(t.ID(), cmd.Actor()); err != nil {
		return err
	}

	if err = toteRepo.Update(ctx, t); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
