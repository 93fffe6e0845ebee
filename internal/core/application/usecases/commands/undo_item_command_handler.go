package commands

import (
	"context"
)

// UndoItemCommandHandler handles resetting one stage of a line item.
type UndoItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUndoItemCommandHandler creates a handler for item stage resets.
func NewUndoItemCommandHandler(uowFactory OrderUoWFactory) UndoItemCommandHandler {
	return UndoItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the undo command.
func (h UndoItemCommandHandler) Handle(ctx context.Context, cmd UndoItemCommand) error {
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

	if cmd.Stage() == StagePick {
		err = o.UndoItemPick(cmd.ItemRef(), cmd.Actor())
	} else {
		err = o.UndoItemPack(cmd.ItemRef(), cmd.Actor())
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
