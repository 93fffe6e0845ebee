package commands

import (
	"context"
)

// UpdateNotesCommandHandler handles note edits.
type UpdateNotesCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateNotesCommandHandler creates a handler for note edits.
func NewUpdateNotesCommandHandler(uowFactory OrderUoWFactory) UpdateNotesCommandHandler {
	return UpdateNotesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the note command.
func (h UpdateNotesCommandHandler) Handle(ctx context.Context, cmd UpdateNotesCommand) error {
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

	if cmd.ItemRef() == "" {
		o.SetAdminNote(cmd.Note(), cmd.Actor())
	} else if err = o.SetItemAdminNote(cmd.ItemRef(), cmd.Note(), cmd.Actor()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
