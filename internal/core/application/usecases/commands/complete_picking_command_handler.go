package commands

import (
	"context"
)

// CompletePickingCommandHandler handles the picking completion checkpoint.
// A precondition failure listing the unfinished item refs surfaces to the
// client unchanged so the picker sees what is left.
type CompletePickingCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompletePickingCommandHandler creates a handler for picking completion.
func NewCompletePickingCommandHandler(uowFactory OrderUoWFactory) CompletePickingCommandHandler {
	return CompletePickingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
func (h CompletePickingCommandHandler) Handle(ctx context.Context, cmd CompletePickingCommand) error {
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

	if err = o.CompletePicking(cmd.Actor()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
