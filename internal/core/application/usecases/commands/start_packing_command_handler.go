package commands

import (
	"context"
)

// StartPackingCommandHandler handles the packing claim transition.
type StartPackingCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartPackingCommandHandler creates a handler for packing claims.
func NewStartPackingCommandHandler(uowFactory OrderUoWFactory) StartPackingCommandHandler {
	return StartPackingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim command.
func (h StartPackingCommandHandler) Handle(ctx context.Context, cmd StartPackingCommand) error {
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

	if err = o.StartPacking(cmd.PackerID(), cmd.Actor()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
