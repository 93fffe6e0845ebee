package commands

import (
	"context"
)

// ApproveCommandHandler handles admin sign-off of exceptions.
type ApproveCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewApproveCommandHandler creates a handler for approvals.
func NewApproveCommandHandler(uowFactory OrderUoWFactory) ApproveCommandHandler {
	return ApproveCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval command.
func (h ApproveCommandHandler) Handle(ctx context.Context, cmd ApproveCommand) error {
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
		o.ApproveOrder(cmd.Actor())
	} else if err = o.ApproveItem(cmd.ItemRef(), cmd.Actor()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
