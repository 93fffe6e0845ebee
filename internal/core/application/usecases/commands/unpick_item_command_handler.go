package commands

import (
	"context"
)

// UnpickItemCommandHandler handles removal of previously picked units.
type UnpickItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUnpickItemCommandHandler creates a handler for unpick mutations.
func NewUnpickItemCommandHandler(uowFactory OrderUoWFactory) UnpickItemCommandHandler {
	return UnpickItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the unpick command and returns the applied delta.
func (h UnpickItemCommandHandler) Handle(ctx context.Context, cmd UnpickItemCommand) (int, error) {
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

	applied, err := o.UnpickItem(cmd.ItemRef(), cmd.Delta(), cmd.Actor())
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
