package commands

import (
	"context"
)

// PickItemCommandHandler handles the business logic for recording picked
// units. Loads the order, applies the clamped increment, and persists the
// updated document in one transaction.
//
// The returned applied delta lets the client show the picker how many of the
// scanned units actually counted.
type PickItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPickItemCommandHandler creates a handler for pick mutations.
func NewPickItemCommandHandler(uowFactory OrderUoWFactory) PickItemCommandHandler {
	return PickItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pick command and returns the applied delta.
func (h PickItemCommandHandler) Handle(ctx context.Context, cmd PickItemCommand) (int, error) {
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

	applied, err := o.PickItem(cmd.ItemRef(), cmd.Delta(), cmd.Actor())
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
