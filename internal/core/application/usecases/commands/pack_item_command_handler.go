package commands

import (
	"context"
)

// PackItemCommandHandler handles recording packed units.
type PackItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPackItemCommandHandler creates a handler for pack mutations.
func NewPackItemCommandHandler(uowFactory OrderUoWFactory) PackItemCommandHandler {
	return PackItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pack command and returns the applied delta.
func (h PackItemCommandHandler) Handle(ctx context.Context, cmd PackItemCommand) (int, error) {
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

	applied, err := o.PackItem(cmd.ItemRef(), cmd.Delta(), cmd.Actor())
	if err != nil {
		return 0, err
	}

	if packerID := cmd.PackerID(); packerID != nil {
		if err = o.ClaimPacker(*packerID, cmd.Actor()); err != nil {
			return 0, err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return applied, nil
}
