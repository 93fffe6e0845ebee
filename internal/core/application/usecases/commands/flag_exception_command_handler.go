package commands

import (
	"context"
)

// FlagExceptionCommandHandler handles damaged / out-of-stock flagging for
// both stages. The applied quantity may be lower than requested when the
// bucket sum would exceed the ordered quantity.
type FlagExceptionCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewFlagExceptionCommandHandler creates a handler for exception flagging.
func NewFlagExceptionCommandHandler(uowFactory OrderUoWFactory) FlagExceptionCommandHandler {
	return FlagExceptionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the flag command and returns the applied quantity.
func (h FlagExceptionCommandHandler) Handle(ctx context.Context, cmd FlagExceptionCommand) (int, error) {
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

	var applied int
	if cmd.Stage() == StagePick {
		applied, err = o.FlagPickException(cmd.ItemRef(), cmd.Reason(), cmd.Quantity(), cmd.Actor())
	} else {
		applied, err = o.FlagPackException(cmd.ItemRef(), cmd.Reason(), cmd.Quantity(), cmd.Actor())
	}
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
