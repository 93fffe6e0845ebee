package commands

import (
	"context"
)

// UpdateOperatorCommandHandler handles staff edits.
type UpdateOperatorCommandHandler struct {
	uowFactory OperatorUoWFactory
}

// NewUpdateOperatorCommandHandler creates a handler for staff edits.
func NewUpdateOperatorCommandHandler(uowFactory OperatorUoWFactory) UpdateOperatorCommandHandler {
	return UpdateOperatorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit command.
func (h UpdateOperatorCommandHandler) Handle(ctx context.Context, cmd UpdateOperatorCommand) error {
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

	operatorRepo := uow.OperatorRepository()
	op, err := operatorRepo.Get(ctx, cmd.OperatorID())
	if err != nil {
		return err
	}

	if name := cmd.Name(); name != nil {
		if err = op.Rename(*name); err != nil {
			return err
		}
	}

	if active := cmd.Active(); active != nil {
		if *active {
			op.Activate()
		} else {
			op.Deactivate()
		}
	}

	if cmd.ResetLoad() {
		op.ResetLoad()
	}

	if err = operatorRepo.Update(ctx, op); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
