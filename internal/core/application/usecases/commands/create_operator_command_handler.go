package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/operator"
)

// CreateOperatorCommandHandler handles staff registration.
type CreateOperatorCommandHandler struct {
	uowFactory OperatorUoWFactory
}

// NewCreateOperatorCommandHandler creates a handler for staff registration.
func NewCreateOperatorCommandHandler(uowFactory OperatorUoWFactory) CreateOperatorCommandHandler {
	return CreateOperatorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h CreateOperatorCommandHandler) Handle(ctx context.Context, cmd CreateOperatorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	op, err := operator.NewOperator(cmd.OperatorID(), cmd.Name(), cmd.Role())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OperatorRepository().Add(ctx, op); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
