package commands

import (
	"context"
)

// AssignToteCommandHandler handles tote assignment. The tote's status and
// the order's tote list form a two-document invariant, so both writes
// commit in one transaction. Re-scanning a tote already on the same order
// is a no-op.
type AssignToteCommandHandler struct {
	uowFactory OrderToteUoWFactory
}

// NewAssignToteCommandHandler creates a handler for tote assignment.
func NewAssignToteCommandHandler(uowFactory OrderToteUoWFactory) AssignToteCommandHandler {
	return AssignToteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
func (h AssignToteCommandHandler) Handle(ctx context.Context, cmd AssignToteCommand) error {
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
	toteRepo := uow.ToteRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	t, err := toteRepo.GetByBarcode(ctx, cmd.Barcode())
	if err != nil {
		return err
	}

	if t.OrderID() != nil && t.OrderID().IsEqual(o.ID()) {
		// already on this order, keep the scan idempotent
		return nil
	}

	if err = t.Assign(o.ID()); err != nil {
		return err
	}

	if _, err = o.AddTote(t.ID(), cmd.Actor()); err != nil {
		return err
	}

	if err = toteRepo.Update(ctx, t); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
