package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// RecordSubstitutionCommandHandler handles substitution recording. It also
// emits a staff notification so admins see substitutions as they happen;
// the notification is best effort and never fails the mutation.
type RecordSubstitutionCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewRecordSubstitutionCommandHandler creates a handler for substitutions.
func NewRecordSubstitutionCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) RecordSubstitutionCommandHandler {
	return RecordSubstitutionCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the substitution command.
func (h RecordSubstitutionCommandHandler) Handle(ctx context.Context, cmd RecordSubstitutionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	sub, err := order.NewSubstitute(cmd.SubProductID(), cmd.SubVariantID())
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.RecordSubstitution(cmd.ItemRef(), cmd.Reason(), sub, cmd.Actor()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// best effort, after commit
	_ = h.notifier.Notify(ctx, ports.Notification{
		Kind:        "substitution",
		Message:     cmd.Actor() + " substituted an item on order " + o.Number(),
		Roles:       []string{"admin"},
		OrderNumber: o.Number(),
		ProductID:   cmd.SubProductID(),
		VariantID:   cmd.SubVariantID(),
	})

	return nil
}
