package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/ports"
)

// ConfirmSubstitutionCommandHandler handles substitution confirmation at
// packing. On success it emits the inventory adjustment intent for the
// substitute variant; the adjustment is best effort and a failure only logs,
// it never rolls back the confirmation.
type ConfirmSubstitutionCommandHandler struct {
	uowFactory OrderUoWFactory
	inventory  ports.InventoryAdjuster
}

// NewConfirmSubstitutionCommandHandler creates a handler for substitution confirmation.
func NewConfirmSubstitutionCommandHandler(
	uowFactory OrderUoWFactory,
	inventory ports.InventoryAdjuster,
) ConfirmSubstitutionCommandHandler {
	return ConfirmSubstitutionCommandHandler{
		uowFactory: uowFactory,
		inventory:  inventory,
	}
}

// Handle processes the confirmation command.
func (h ConfirmSubstitutionCommandHandler) Handle(ctx context.Context, cmd ConfirmSubstitutionCommand) error {
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

	sub, err := o.ConfirmSubstitution(cmd.ItemRef(), cmd.Actor())
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if sub.VariantID != "" {
		if err = h.inventory.AdjustInventory(ctx, sub.VariantID, -1); err != nil {
			slog.Warn("inventory adjustment failed",
				"order", o.Number(),
				"variant", sub.VariantID,
				"error", err)
		}
	}

	return nil
}
