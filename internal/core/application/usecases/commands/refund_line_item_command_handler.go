package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/ports"
)

// RefundLineItemCommandHandler handles line item refunds. The refund request
// to the commerce platform and the staff notification fire only when the
// refund was newly applied; both are best effort.
type RefundLineItemCommandHandler struct {
	uowFactory OrderUoWFactory
	refunds    ports.RefundIssuer
	notifier   ports.Notifier
}

// NewRefundLineItemCommandHandler creates a handler for refunds.
func NewRefundLineItemCommandHandler(
	uowFactory OrderUoWFactory,
	refunds ports.RefundIssuer,
	notifier ports.Notifier,
) RefundLineItemCommandHandler {
	return RefundLineItemCommandHandler{
		uowFactory: uowFactory,
		refunds:    refunds,
		notifier:   notifier,
	}
}

// Handle processes the refund command.
func (h RefundLineItemCommandHandler) Handle(ctx context.Context, cmd RefundLineItemCommand) error {
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

	applied, err := o.RefundItem(cmd.ItemRef(), cmd.Actor())
	if err != nil {
		return err
	}

	if !applied {
		// already refunded, nothing to persist or notify
		return nil
	}

	item, err := o.FindItem(cmd.ItemRef())
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.refunds.IssueRefund(ctx, o.ExternalRef(), cmd.ItemRef(), item.Quantity()); err != nil {
		slog.Warn("refund request failed",
			"order", o.Number(),
			"item", cmd.ItemRef(),
			"error", err)
	}

	_ = h.notifier.Notify(ctx, ports.Notification{
		Kind:        "refund",
		Message:     cmd.Actor() + " refunded " + item.Name() + " on order " + o.Number(),
		Roles:       []string{"admin"},
		OrderNumber: o.Number(),
		ProductID:   item.ProductID(),
		VariantID:   item.VariantID(),
	})

	return nil
}
