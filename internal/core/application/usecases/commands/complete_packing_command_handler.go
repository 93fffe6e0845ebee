package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// CompletePackingCommandHandler handles the packing completion checkpoint.
// In one transaction it moves the order to Packed, records the box count and
// releases every tote the order holds. After commit it pushes the box count
// to the delivery platform as a stop note and notifies the staff channel;
// both calls are best effort and never fail the completion.
type CompletePackingCommandHandler struct {
	uowFactory OrderToteUoWFactory
	delivery   ports.DeliveryService
	notifier   ports.Notifier
}

// NewCompletePackingCommandHandler creates a handler for packing completion.
func NewCompletePackingCommandHandler(
	uowFactory OrderToteUoWFactory,
	delivery ports.DeliveryService,
	notifier ports.Notifier,
) CompletePackingCommandHandler {
	return CompletePackingCommandHandler{
		uowFactory: uowFactory,
		delivery:   delivery,
		notifier:   notifier,
	}
}

// Handle processes the completion command.
func (h CompletePackingCommandHandler) Handle(ctx context.Context, cmd CompletePackingCommand) error {
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

	released, err := o.CompletePacking(cmd.BoxCount(), cmd.Actor())
	if err != nil {
		return err
	}

	for _, toteID := range released {
		t, err := toteRepo.Get(ctx, toteID)
		if err != nil {
			// a dangling reference must not block completion
			if errors.Is(err, errs.ErrObjectNotFound) {
				continue
			}
			return err
		}

		t.Release()
		if err = toteRepo.Update(ctx, t); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifyCompletion(ctx, o.Number(), o.Delivery(), cmd)

	return nil
}

func (h CompletePackingCommandHandler) notifyCompletion(
	ctx context.Context,
	number string,
	delivery *order.Delivery,
	cmd CompletePackingCommand,
) {
	note := fmt.Sprintf("order %s packed in %d boxes", number, cmd.BoxCount())

	if delivery != nil && delivery.StopID != "" {
		if err := h.delivery.AddStopNote(ctx, delivery.StopID, note); err != nil {
			slog.Warn("delivery note failed", "order", number, "error", err)
		}
	}

	if err := h.notifier.Notify(ctx, ports.Notification{
		Kind:        "packComplete",
		Message:     note,
		Roles:       []string{"admin", "packer"},
		OrderNumber: number,
	}); err != nil {
		slog.Warn("staff notification failed", "order", number, "error", err)
	}
}
