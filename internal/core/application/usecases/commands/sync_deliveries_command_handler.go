package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// SyncDeliveriesCommandHandler mirrors the routing platform onto local
// orders. Stops are matched to orders by order number; stops with no local
// match are skipped. Orders are updated one transaction at a time.
type SyncDeliveriesCommandHandler struct {
	uowFactory OrderUoWFactory
	delivery   ports.DeliveryService
}

// NewSyncDeliveriesCommandHandler creates a handler for delivery sync sweeps.
func NewSyncDeliveriesCommandHandler(
	uowFactory OrderUoWFactory,
	delivery ports.DeliveryService,
) SyncDeliveriesCommandHandler {
	return SyncDeliveriesCommandHandler{
		uowFactory: uowFactory,
		delivery:   delivery,
	}
}

// Handle processes one sync sweep and returns the number of orders touched.
func (h SyncDeliveriesCommandHandler) Handle(ctx context.Context, cmd SyncDeliveriesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	stops, err := h.delivery.FetchStops(ctx)
	if err != nil {
		return 0, err
	}

	byNumber := make(map[string]ports.DeliveryStop, len(stops))
	for _, stop := range stops {
		byNumber[stop.OrderNumber] = stop
	}

	synced := 0
	for _, status := range []order.Status{order.Packing, order.Packed} {
		n, err := h.syncStatus(ctx, status, byNumber)
		if err != nil {
			return synced, err
		}
		synced += n
	}

	return synced, nil
}

func (h SyncDeliveriesCommandHandler) syncStatus(
	ctx context.Context,
	status order.Status,
	byNumber map[string]ports.DeliveryStop,
) (int, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetAllInStatus(ctx, status)
	if err != nil {
		return 0, err
	}

	synced := 0
	for _, o := range orders {
		stop, ok := byNumber[o.Number()]
		if !ok {
			continue
		}

		o.AttachDelivery(order.Delivery{
			TripID:         stop.TripID,
			StopID:         stop.StopID,
			DriverMemberID: stop.DriverMemberID,
			DriverName:     stop.DriverName,
			StopSequence:   stop.StopSequence,
		})

		if stop.Delivered && o.Status() == order.Packed {
			if err = o.MarkDelivered(order.SystemActor); err != nil {
				slog.Warn("mark delivered failed", "order", o.Number(), "error", err)
			}
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return synced, err
		}
		synced++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return synced, nil
}
