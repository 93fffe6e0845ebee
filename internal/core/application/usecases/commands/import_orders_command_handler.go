package commands

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/operator"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ImportOrdersCommandHandler pulls open orders from the commerce platform
// and creates the ones not seen before. Each new order is dispatched to the
// least busy active picker; when no picker is on shift the order is saved
// unassigned and the next sweep retries the assignment.
//
// Every order commits in its own transaction so one bad payload does not
// poison the whole sweep.
type ImportOrdersCommandHandler struct {
	uowFactory OrderOperatorUoWFactory
	source     ports.OrderSource
}

// NewImportOrdersCommandHandler creates a handler for import sweeps.
func NewImportOrdersCommandHandler(
	uowFactory OrderOperatorUoWFactory,
	source ports.OrderSource,
) ImportOrdersCommandHandler {
	return ImportOrdersCommandHandler{
		uowFactory: uowFactory,
		source:     source,
	}
}

// Handle processes one import sweep and returns the number of orders created.
func (h ImportOrdersCommandHandler) Handle(ctx context.Context, cmd ImportOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	imported, err := h.source.FetchOpenOrders(ctx)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, payload := range imported {
		ok, err := h.importOne(ctx, payload)
		if err != nil {
			slog.Error("order import failed",
				"externalRef", payload.ExternalRef,
				"error", err)
			continue
		}
		if ok {
			created++
		}
	}

	return created, nil
}

// importOne creates and dispatches a single order. Returns false when the
// order already exists.
func (h ImportOrdersCommandHandler) importOne(ctx context.Context, payload ports.ImportedOrder) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	operatorRepo := uow.OperatorRepository()

	_, err := orderRepo.GetByExternalRef(ctx, payload.ExternalRef)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return false, err
	}

	o, err := buildOrder(payload)
	if err != nil {
		return false, err
	}

	pickers, err := operatorRepo.GetAllActiveInRole(ctx, operator.RolePicker)
	if err != nil {
		return false, err
	}

	assigned, err := services.NewPickerDispatcher().Dispatch(o, pickers)
	switch {
	case errors.Is(err, services.ErrPickerNotFound):
		slog.Warn("no active picker, importing unassigned", "order", o.Number())
	case err != nil:
		return false, err
	default:
		if err = operatorRepo.Update(ctx, assigned); err != nil {
			return false, err
		}
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}

func buildOrder(payload ports.ImportedOrder) (*order.Order, error) {
	items := make([]*order.LineItem, 0, len(payload.LineItems))
	for _, li := range payload.LineItems {
		item, err := order.NewLineItem(li.Ref, li.ProductID, li.VariantID, li.Name, li.SKU, li.Quantity)
		if err != nil {
			return nil, err
		}
		item.SetCustomerNote(li.CustomerNote)
		items = append(items, item)
	}

	// Boards and the order detail render items in SKU order.
	sort.Slice(items, func(i, j int) bool {
		return items[i].SKU() < items[j].SKU()
	})

	return order.NewOrder(kernel.NewUUID(), payload.ExternalRef, payload.Number, payload.CustomerName, items)
}
