package commands_test

import (
	"fmt"
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T, quantities ...int) *order.Order {
	t.Helper()

	items := make([]*order.LineItem, 0, len(quantities))
	for i, quantity := range quantities {
		item, err := order.NewLineItem(
			fmt.Sprintf("li-%d", i+1),
			fmt.Sprintf("prod-%d", i+1),
			fmt.Sprintf("var-%d", i+1),
			fmt.Sprintf("Item %d", i+1),
			fmt.Sprintf("SKU-%d", i+1),
			quantity,
		)
		require.NoError(t, err)
		items = append(items, item)
	}

	o, err := order.NewOrder(kernel.NewUUID(), "shop-1001", "#1001", "Ada Lovelace", items)
	require.NoError(t, err)

	return o
}

// pickEverything drives the order through a full pick so packing can start.
func pickEverything(t *testing.T, o *order.Order) {
	t.Helper()

	for _, item := range o.LineItems() {
		_, err := o.PickItem(item.Ref(), item.Quantity(), "grace")
		require.NoError(t, err)
	}
	require.NoError(t, o.CompletePicking("grace"))
}

// packEverything drives a picked order to the point where packing can complete.
func packEverything(t *testing.T, o *order.Order) {
	t.Helper()

	require.NoError(t, o.StartPacking(kernel.NewUUID(), "mary"))
	for _, item := range o.LineItems() {
		_, err := o.PackItem(item.Ref(), item.Quantity(), "mary")
		require.NoError(t, err)
	}
}
