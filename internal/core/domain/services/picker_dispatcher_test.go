package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/operator"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPicker(t *testing.T, name string, load int) *operator.Operator {
	t.Helper()
	op, err := operator.RestoreOperator(kernel.NewUUID(), name, operator.RolePicker, true, load)
	require.NoError(t, err)
	return op
}

func newImportedOrder(t *testing.T, quantities ...int) *order.Order {
	t.Helper()
	items := make([]*order.LineItem, 0, len(quantities))
	for i, qty := range quantities {
		li, err := order.NewLineItem(
			string(rune('a'+i))+"-item", "prod-1", "", "Oat Milk 1L", "", qty,
		)
		require.NoError(t, err)
		items = append(items, li)
	}
	o, err := order.NewOrder(kernel.NewUUID(), "shop-1001", "#1001", "Ada", items)
	require.NoError(t, err)
	return o
}

func TestDispatch(t *testing.T) {
	dispatcher := services.NewPickerDispatcher()

	t.Run("should pick the least busy picker and charge the order quantity", func(t *testing.T) {
		busy := newPicker(t, "Busy", 5)
		medium := newPicker(t, "Medium", 3)
		idle := newPicker(t, "Idle", 1)
		o := newImportedOrder(t, 2, 2)

		assigned, err := dispatcher.Dispatch(o, []*operator.Operator{busy, medium, idle})

		require.NoError(t, err)
		assert.Equal(t, "Idle", assigned.Name())
		assert.Equal(t, 5, assigned.LineItemsAssigned())
		require.NotNil(t, o.Picker())
		assert.True(t, o.Picker().IsEqual(idle.ID()))
	})

	t.Run("consecutive dispatches spread the load", func(t *testing.T) {
		first := newPicker(t, "First", 3)
		second := newPicker(t, "Second", 1)
		third := newPicker(t, "Third", 5)
		pickers := []*operator.Operator{first, second, third}

		assigned, err := dispatcher.Dispatch(newImportedOrder(t, 4), pickers)
		require.NoError(t, err)
		assert.Equal(t, "Second", assigned.Name())
		assert.Equal(t, 5, assigned.LineItemsAssigned())

		assigned, err = dispatcher.Dispatch(newImportedOrder(t, 1), pickers)
		require.NoError(t, err)
		assert.Equal(t, "First", assigned.Name())
	})

	t.Run("first lowest wins on ties", func(t *testing.T) {
		first := newPicker(t, "First", 2)
		second := newPicker(t, "Second", 2)

		assigned, err := dispatcher.Dispatch(newImportedOrder(t, 1), []*operator.Operator{first, second})
		require.NoError(t, err)
		assert.Equal(t, "First", assigned.Name())
	})

	t.Run("skips inactive pickers and other roles", func(t *testing.T) {
		inactive, err := operator.RestoreOperator(kernel.NewUUID(), "Off Shift", operator.RolePicker, false, 0)
		require.NoError(t, err)
		packer, err := operator.NewOperator(kernel.NewUUID(), "Packer", operator.RolePacker)
		require.NoError(t, err)
		picker := newPicker(t, "On Shift", 9)

		assigned, err := dispatcher.Dispatch(newImportedOrder(t, 1), []*operator.Operator{inactive, packer, picker})
		require.NoError(t, err)
		assert.Equal(t, "On Shift", assigned.Name())
	})

	t.Run("fails when no active picker exists", func(t *testing.T) {
		packer, err := operator.NewOperator(kernel.NewUUID(), "Packer", operator.RolePacker)
		require.NoError(t, err)

		_, err = dispatcher.Dispatch(newImportedOrder(t, 1), []*operator.Operator{packer})
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrPickerNotFound)
	})

	t.Run("fails with empty candidate list", func(t *testing.T) {
		_, err := dispatcher.Dispatch(newImportedOrder(t, 1), nil)
		assert.ErrorIs(t, err, services.ErrPickerNotFound)
	})
}
