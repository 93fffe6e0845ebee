package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItem(t *testing.T, quantity int) *order.LineItem {
	t.Helper()
	li, err := order.NewLineItem("item-1", "prod-1", "var-1", "Oat Milk 1L", "OAT-1L", quantity)
	require.NoError(t, err)
	return li
}

func TestNewLineItem(t *testing.T) {
	t.Run("should create valid line item", func(t *testing.T) {
		li, err := order.NewLineItem("item-1", "prod-1", "var-1", "Oat Milk 1L", "OAT-1L", 6)

		require.NoError(t, err)
		require.NoError(t, li.Validate())
		assert.Equal(t, "item-1", li.Ref())
		assert.Equal(t, 6, li.Quantity())
		assert.False(t, li.Picked())
		assert.False(t, li.Packed())
		assert.Empty(t, li.Flags())
	})

	t.Run("should fail without ref", func(t *testing.T) {
		_, err := order.NewLineItem("", "prod-1", "", "Oat Milk 1L", "", 6)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail without product", func(t *testing.T) {
		_, err := order.NewLineItem("item-1", "", "", "Oat Milk 1L", "", 6)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		for _, qty := range []int{0, -3} {
			_, err := order.NewLineItem("item-1", "prod-1", "", "Oat Milk 1L", "", qty)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should reject direct struct instantiation", func(t *testing.T) {
		var li order.LineItem
		assert.ErrorIs(t, li.Validate(), order.ErrLineItemIsNotConstructed)
	})
}

func TestLineItemPicking(t *testing.T) {
	t.Run("should accumulate verified units and flip picked at quantity", func(t *testing.T) {
		li := newTestItem(t, 5)

		applied, err := li.AddPickVerified(3)
		require.NoError(t, err)
		assert.Equal(t, 3, applied)
		assert.False(t, li.Picked())

		applied, err = li.AddPickVerified(2)
		require.NoError(t, err)
		assert.Equal(t, 2, applied)
		assert.True(t, li.Picked())
		assert.Equal(t, 5, li.PickState().Verified.Quantity)
	})

	t.Run("should clamp over-picks to the remaining capacity", func(t *testing.T) {
		li := newTestItem(t, 5)

		_, err := li.AddPickVerified(3)
		require.NoError(t, err)

		applied, err := li.AddPickVerified(10)
		require.NoError(t, err)
		assert.Equal(t, 2, applied)
		assert.Equal(t, 5, li.PickState().Verified.Quantity)
		assert.True(t, li.Picked())
	})

	t.Run("should no-op further picks once picked", func(t *testing.T) {
		li := newTestItem(t, 2)

		_, err := li.AddPickVerified(2)
		require.NoError(t, err)
		require.True(t, li.Picked())

		applied, err := li.AddPickVerified(1)
		require.NoError(t, err)
		assert.Equal(t, 0, applied)
		assert.Equal(t, 2, li.PickState().Verified.Quantity)
	})

	t.Run("should reject non-positive deltas", func(t *testing.T) {
		li := newTestItem(t, 5)

		_, err := li.AddPickVerified(0)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = li.RemovePickVerified(-1)
		require.Error(t, err)
	})

	t.Run("should unflip picked when units are removed", func(t *testing.T) {
		li := newTestItem(t, 4)

		_, err := li.AddPickVerified(4)
		require.NoError(t, err)
		require.True(t, li.Picked())

		applied, err := li.RemovePickVerified(1)
		require.NoError(t, err)
		assert.Equal(t, 1, applied)
		assert.False(t, li.Picked())
		assert.Equal(t, 3, li.PickState().Verified.Quantity)
	})

	t.Run("should floor removals at zero", func(t *testing.T) {
		li := newTestItem(t, 4)

		_, err := li.AddPickVerified(2)
		require.NoError(t, err)

		applied, err := li.RemovePickVerified(10)
		require.NoError(t, err)
		assert.Equal(t, 2, applied)
		assert.Equal(t, 0, li.PickState().Verified.Quantity)
	})
}

func TestLineItemExceptions(t *testing.T) {
	t.Run("exception units count toward picked total", func(t *testing.T) {
		li := newTestItem(t, 5)

		_, err := li.AddPickVerified(3)
		require.NoError(t, err)

		applied, err := li.FlagPickException(order.ReasonDamaged, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, applied)
		assert.False(t, li.Picked())

		applied, err = li.FlagPickException(order.ReasonOutOfStock, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, applied)
		assert.True(t, li.Picked())
		assert.Equal(t, 5, li.PickState().Total())
	})

	t.Run("exception units clamp against the ordered quantity", func(t *testing.T) {
		li := newTestItem(t, 3)

		_, err := li.AddPickVerified(2)
		require.NoError(t, err)

		applied, err := li.FlagPickException(order.ReasonDamaged, 5)
		require.NoError(t, err)
		assert.Equal(t, 1, applied)
		assert.Equal(t, 1, li.PickState().Damaged.Quantity)
	})

	t.Run("should reject invalid reasons", func(t *testing.T) {
		li := newTestItem(t, 3)

		_, err := li.FlagPickException(order.ReasonUnknown, 1)
		require.Error(t, err)
	})
}

func TestLineItemSubstitution(t *testing.T) {
	t.Run("substitution marks picked regardless of accounting", func(t *testing.T) {
		li := newTestItem(t, 5)

		sub, err := order.NewSubstitute("prod-9", "var-9")
		require.NoError(t, err)

		require.NoError(t, li.RecordSubstitution(order.ReasonOutOfStock, sub))
		assert.True(t, li.Picked())
		assert.True(t, li.Substituted())
		assert.Equal(t, 0, li.PickState().Total())
		require.NotNil(t, li.PickState().OutOfStock.Subbed)
		assert.Equal(t, "prod-9", li.PickState().OutOfStock.Subbed.ProductID)
	})

	t.Run("confirm returns the recorded substitute", func(t *testing.T) {
		li := newTestItem(t, 5)
		sub, err := order.NewSubstitute("prod-9", "")
		require.NoError(t, err)
		require.NoError(t, li.RecordSubstitution(order.ReasonDamaged, sub))

		confirmed, err := li.ConfirmSubstitution()
		require.NoError(t, err)
		assert.Equal(t, sub, confirmed)
		assert.True(t, li.SubstitutionConfirmed())
	})

	t.Run("confirm fails without a recorded substitution", func(t *testing.T) {
		li := newTestItem(t, 5)

		_, err := li.ConfirmSubstitution()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})

	t.Run("undo pick clears substitution state", func(t *testing.T) {
		li := newTestItem(t, 5)
		sub, err := order.NewSubstitute("prod-9", "")
		require.NoError(t, err)
		require.NoError(t, li.RecordSubstitution(order.ReasonDamaged, sub))

		li.UndoPick()
		assert.False(t, li.Picked())
		assert.False(t, li.Substituted())
		assert.Nil(t, li.PickState().Damaged.Subbed)
	})
}

func TestLineItemPacking(t *testing.T) {
	t.Run("packing state is independent of picking state", func(t *testing.T) {
		li := newTestItem(t, 4)

		_, err := li.AddPickVerified(4)
		require.NoError(t, err)
		require.True(t, li.Picked())
		assert.False(t, li.Packed())

		applied, err := li.AddPackVerified(4)
		require.NoError(t, err)
		assert.Equal(t, 4, applied)
		assert.True(t, li.Packed())
		assert.Equal(t, 4, li.PickState().Total())
		assert.Equal(t, 4, li.PackState().Total())
	})

	t.Run("undo pack leaves picking state intact", func(t *testing.T) {
		li := newTestItem(t, 4)
		_, err := li.AddPickVerified(4)
		require.NoError(t, err)
		_, err = li.AddPackVerified(4)
		require.NoError(t, err)

		li.UndoPack()
		assert.False(t, li.Packed())
		assert.True(t, li.Picked())
		assert.Equal(t, 0, li.PackState().Total())
	})

	t.Run("pack exceptions clamp like pick exceptions", func(t *testing.T) {
		li := newTestItem(t, 2)

		applied, err := li.FlagPackException(order.ReasonDamaged, 3)
		require.NoError(t, err)
		assert.Equal(t, 2, applied)
		assert.True(t, li.Packed())
	})
}

func TestLineItemRefund(t *testing.T) {
	t.Run("refund applies once and flags the item", func(t *testing.T) {
		li := newTestItem(t, 3)

		assert.True(t, li.Refund())
		assert.True(t, li.Refunded())
		assert.Equal(t, []string{order.FlagRefunded}, li.Flags())

		assert.False(t, li.Refund())
		assert.Equal(t, []string{order.FlagRefunded}, li.Flags())
	})

	t.Run("flags are unique", func(t *testing.T) {
		li := newTestItem(t, 3)

		assert.True(t, li.AddFlag("Fragile"))
		assert.False(t, li.AddFlag("Fragile"))
		assert.True(t, li.AddFlag("Cold Chain"))
		assert.Equal(t, []string{"Fragile", "Cold Chain"}, li.Flags())
	})
}

func TestRestoreLineItem(t *testing.T) {
	t.Run("should restore full state", func(t *testing.T) {
		pick := order.ItemState{Verified: order.Bucket{Quantity: 2}, Damaged: order.Bucket{Quantity: 1}}
		pack := order.ItemState{Verified: order.Bucket{Quantity: 3}}

		li, err := order.RestoreLineItem(
			"item-1", "prod-1", "var-1", "Oat Milk 1L", "OAT-1L", 3,
			pick, pack,
			true, true,
			[]string{order.FlagRefunded},
			true, false, false, true,
			"leave at door", "no plastic",
		)

		require.NoError(t, err)
		require.NoError(t, li.Validate())
		assert.True(t, li.Picked())
		assert.True(t, li.Packed())
		assert.True(t, li.Refunded())
		assert.True(t, li.Approved())
		assert.Equal(t, 3, li.PickState().Total())
		assert.Equal(t, "leave at door", li.AdminNote())
		assert.Equal(t, "no plastic", li.CustomerNote())
	})
}
