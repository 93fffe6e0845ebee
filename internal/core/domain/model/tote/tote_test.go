package tote_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/tote"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTote(t *testing.T) {
	t.Run("should create available tote", func(t *testing.T) {
		tt, err := tote.NewTote(kernel.NewUUID(), "TOTE-0042")

		require.NoError(t, err)
		require.NoError(t, tt.Validate())
		assert.Equal(t, tote.StatusAvailable, tt.Status())
		assert.Equal(t, "TOTE-0042", tt.Barcode())
		assert.Nil(t, tt.OrderID())
	})

	t.Run("should fail without barcode", func(t *testing.T) {
		_, err := tote.NewTote(kernel.NewUUID(), "")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject direct struct instantiation", func(t *testing.T) {
		var tt tote.Tote
		assert.ErrorIs(t, tt.Validate(), tote.ErrToteIsNotConstructed)
	})
}

func TestToteAssignment(t *testing.T) {
	t.Run("available tote can be assigned", func(t *testing.T) {
		tt, err := tote.NewTote(kernel.NewUUID(), "TOTE-0042")
		require.NoError(t, err)
		orderID := kernel.NewUUID()

		require.NoError(t, tt.Assign(orderID))
		assert.Equal(t, tote.StatusAssigned, tt.Status())
		require.NotNil(t, tt.OrderID())
		assert.True(t, tt.OrderID().IsEqual(orderID))
	})

	t.Run("assigned tote cannot be assigned again", func(t *testing.T) {
		tt, err := tote.NewTote(kernel.NewUUID(), "TOTE-0042")
		require.NoError(t, err)
		require.NoError(t, tt.Assign(kernel.NewUUID()))

		err = tt.Assign(kernel.NewUUID())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
		assert.Contains(t, err.Error(), "TOTE-0042")
	})

	t.Run("release returns the tote to the rack", func(t *testing.T) {
		tt, err := tote.NewTote(kernel.NewUUID(), "TOTE-0042")
		require.NoError(t, err)
		require.NoError(t, tt.Assign(kernel.NewUUID()))

		tt.Release()
		assert.Equal(t, tote.StatusAvailable, tt.Status())
		assert.Nil(t, tt.OrderID())

		// releasing again is a no-op
		tt.Release()
		assert.Equal(t, tote.StatusAvailable, tt.Status())
	})

	t.Run("assigned tote moves to packing", func(t *testing.T) {
		tt, err := tote.NewTote(kernel.NewUUID(), "TOTE-0042")
		require.NoError(t, err)
		require.NoError(t, tt.Assign(kernel.NewUUID()))

		require.NoError(t, tt.MarkInPacking())
		assert.Equal(t, tote.StatusInPacking, tt.Status())
	})

	t.Run("available tote cannot move to packing", func(t *testing.T) {
		tt, err := tote.NewTote(kernel.NewUUID(), "TOTE-0042")
		require.NoError(t, err)

		require.Error(t, tt.MarkInPacking())
	})
}

func TestToteStatusParsing(t *testing.T) {
	t.Run("round trips stored strings", func(t *testing.T) {
		for _, raw := range []string{"available", "assigned", "in_packing"} {
			s, err := tote.StatusFromString(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, s.String())
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		_, err := tote.StatusFromString("lost")
		require.Error(t, err)
	})
}

func TestRestoreTote(t *testing.T) {
	t.Run("restores assigned state", func(t *testing.T) {
		orderID := kernel.NewUUID()
		tt, err := tote.RestoreTote(kernel.NewUUID(), "TOTE-0042", tote.StatusAssigned, &orderID)

		require.NoError(t, err)
		assert.Equal(t, tote.StatusAssigned, tt.Status())
		assert.True(t, tt.OrderID().IsEqual(orderID))
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := tote.RestoreTote(kernel.NewUUID(), "TOTE-0042", tote.StatusUnknown, nil)
		require.Error(t, err)
	})
}
