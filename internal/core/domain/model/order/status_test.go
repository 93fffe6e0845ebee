package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusString(t *testing.T) {
	tests := []struct {
		status   order.Status
		expected string
	}{
		{order.New, "new"},
		{order.Picking, "picking"},
		{order.Picked, "picked"},
		{order.Packing, "packing"},
		{order.Packed, "packed"},
		{order.Delivered, "delivered"},
		{order.Unknown, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.String())
		})
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse all valid statuses", func(t *testing.T) {
		for _, raw := range []string{"new", "picking", "picked", "packing", "packed", "delivered"} {
			s, err := order.StatusFromString(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, s.String())
		}
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		_, err := order.StatusFromString("shipped")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status is invalid")
	})

	t.Run("should reject the unknown status string", func(t *testing.T) {
		_, err := order.StatusFromString("unknown")
		require.Error(t, err)
	})
}

func TestStatusRatchets(t *testing.T) {
	t.Run("picking ratchet moves new forward only", func(t *testing.T) {
		assert.Equal(t, order.Picking, order.New.RatchetPicking())
		assert.Equal(t, order.Picking, order.Picking.RatchetPicking())
		assert.Equal(t, order.Picked, order.Picked.RatchetPicking())
		assert.Equal(t, order.Packed, order.Packed.RatchetPicking())
	})

	t.Run("packing ratchet moves picked forward only", func(t *testing.T) {
		assert.Equal(t, order.Packing, order.Picked.RatchetPacking())
		assert.Equal(t, order.Packing, order.Packing.RatchetPacking())
		assert.Equal(t, order.New, order.New.RatchetPacking())
		assert.Equal(t, order.Delivered, order.Delivered.RatchetPacking())
	})
}

func TestStatusTransitions(t *testing.T) {
	t.Run("complete picking from new and picking", func(t *testing.T) {
		for _, from := range []order.Status{order.New, order.Picking} {
			next, err := from.CompletePicking()
			require.NoError(t, err)
			assert.Equal(t, order.Picked, next)
		}
	})

	t.Run("complete picking rejected from later states", func(t *testing.T) {
		for _, from := range []order.Status{order.Picked, order.Packing, order.Packed, order.Delivered} {
			_, err := from.CompletePicking()
			require.Error(t, err)
		}
	})

	t.Run("start packing allowed from picked and packing", func(t *testing.T) {
		for _, from := range []order.Status{order.Picked, order.Packing} {
			next, err := from.StartPacking()
			require.NoError(t, err)
			assert.Equal(t, order.Packing, next)
		}
	})

	t.Run("start packing rejected before picking is done", func(t *testing.T) {
		for _, from := range []order.Status{order.New, order.Picking, order.Packed, order.Delivered} {
			_, err := from.StartPacking()
			require.Error(t, err)
		}
	})

	t.Run("complete packing allowed from picked and packing", func(t *testing.T) {
		for _, from := range []order.Status{order.Picked, order.Packing} {
			next, err := from.CompletePacking()
			require.NoError(t, err)
			assert.Equal(t, order.Packed, next)
		}
	})

	t.Run("deliver only from packed", func(t *testing.T) {
		next, err := order.Packed.Deliver()
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, next)

		for _, from := range []order.Status{order.New, order.Picking, order.Picked, order.Packing, order.Delivered} {
			_, err := from.Deliver()
			require.Error(t, err)
		}
	})
}

func TestExceptionReason(t *testing.T) {
	t.Run("should parse the two known reasons", func(t *testing.T) {
		damaged, err := order.ParseExceptionReason("Damaged")
		require.NoError(t, err)
		assert.Equal(t, order.ReasonDamaged, damaged)

		oos, err := order.ParseExceptionReason("Out Of Stock")
		require.NoError(t, err)
		assert.Equal(t, order.ReasonOutOfStock, oos)
	})

	t.Run("should reject anything else", func(t *testing.T) {
		for _, raw := range []string{"", "damaged", "Missing", "out of stock"} {
			_, err := order.ParseExceptionReason(raw)
			require.Error(t, err, raw)
		}
	})
}
