package operator_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/operator"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOperator(t *testing.T) {
	t.Run("should create active operator with zero load", func(t *testing.T) {
		op, err := operator.NewOperator(kernel.NewUUID(), "Grace", operator.RolePicker)

		require.NoError(t, err)
		require.NoError(t, op.Validate())
		assert.Equal(t, "Grace", op.Name())
		assert.Equal(t, operator.RolePicker, op.Role())
		assert.True(t, op.Active())
		assert.Equal(t, 0, op.LineItemsAssigned())
	})

	t.Run("should fail without name", func(t *testing.T) {
		_, err := operator.NewOperator(kernel.NewUUID(), "", operator.RolePicker)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with invalid role", func(t *testing.T) {
		_, err := operator.NewOperator(kernel.NewUUID(), "Grace", operator.RoleUnknown)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOperatorLoad(t *testing.T) {
	t.Run("load accumulates and resets", func(t *testing.T) {
		op, err := operator.NewOperator(kernel.NewUUID(), "Grace", operator.RolePicker)
		require.NoError(t, err)

		require.NoError(t, op.AddLoad(5))
		require.NoError(t, op.AddLoad(3))
		assert.Equal(t, 8, op.LineItemsAssigned())

		op.ResetLoad()
		assert.Equal(t, 0, op.LineItemsAssigned())
	})

	t.Run("rejects non-positive load", func(t *testing.T) {
		op, err := operator.NewOperator(kernel.NewUUID(), "Grace", operator.RolePicker)
		require.NoError(t, err)

		require.Error(t, op.AddLoad(0))
		require.Error(t, op.AddLoad(-2))
	})
}

func TestOperatorActivation(t *testing.T) {
	op, err := operator.NewOperator(kernel.NewUUID(), "Grace", operator.RolePacker)
	require.NoError(t, err)

	op.Deactivate()
	assert.False(t, op.Active())

	op.Activate()
	assert.True(t, op.Active())
}

func TestRoleParsing(t *testing.T) {
	t.Run("round trips stored strings", func(t *testing.T) {
		for _, raw := range []string{"picker", "packer", "admin"} {
			r, err := operator.RoleFromString(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, r.String())
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		_, err := operator.RoleFromString("driver")
		require.Error(t, err)
	})
}

func TestRestoreOperator(t *testing.T) {
	op, err := operator.RestoreOperator(kernel.NewUUID(), "Grace", operator.RolePicker, false, 12)

	require.NoError(t, err)
	assert.False(t, op.Active())
	assert.Equal(t, 12, op.LineItemsAssigned())
}
