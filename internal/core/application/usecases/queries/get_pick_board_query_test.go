package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPickBoardQuery_Valid(t *testing.T) {
	query, err := queries.NewGetPickBoardQuery(nil)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Nil(t, query.PickerID())
}

func TestNewGetPickBoardQuery_WithPickerFilter(t *testing.T) {
	pickerID := kernel.NewUUID()

	query, err := queries.NewGetPickBoardQuery(&pickerID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	require.NotNil(t, query.PickerID())
	assert.True(t, query.PickerID().IsEqual(pickerID))
}

func TestNewGetPickBoardQuery_InvalidPickerID(t *testing.T) {
	var pickerID kernel.UUID

	_, err := queries.NewGetPickBoardQuery(&pickerID)
	require.Error(t, err)
}

func TestGetPickBoardQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPickBoardQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPickBoardQueryIsNotConstructed)
}
