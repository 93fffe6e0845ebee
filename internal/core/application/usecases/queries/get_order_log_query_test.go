package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderLogQuery_Valid(t *testing.T) {
	orderID := kernel.NewUUID()

	query, err := queries.NewGetOrderLogQuery(orderID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.OrderID().IsEqual(orderID))
}

func TestNewGetOrderLogQuery_InvalidOrderID(t *testing.T) {
	_, err := queries.NewGetOrderLogQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetOrderLogQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderLogQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderLogQueryIsNotConstructed)
}
