package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDashboardStatsQuery_Valid(t *testing.T) {
	query := queries.NewGetDashboardStatsQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetDashboardStatsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetDashboardStatsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDashboardStatsQueryIsNotConstructed)
}
