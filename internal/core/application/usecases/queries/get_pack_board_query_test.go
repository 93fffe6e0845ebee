package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPackBoardQuery_Valid(t *testing.T) {
	query := queries.NewGetPackBoardQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetPackBoardQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPackBoardQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPackBoardQueryIsNotConstructed)
}
