package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetSubstitutionCandidatesQuery_Valid(t *testing.T) {
	query, err := queries.NewGetSubstitutionCandidatesQuery("prod-1", "var-1")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "prod-1", query.ProductID())
	assert.Equal(t, "var-1", query.VariantID())
}

func TestNewGetSubstitutionCandidatesQuery_EmptyVariantIsAllowed(t *testing.T) {
	query, err := queries.NewGetSubstitutionCandidatesQuery("prod-1", "")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Empty(t, query.VariantID())
}

func TestNewGetSubstitutionCandidatesQuery_EmptyProductID(t *testing.T) {
	_, err := queries.NewGetSubstitutionCandidatesQuery("", "var-1")
	require.Error(t, err)
}

func TestGetSubstitutionCandidatesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetSubstitutionCandidatesQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetSubstitutionCandidatesQueryIsNotConstructed)
}
