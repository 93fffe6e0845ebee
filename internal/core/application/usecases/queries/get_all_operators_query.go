package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetAllOperatorsQueryIsNotConstructed = errors.New(
		"GetAllOperatorsQuery must be created via NewGetAllOperatorsQuery constructor",
	)
)

// GetAllOperatorsQuery retrieves the full staff roster for the admin screen,
// active and inactive alike.
type GetAllOperatorsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOperatorsQuery creates a query to retrieve all operators.
func NewGetAllOperatorsQuery() GetAllOperatorsQuery {
	return GetAllOperatorsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOperatorsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOperatorsQueryIsNotConstructed)
}

// GetAllOperatorsQueryResponse represents one operator in the roster.
type GetAllOperatorsQueryResponse struct {
	ID                kernel.UUID
	Name              string
	Role              string
	Active            bool
	LineItemsAssigned int
}
