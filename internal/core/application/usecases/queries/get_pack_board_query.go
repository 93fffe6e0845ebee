package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetPackBoardQueryIsNotConstructed = errors.New(
		"GetPackBoardQuery must be created via NewGetPackBoardQuery constructor",
	)
)

// GetPackBoardQuery retrieves the orders on the pack bench: everything in
// picked or packing status.
type GetPackBoardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPackBoardQuery creates a query for the pack board.
func NewGetPackBoardQuery() GetPackBoardQuery {
	return GetPackBoardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPackBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetPackBoardQueryIsNotConstructed)
}
