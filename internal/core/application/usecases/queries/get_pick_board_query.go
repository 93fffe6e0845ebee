package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetPickBoardQueryIsNotConstructed = errors.New(
		"GetPickBoardQuery must be created via NewGetPickBoardQuery constructor",
	)
)

// GetPickBoardQuery retrieves the orders waiting on the pick floor: every
// order in new or picking status, optionally narrowed to one picker's
// assignments.
//
// Example:
//
//	query, err := NewGetPickBoardQuery(&pickerID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetPickBoardQueryHandler(db)
//	board, err := handler.Handle(ctx, query)
type GetPickBoardQuery struct { //nolint:recvcheck //using for validation
	pickerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPickBoardQuery creates a query for the pick board. A nil pickerID
// returns the whole floor.
func NewGetPickBoardQuery(pickerID *kernel.UUID) (GetPickBoardQuery, error) {
	q := GetPickBoardQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setPickerID(pickerID); err != nil {
		return GetPickBoardQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPickBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetPickBoardQueryIsNotConstructed)
}

// PickerID returns the optional picker filter.
func (q GetPickBoardQuery) PickerID() *kernel.UUID { return q.pickerID }

func (q *GetPickBoardQuery) setPickerID(pickerID *kernel.UUID) error {
	if pickerID != nil {
		if err := pickerID.Validate(); err != nil {
			return err
		}
	}
	q.pickerID = pickerID
	return nil
}
