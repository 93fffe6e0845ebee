package services

import (
	"errors"

	"fulfillment/internal/core/domain/model/operator"
	"fulfillment/internal/core/domain/model/order"
)

// ErrPickerNotFound is returned when no active picker is available for order
// dispatch. This occurs when either no operators are provided or none of the
// provided operators is an active picker.
var ErrPickerNotFound = errors.New("picker not found")

// PickerDispatcher is a domain service responsible for assigning a newly
// imported order to the least busy picker.
//
// Key responsibilities:
//   - Validating orders before dispatch
//   - Selecting the active picker with the lowest workload counter
//   - Charging the order's total quantity to the selected picker
//
// Business rules:
//   - Only active operators with the picker role are candidates
//   - Workload is measured by the running line-items-assigned counter
//   - Ties are broken by candidate order; the first lowest wins
//   - The picker's counter grows by the sum of the order's quantities
type PickerDispatcher struct{}

// NewPickerDispatcher creates a new PickerDispatcher instance.
func NewPickerDispatcher() PickerDispatcher {
	return PickerDispatcher{}
}

// Dispatch finds the least busy active picker and assigns the order to them.
//
// Parameters:
//   - o: The order to be dispatched (must be valid)
//   - operators: Candidate operators; non-pickers and inactive ones are skipped
//
// Returns:
//   - *operator.Operator: The picker assigned to the order
//   - error: ErrPickerNotFound if no active picker exists, or validation errors
func (d PickerDispatcher) Dispatch(o *order.Order, operators []*operator.Operator) (*operator.Operator, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	best, err := d.findLeastBusyPicker(operators)
	if err != nil {
		return nil, err
	}

	if err = best.AddLoad(o.TotalQuantity()); err != nil {
		return nil, err
	}

	if err = o.AssignPicker(best.ID(), order.SystemActor); err != nil {
		return nil, err
	}

	return best, nil
}

// findLeastBusyPicker scans the candidates for the active picker with the
// lowest workload counter. The first lowest wins on ties, so the caller's
// ordering is the tie-break.
func (d PickerDispatcher) findLeastBusyPicker(operators []*operator.Operator) (*operator.Operator, error) {
	var best *operator.Operator

	for _, op := range operators {
		if err := op.Validate(); err != nil {
			return nil, err
		}

		if op.Role() != operator.RolePicker || !op.Active() {
			continue
		}

		if best == nil || op.LineItemsAssigned() < best.LineItemsAssigned() {
			best = op
		}
	}

	if best == nil {
		return nil, ErrPickerNotFound
	}

	return best, nil
}
