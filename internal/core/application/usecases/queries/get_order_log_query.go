package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetOrderLogQueryIsNotConstructed = errors.New(
		"GetOrderLogQuery must be created via NewGetOrderLogQuery constructor",
	)
)

// GetOrderLogQuery retrieves the audit trail of one order: every mutation
// recorded against it, oldest first.
type GetOrderLogQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderLogQuery creates a query for an order's audit log.
func NewGetOrderLogQuery(orderID kernel.UUID) (GetOrderLogQuery, error) {
	q := GetOrderLogQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setOrderID(orderID); err != nil {
		return GetOrderLogQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderLogQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderLogQueryIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (q GetOrderLogQuery) OrderID() kernel.UUID { return q.orderID }

func (q *GetOrderLogQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	q.orderID = orderID
	return nil
}

// GetOrderLogQueryResponse is one audit log entry.
type GetOrderLogQueryResponse struct {
	Kind    string
	ItemRef string
	Actor   string
	Message string
	At      time.Time
}
