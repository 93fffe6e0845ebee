package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/operator"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetNotificationsQueryIsNotConstructed = errors.New(
		"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
	)
)

// GetNotificationsQuery retrieves the notification feed for one role:
// every recorded notification addressed to that role, newest first.
type GetNotificationsQuery struct { //nolint:recvcheck //using for validation
	role operator.Role

	guard guard.ConstructorGuard
}

// NewGetNotificationsQuery creates a query for a role's notification feed.
func NewGetNotificationsQuery(role string) (GetNotificationsQuery, error) {
	q := GetNotificationsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setRole(role); err != nil {
		return GetNotificationsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

// Role returns the role the feed is filtered for.
func (q GetNotificationsQuery) Role() operator.Role { return q.role }

func (q *GetNotificationsQuery) setRole(raw string) error {
	role, err := operator.RoleFromString(raw)
	if err != nil {
		return err
	}
	q.role = role
	return nil
}

// GetNotificationsQueryResponse is one recorded notification.
type GetNotificationsQueryResponse struct {
	ID          kernel.UUID
	Kind        string
	Message     string
	OrderNumber string
	ProductID   string
	VariantID   string
	CreatedAt   time.Time
}
