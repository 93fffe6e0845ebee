package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/operator"
)

// OperatorRepository defines the persistence contract for warehouse staff.
type OperatorRepository interface {
	// Add persists a new operator.
	Add(ctx context.Context, aggregate *operator.Operator) error

	// Update persists changes to an existing operator.
	Update(ctx context.Context, aggregate *operator.Operator) error

	// Get retrieves an operator by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*operator.Operator, error)

	// GetAllActiveInRole retrieves every active operator with the given role.
	// The dispatcher feeds this list to the least-busy selection.
	GetAllActiveInRole(ctx context.Context, role operator.Role) ([]*operator.Operator, error)
}
