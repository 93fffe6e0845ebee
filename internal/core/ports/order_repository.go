package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Updates use optimistic concurrency: the stored version must match the
// aggregate's version or the write fails with a version conflict.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Fails with a version conflict error when another writer got there
	// first; callers should re-read and retry the mutation.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByExternalRef retrieves an order by the commerce platform's order ID.
	// Used by the import flow to keep ingestion idempotent.
	GetByExternalRef(ctx context.Context, externalRef string) (*order.Order, error)

	// GetAllInStatus retrieves all orders in the given lifecycle state,
	// oldest first. Used by the board queries and the delivery sync job.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
