package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/tote"
)

// ToteRepository defines the persistence contract for totes.
type ToteRepository interface {
	// Add persists a new tote.
	Add(ctx context.Context, aggregate *tote.Tote) error

	// Update persists changes to an existing tote.
	Update(ctx context.Context, aggregate *tote.Tote) error

	// Get retrieves a tote by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*tote.Tote, error)

	// GetByBarcode retrieves a tote by its scanned label.
	GetByBarcode(ctx context.Context, barcode string) (*tote.Tote, error)

	// GetAllForOrder retrieves the totes currently assigned to an order.
	// Used by pack completion to release them in one transaction.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*tote.Tote, error)
}
