package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/subrule"
)

// SubstitutionRuleRepository defines the persistence contract for the
// substitution rule reference data.
type SubstitutionRuleRepository interface {
	// Add persists a new rule.
	Add(ctx context.Context, aggregate *subrule.Rule) error

	// Update persists changes to an existing rule.
	Update(ctx context.Context, aggregate *subrule.Rule) error

	// Delete removes a rule.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a rule by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*subrule.Rule, error)

	// GetForProduct retrieves the rules applying to a product/variant pair,
	// variant-scoped rules first.
	GetForProduct(ctx context.Context, productID, variantID string) ([]*subrule.Rule, error)
}
