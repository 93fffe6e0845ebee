package subrulerepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/subrule"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSubstitutionRuleRepository implements SubstitutionRuleRepository using GORM.
type GormSubstitutionRuleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSubstitutionRuleRepository creates a new GORM substitution rule repository.
func NewGormSubstitutionRuleRepository(db *gorm.DB, tracker aggregateTracker) *GormSubstitutionRuleRepository {
	return &GormSubstitutionRuleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new rule to the database.
func (r *GormSubstitutionRuleRepository) Add(ctx context.Context, aggregate *subrule.Rule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing rule to the database.
func (r *GormSubstitutionRuleRepository) Update(ctx context.Context, aggregate *subrule.Rule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&RuleDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("substitutionRule", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a rule from the database.
func (r *GormSubstitutionRuleRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&RuleDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("substitutionRule", id.String())
	}

	return nil
}

// Get retrieves a rule by ID.
func (r *GormSubstitutionRuleRepository) Get(ctx context.Context, id kernel.UUID) (*subrule.Rule, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RuleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("substitutionRule", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForProduct retrieves the rules applying to the given product. Variant
// scoped rules match only their variant; rules with an empty variant apply to
// every variant of the product.
func (r *GormSubstitutionRuleRepository) GetForProduct(
	ctx context.Context,
	productID, variantID string,
) ([]*subrule.Rule, error) {
	if productID == "" {
		return nil, errs.NewValueIsRequiredError("productId")
	}

	var dtos []RuleDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "product_id = ? AND (variant_id = ? OR variant_id = '')", productID, variantID).
		Error
	if err != nil {
		return nil, err
	}

	rules := make([]*subrule.Rule, 0, len(dtos))
	for _, dto := range dtos {
		rule, ruleErr := toDomain(dto)
		if ruleErr != nil {
			return nil, ruleErr
		}
		rules = append(rules, rule)
	}

	return rules, nil
}
