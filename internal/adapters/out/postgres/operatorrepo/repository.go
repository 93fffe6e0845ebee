package operatorrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/operator"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOperatorRepository implements OperatorRepository using GORM.
type GormOperatorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOperatorRepository creates a new GORM operator repository.
func NewGormOperatorRepository(db *gorm.DB, tracker aggregateTracker) *GormOperatorRepository {
	return &GormOperatorRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new operator to the database.
func (r *GormOperatorRepository) Add(ctx context.Context, aggregate *operator.Operator) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing operator to the database. Select("*") forces the
// write of zeroed columns so deactivation and load resets persist.
func (r *GormOperatorRepository) Update(ctx context.Context, aggregate *operator.Operator) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OperatorDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("operator", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an operator by ID.
func (r *GormOperatorRepository) Get(ctx context.Context, id kernel.UUID) (*operator.Operator, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OperatorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("operator", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActiveInRole retrieves all active operators holding the given role.
func (r *GormOperatorRepository) GetAllActiveInRole(ctx context.Context, role operator.Role) ([]*operator.Operator, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}

	var dtos []OperatorDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "role = ? AND active = ?", int(role), true).Error; err != nil {
		return nil, err
	}

	operators := make([]*operator.Operator, 0, len(dtos))
	for _, dto := range dtos {
		op, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		operators = append(operators, op)
	}

	return operators, nil
}
