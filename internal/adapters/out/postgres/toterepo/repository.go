package toterepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/tote"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormToteRepository implements ToteRepository using GORM.
type GormToteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormToteRepository creates a new GORM tote repository.
func NewGormToteRepository(db *gorm.DB, tracker aggregateTracker) *GormToteRepository {
	return &GormToteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new tote to the database.
func (r *GormToteRepository) Add(ctx context.Context, aggregate *tote.Tote) error {
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

// Update saves an existing tote to the database. Select("*") forces the
// write of zeroed columns so releasing a tote clears its order reference.
func (r *GormToteRepository) Update(ctx context.Context, aggregate *tote.Tote) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ToteDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("tote", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a tote by ID.
func (r *GormToteRepository) Get(ctx context.Context, id kernel.UUID) (*tote.Tote, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ToteDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tote", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByBarcode retrieves a tote by its printed barcode.
func (r *GormToteRepository) GetByBarcode(ctx context.Context, barcode string) (*tote.Tote, error) {
	if barcode == "" {
		return nil, errs.NewValueIsRequiredError("barcode")
	}

	var dto ToteDTO
	if err := r.db.WithContext(ctx).First(&dto, "barcode = ?", barcode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tote", barcode)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllForOrder retrieves all totes currently referencing the given order.
func (r *GormToteRepository) GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*tote.Tote, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ToteDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, err
	}

	totes := make([]*tote.Tote, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		totes = append(totes, t)
	}

	return totes, nil
}
