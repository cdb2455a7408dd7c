package courierrepo

import (
	"context"
	"errors"

	"courierhub/internal/core/domain/model/courier"
	"courierhub/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCourierRepository implements CourierRepository using GORM.
type GormCourierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id uuid.UUID, aggregate any)
}

// NewGormCourierRepository creates a new GORM courier repository.
func NewGormCourierRepository(db *gorm.DB, tracker aggregateTracker) *GormCourierRepository {
	return &GormCourierRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new courier to the database.
func (r *GormCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
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

// Update saves the courier's profile fields. The load counter is deliberately
// not written here; it only moves through AcquireSlot and ReleaseSlot.
func (r *GormCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CourierDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "is_active", "max_orders").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("courier", dto.ID.String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a courier by ID.
func (r *GormCourierRepository) Get(ctx context.Context, id uuid.UUID) (*courier.Courier, error) {
	var dto CourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAvailable retrieves couriers that are on shift with a free slot,
// ordered by id so selection ties break the same way on every run.
func (r *GormCourierRepository) GetAllAvailable(ctx context.Context) ([]*courier.Courier, error) {
	var dtos []CourierDTO
	err := r.db.WithContext(ctx).
		Where("is_active AND current_orders < max_orders").
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAll retrieves every registered courier.
func (r *GormCourierRepository) GetAll(ctx context.Context) ([]*courier.Courier, error) {
	var dtos []CourierDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// AcquireSlot atomically increments the courier's load while the courier is
// active and below capacity. Zero affected rows surfaces as a
// CapacityExceededError; there is no read-modify-write window.
func (r *GormCourierRepository) AcquireSlot(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&CourierDTO{}).
		Where("id = ? AND is_active AND current_orders < max_orders", id).
		Update("current_orders", gorm.Expr("current_orders + 1"))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewCapacityExceededError(id)
	}

	return nil
}

// ReleaseSlot atomically decrements the courier's load, guarded against
// going below zero. Releasing an already-free courier is a no-op, which
// keeps terminal transitions idempotent.
func (r *GormCourierRepository) ReleaseSlot(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&CourierDTO{}).
		Where("id = ? AND current_orders > 0", id).
		Update("current_orders", gorm.Expr("current_orders - 1")).Error
}

func toDomainSlice(dtos []CourierDTO) ([]*courier.Courier, error) {
	couriers := make([]*courier.Courier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}

	return couriers, nil
}
