package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id uuid.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByShop retrieves a shop's orders, newest first.
func (r *GormOrderRepository) GetByShop(ctx context.Context, shopID uuid.UUID) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetFirstUnassignedSpecial retrieves the oldest special order still waiting
// for a courier. Used by the automatic assignment sweep.
func (r *GormOrderRepository) GetFirstUnassignedSpecial(ctx context.Context) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND order_type = ?", order.Created.String(), order.TypeSpecial.String()).
		Order("created_at").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", "first unassigned special")
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateInStatus saves the aggregate only while the stored row is still in
// the expected status. Zero affected rows means a concurrent writer moved
// the order first and surfaces as an InvalidStateError.
func (r *GormOrderRepository) UpdateInStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, expected.String()).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewInvalidStateError(
			fmt.Sprintf("order %s is no longer in %s status", dto.ID, expected))
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// SetRating writes the one-time courier rating. The WHERE clause repeats the
// aggregate's guards, so of two concurrent raters exactly one row wins.
func (r *GormOrderRepository) SetRating(ctx context.Context, orderID uuid.UUID, rating int, feedback string) error {
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND courier_rating IS NULL AND status IN ?",
			orderID, []string{order.Completed.String(), order.Disputed.String()}).
		Updates(map[string]any{
			"courier_rating":   rating,
			"courier_feedback": feedback,
			"updated_at":       time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewInvalidStateError(
			fmt.Sprintf("order %s cannot be rated", orderID))
	}

	return nil
}

// ListAutoConfirmable retrieves orders the confirmation sweep should
// complete: delivered before the cutoff with neither confirmation stamp set.
func (r *GormOrderRepository) ListAutoConfirmable(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND delivered_at <= ? AND confirmed_at IS NULL AND autoconfirmed_at IS NULL",
			order.Delivered.String(), cutoff).
		Order("delivered_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
