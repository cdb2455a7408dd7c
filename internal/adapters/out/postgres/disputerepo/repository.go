package disputerepo

import (
	"context"
	"errors"

	"courierhub/internal/core/domain/model/dispute"
	"courierhub/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDisputeRepository implements DisputeRepository using GORM.
type GormDisputeRepository struct {
	db *gorm.DB
}

// NewGormDisputeRepository creates a new GORM dispute repository.
func NewGormDisputeRepository(db *gorm.DB) *GormDisputeRepository {
	return &GormDisputeRepository{db: db}
}

// Add saves a new dispute to the database.
func (r *GormDisputeRepository) Add(ctx context.Context, aggregate *dispute.Dispute) error {
	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves changes to an existing dispute.
func (r *GormDisputeRepository) Update(ctx context.Context, aggregate *dispute.Dispute) error {
	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DisputeDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("dispute", dto.ID.String())
	}

	return nil
}

// Get retrieves a dispute by ID.
func (r *GormDisputeRepository) Get(ctx context.Context, id uuid.UUID) (*dispute.Dispute, error) {
	var dto DisputeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dispute", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrder retrieves the dispute opened over an order, if any.
func (r *GormDisputeRepository) GetByOrder(ctx context.Context, orderID uuid.UUID) (*dispute.Dispute, error) {
	var dto DisputeDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dispute", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
