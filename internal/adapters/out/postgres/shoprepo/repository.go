package shoprepo

import (
	"context"
	"errors"

	"courierhub/internal/core/domain/model/shop"
	"courierhub/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormShopRepository implements ShopRepository using GORM.
type GormShopRepository struct {
	db *gorm.DB
}

// NewGormShopRepository creates a new GORM shop repository.
func NewGormShopRepository(db *gorm.DB) *GormShopRepository {
	return &GormShopRepository{db: db}
}

// Add saves a new shop to the database.
func (r *GormShopRepository) Add(ctx context.Context, aggregate *shop.Shop) error {
	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a shop by ID.
func (r *GormShopRepository) Get(ctx context.Context, id uuid.UUID) (*shop.Shop, error) {
	var dto ShopDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shop", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
