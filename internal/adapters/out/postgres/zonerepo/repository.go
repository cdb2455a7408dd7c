package zonerepo

import (
	"context"
	"errors"

	"courierhub/internal/core/domain/model/zone"
	"courierhub/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormZoneRepository implements ZoneRepository using GORM.
type GormZoneRepository struct {
	db *gorm.DB
}

// NewGormZoneRepository creates a new GORM zone repository.
func NewGormZoneRepository(db *gorm.DB) *GormZoneRepository {
	return &GormZoneRepository{db: db}
}

// Add saves a new zone to the database.
func (r *GormZoneRepository) Add(ctx context.Context, aggregate *zone.Zone) error {
	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a zone by ID.
func (r *GormZoneRepository) Get(ctx context.Context, id uuid.UUID) (*zone.Zone, error) {
	var dto ZoneDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("zone", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every zone, ordered by name.
func (r *GormZoneRepository) GetAll(ctx context.Context) ([]*zone.Zone, error) {
	var dtos []ZoneDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	zones := make([]*zone.Zone, 0, len(dtos))
	for _, dto := range dtos {
		z, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}

	return zones, nil
}
