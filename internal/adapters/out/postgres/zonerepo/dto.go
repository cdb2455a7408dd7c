// Package zonerepo provides data transfer objects and mapping functions for
// the zone pricing table.
package zonerepo

import (
	"courierhub/internal/core/domain/model/zone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ZoneDTO represents the database structure for persisting zones.
type ZoneDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"uniqueIndex"`
	RadiusKm  int
	BasePrice decimal.Decimal `gorm:"type:numeric(10,2)"`
}

// TableName specifies the database table name for zone entities.
func (ZoneDTO) TableName() string {
	return "zones"
}

func fromDomain(aggregate *zone.Zone) ZoneDTO {
	return ZoneDTO{
		ID:        aggregate.ID(),
		Name:      aggregate.Name(),
		RadiusKm:  aggregate.RadiusKm(),
		BasePrice: aggregate.BasePrice(),
	}
}

func toDomain(dto ZoneDTO) (*zone.Zone, error) {
	return zone.NewZone(dto.ID, dto.Name, dto.RadiusKm, dto.BasePrice)
}
