// Package courierrepo provides data transfer objects and mapping functions
// for courier persistence. The couriers table carries a check constraint on
// the load counter and the slot operations are conditional increments, so
// the counter stays within bounds no matter how assignments interleave.
package courierrepo

import (
	"courierhub/internal/core/domain/model/courier"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting couriers.
type CourierDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Name          string
	IsActive      bool
	CurrentOrders int `gorm:"check:chk_courier_load,current_orders >= 0 AND current_orders <= max_orders"`
	MaxOrders     int
}

// TableName specifies the database table name for courier entities.
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:            aggregate.ID(),
		UserID:        aggregate.UserID(),
		Name:          aggregate.Name(),
		IsActive:      aggregate.IsActive(),
		CurrentOrders: aggregate.CurrentOrders(),
		MaxOrders:     aggregate.MaxOrders(),
	}
}

// toDomain converts a database DTO to a courier domain aggregate.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	return courier.RestoreCourier(
		dto.ID, dto.UserID, dto.Name,
		dto.IsActive, dto.CurrentOrders, dto.MaxOrders,
	)
}
