// Package disputerepo provides data transfer objects and mapping functions
// for the dispute ledger.
package disputerepo

import (
	"time"

	"courierhub/internal/core/domain/model/dispute"

	"github.com/google/uuid"
)

// DisputeDTO represents the database structure for persisting disputes. The
// unique index on OrderID makes a second dispute over the same order fail at
// the storage layer.
type DisputeDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	ShopID        uuid.UUID `gorm:"type:uuid;index"`
	CourierID     uuid.UUID `gorm:"type:uuid;index"`
	Description   string    `gorm:"type:text"`
	CreatedByRole string    `gorm:"type:varchar(16)"`
	Status        string    `gorm:"type:varchar(16);index"`
	Resolution    string    `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the database table name for dispute entities.
func (DisputeDTO) TableName() string {
	return "disputes"
}

func fromDomain(aggregate *dispute.Dispute) DisputeDTO {
	return DisputeDTO{
		ID:            aggregate.ID(),
		OrderID:       aggregate.OrderID(),
		ShopID:        aggregate.ShopID(),
		CourierID:     aggregate.CourierID(),
		Description:   aggregate.Description(),
		CreatedByRole: string(aggregate.CreatedByRole()),
		Status:        string(aggregate.Status()),
		Resolution:    aggregate.Resolution(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
}

func toDomain(dto DisputeDTO) (*dispute.Dispute, error) {
	return dispute.RestoreDispute(
		dto.ID, dto.OrderID, dto.ShopID, dto.CourierID,
		dto.Description, dispute.Role(dto.CreatedByRole), dispute.Status(dto.Status),
		dto.Resolution, dto.CreatedAt, dto.UpdatedAt,
	)
}
