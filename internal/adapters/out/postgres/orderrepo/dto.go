// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. The repository carries the engine's concurrency fences:
// status-guarded updates, the one-shot rating write and the auto-confirm
// listing all live here as conditional SQL.
package orderrepo

import (
	"time"

	"courierhub/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Monetary columns are numeric, never floats; the status and shop columns are
// indexed for the queue and listing queries.
type OrderDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ShopID    uuid.UUID  `gorm:"type:uuid;index"`
	ZoneID    uuid.UUID  `gorm:"type:uuid"`
	CourierID *uuid.UUID `gorm:"type:uuid;index"`

	OrderType string `gorm:"type:varchar(32)"`
	Status    string `gorm:"type:varchar(32);index"`

	BasePrice     decimal.Decimal `gorm:"type:numeric(10,2)"`
	ZoneAddon     decimal.Decimal `gorm:"type:numeric(10,2)"`
	RushHourAddon decimal.Decimal `gorm:"type:numeric(10,2)"`
	TotalPrice    decimal.Decimal `gorm:"type:numeric(10,2)"`

	Description      string `gorm:"type:text"`
	RecipientName    string
	RecipientPhone   string
	RecipientAddress string
	PickupAddress    string
	DeliveryTime     *time.Time
	IsFragile        bool
	IsBulky          bool
	SpecialReason    string

	CourierNotes    string `gorm:"type:text"`
	CourierRating   *int
	CourierFeedback string `gorm:"type:text"`

	CreatedAt       time.Time
	AcceptedAt      *time.Time
	DeliveredAt     *time.Time
	ConfirmedAt     *time.Time
	AutoconfirmedAt *time.Time
	UpdatedAt       time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	details := aggregate.Details()
	pricing := aggregate.Pricing()

	return OrderDTO{
		ID:        aggregate.ID(),
		ShopID:    aggregate.ShopID(),
		ZoneID:    aggregate.ZoneID(),
		CourierID: aggregate.CourierID(),

		OrderType: aggregate.Type().String(),
		Status:    aggregate.Status().String(),

		BasePrice:     pricing.Base,
		ZoneAddon:     pricing.ZoneAddon,
		RushHourAddon: pricing.RushHourAddon,
		TotalPrice:    pricing.Total,

		Description:      details.Description,
		RecipientName:    details.RecipientName,
		RecipientPhone:   details.RecipientPhone,
		RecipientAddress: details.RecipientAddress,
		PickupAddress:    details.PickupAddress,
		DeliveryTime:     details.DeliveryTime,
		IsFragile:        details.IsFragile,
		IsBulky:          details.IsBulky,
		SpecialReason:    details.SpecialReason,

		CourierNotes:    aggregate.CourierNotes(),
		CourierRating:   aggregate.CourierRating(),
		CourierFeedback: aggregate.CourierFeedback(),

		CreatedAt:       aggregate.CreatedAt(),
		AcceptedAt:      aggregate.AcceptedAt(),
		DeliveredAt:     aggregate.DeliveredAt(),
		ConfirmedAt:     aggregate.ConfirmedAt(),
		AutoconfirmedAt: aggregate.AutoconfirmedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, which re-validates the status and type columns.
func toDomain(dto OrderDTO) (*order.Order, error) {
	details := order.Details{
		Description:      dto.Description,
		RecipientName:    dto.RecipientName,
		RecipientPhone:   dto.RecipientPhone,
		RecipientAddress: dto.RecipientAddress,
		PickupAddress:    dto.PickupAddress,
		DeliveryTime:     dto.DeliveryTime,
		IsFragile:        dto.IsFragile,
		IsBulky:          dto.IsBulky,
		SpecialReason:    dto.SpecialReason,
	}

	pricing := order.Pricing{
		Base:          dto.BasePrice,
		ZoneAddon:     dto.ZoneAddon,
		RushHourAddon: dto.RushHourAddon,
		Total:         dto.TotalPrice,
	}

	return order.RestoreOrder(
		dto.ID, dto.ShopID, dto.ZoneID, dto.CourierID,
		order.Type(dto.OrderType), order.Status(dto.Status),
		pricing, details,
		dto.CourierNotes, dto.CourierRating, dto.CourierFeedback,
		dto.CreatedAt, dto.AcceptedAt, dto.DeliveredAt, dto.ConfirmedAt, dto.AutoconfirmedAt,
		dto.UpdatedAt,
	)
}
