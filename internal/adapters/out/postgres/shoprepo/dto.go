// Package shoprepo provides data transfer objects and mapping functions for
// the shop directory.
package shoprepo

import (
	"courierhub/internal/core/domain/model/shop"

	"github.com/google/uuid"
)

// ShopDTO represents the database structure for persisting shops.
type ShopDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string
	TelegramChatID int64 `gorm:"uniqueIndex"`
}

// TableName specifies the database table name for shop entities.
func (ShopDTO) TableName() string {
	return "shops"
}

func fromDomain(aggregate *shop.Shop) ShopDTO {
	return ShopDTO{
		ID:             aggregate.ID(),
		Name:           aggregate.Name(),
		TelegramChatID: aggregate.TelegramChatID(),
	}
}

func toDomain(dto ShopDTO) (*shop.Shop, error) {
	return shop.NewShop(dto.ID, dto.Name, dto.TelegramChatID)
}
