package ports

import (
	"context"

	"courierhub/internal/core/domain/model/shop"

	"github.com/google/uuid"
)

// ShopRepository is the persistence contract for the shop directory.
type ShopRepository interface {
	// Add persists a new shop.
	Add(ctx context.Context, aggregate *shop.Shop) error

	// Get retrieves a shop by id. Returns an ObjectNotFoundError when the id
	// is unknown.
	Get(ctx context.Context, id uuid.UUID) (*shop.Shop, error)
}
