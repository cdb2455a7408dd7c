package ports

import (
	"context"

	"courierhub/internal/core/domain/model/courier"

	"github.com/google/uuid"
)

// CourierRepository is the persistence contract for the courier registry.
//
// Load changes never go through a read-modify-write of the whole row:
// AcquireSlot and ReleaseSlot are atomic conditional increments at the
// storage layer, so current_orders can never exceed max_orders no matter how
// assignments interleave.
type CourierRepository interface {
	// Add persists a new courier.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Update saves the courier's profile fields (name, active flag,
	// capacity ceiling). It does not write the load counter.
	Update(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier by id. Returns an ObjectNotFoundError when the
	// id is unknown.
	Get(ctx context.Context, id uuid.UUID) (*courier.Courier, error)

	// GetAllAvailable retrieves couriers that are on shift with a free slot,
	// ordered by ascending id for deterministic selection.
	GetAllAvailable(ctx context.Context) ([]*courier.Courier, error)

	// GetAll retrieves every registered courier.
	GetAll(ctx context.Context) ([]*courier.Courier, error)

	// AcquireSlot atomically increments the courier's load while the courier
	// is active and below capacity. Zero affected rows surfaces as a
	// CapacityExceededError.
	AcquireSlot(ctx context.Context, id uuid.UUID) error

	// ReleaseSlot atomically decrements the courier's load, guarded against
	// going below zero. Releasing an already-free courier is a no-op.
	ReleaseSlot(ctx context.Context, id uuid.UUID) error
}
