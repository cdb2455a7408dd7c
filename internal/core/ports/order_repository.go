// Package ports defines the contracts between the application core and the
// infrastructure adapters: repositories, the unit of work, the notification
// dispatcher and the one-time-code store.
package ports

import (
	"context"
	"time"

	"courierhub/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderRepository is the persistence contract for order aggregates.
//
// Race-prone writes go through UpdateInStatus and SetRating, which are
// conditional updates: the row is written only while it still matches the
// expected precondition, and zero affected rows surfaces as an
// InvalidStateError. This is the concurrency fence the engine relies on
// instead of read-then-write.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id. Returns an ObjectNotFoundError when the
	// id is unknown.
	Get(ctx context.Context, id uuid.UUID) (*order.Order, error)

	// GetByShop retrieves a shop's orders, newest first.
	GetByShop(ctx context.Context, shopID uuid.UUID) ([]*order.Order, error)

	// GetFirstUnassignedSpecial retrieves the oldest special order still in
	// created status. Returns an ObjectNotFoundError when none is pending.
	// Used by the automatic assignment sweep.
	GetFirstUnassignedSpecial(ctx context.Context) (*order.Order, error)

	// UpdateInStatus saves the aggregate only while the stored row is still
	// in expected status. Zero affected rows means a concurrent writer moved
	// the order first; the repository reports that as an InvalidStateError.
	UpdateInStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// SetRating writes the one-time courier rating, guarded by
	// courier_rating IS NULL and a completed/disputed status so a concurrent
	// second rater loses.
	SetRating(ctx context.Context, orderID uuid.UUID, rating int, feedback string) error

	// ListAutoConfirmable retrieves orders eligible for the auto-confirm
	// sweep: delivered before the cutoff with neither confirmation stamp set.
	ListAutoConfirmable(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
