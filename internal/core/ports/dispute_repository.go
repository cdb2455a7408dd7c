package ports

import (
	"context"

	"courierhub/internal/core/domain/model/dispute"

	"github.com/google/uuid"
)

// DisputeRepository is the persistence contract for the dispute ledger.
type DisputeRepository interface {
	// Add persists a new dispute. The orders table carries a uniqueness
	// constraint on order_id, so a second dispute over the same order fails.
	Add(ctx context.Context, aggregate *dispute.Dispute) error

	// Update saves changes to an existing dispute.
	Update(ctx context.Context, aggregate *dispute.Dispute) error

	// Get retrieves a dispute by id. Returns an ObjectNotFoundError when the
	// id is unknown.
	Get(ctx context.Context, id uuid.UUID) (*dispute.Dispute, error)

	// GetByOrder retrieves the dispute opened over an order, if any.
	GetByOrder(ctx context.Context, orderID uuid.UUID) (*dispute.Dispute, error)
}
