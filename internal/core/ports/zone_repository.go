package ports

import (
	"context"

	"courierhub/internal/core/domain/model/zone"

	"github.com/google/uuid"
)

// ZoneRepository is the persistence contract for the zone pricing table.
// The engine only ever reads zones; Add exists for administrative tooling.
type ZoneRepository interface {
	// Add persists a new zone.
	Add(ctx context.Context, aggregate *zone.Zone) error

	// Get retrieves a zone by id. Returns an ObjectNotFoundError when the id
	// is unknown.
	Get(ctx context.Context, id uuid.UUID) (*zone.Zone, error)

	// GetAll retrieves every zone.
	GetAll(ctx context.Context) ([]*zone.Zone, error)
}
