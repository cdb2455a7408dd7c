package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per business operation so
// concurrent operations stay isolated from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained from
// it run inside the transaction started by Begin; the caller drives the
// lifecycle explicitly and must Commit or Rollback exactly once.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. Rolling back after a
	// commit is a no-op, which keeps `defer uow.Rollback(ctx)` safe.
	Rollback(ctx context.Context) error

	// OrderRepository returns an order repository bound to the transaction.
	OrderRepository() OrderRepository

	// CourierRepository returns a courier repository bound to the transaction.
	CourierRepository() CourierRepository

	// ZoneRepository returns a zone repository bound to the transaction.
	ZoneRepository() ZoneRepository

	// ShopRepository returns a shop repository bound to the transaction.
	ShopRepository() ShopRepository

	// DisputeRepository returns a dispute repository bound to the transaction.
	DisputeRepository() DisputeRepository
}
