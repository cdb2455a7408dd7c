// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work owns one database transaction; repositories obtained
// from it run inside that transaction, and the aggregates they touch are
// tracked so post-commit processing can see what a business operation changed.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each business operation gets its own instance; a UnitOfWork is not safe for
// concurrent use.
package postgres

import (
	"context"

	"courierhub/internal/adapters/out/postgres/courierrepo"
	"courierhub/internal/adapters/out/postgres/disputerepo"
	"courierhub/internal/adapters/out/postgres/orderrepo"
	"courierhub/internal/adapters/out/postgres/shoprepo"
	"courierhub/internal/adapters/out/postgres/zonerepo"
	"courierhub/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        uuid.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances over a shared GORM
// connection pool. Each Create call returns a fresh instance with its own
// transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to the given connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction across the repositories
// of a single business operation.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling Begin again on an instance with an
// open transaction is a no-op, so there are never nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes the transaction. After commit the transaction is closed
// and cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Rolling back after a commit returns
// gorm.ErrInvalidTransaction, which deferred rollbacks ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository returns an order repository bound to the transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// CourierRepository returns a courier repository bound to the transaction.
func (uow *GormUnitOfWork) CourierRepository() ports.CourierRepository {
	return courierrepo.NewGormCourierRepository(uow.conn(), uow)
}

// ZoneRepository returns a zone repository bound to the transaction.
func (uow *GormUnitOfWork) ZoneRepository() ports.ZoneRepository {
	return zonerepo.NewGormZoneRepository(uow.conn())
}

// ShopRepository returns a shop repository bound to the transaction.
func (uow *GormUnitOfWork) ShopRepository() ports.ShopRepository {
	return shoprepo.NewGormShopRepository(uow.conn())
}

// DisputeRepository returns a dispute repository bound to the transaction.
func (uow *GormUnitOfWork) DisputeRepository() ports.DisputeRepository {
	return disputerepo.NewGormDisputeRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Repository implementations call it on every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id uuid.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
