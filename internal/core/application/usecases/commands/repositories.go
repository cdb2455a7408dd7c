// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"courierhub/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler declares the narrowest combination of repositories it needs,
// which keeps mocks small and makes the write set of every operation explicit.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CourierRepoFactory provides access to the courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// ZoneRepoFactory provides access to the zone repository within a transaction.
	ZoneRepoFactory interface {
		ZoneRepository() ports.ZoneRepository
	}

	// ShopRepoFactory provides access to the shop repository within a transaction.
	ShopRepoFactory interface {
		ShopRepository() ports.ShopRepository
	}

	// DisputeRepoFactory provides access to the dispute repository within a transaction.
	DisputeRepoFactory interface {
		DisputeRepository() ports.DisputeRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW manages transactions for order creation, which reads
	// the zone pricing table while writing the order.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		ZoneRepoFactory
	}

	// CreateOrderUoWFactory creates new order creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// CourierUoW manages transactions for courier-only operations.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	// CourierUoWFactory creates new courier unit of work instances.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// ZoneUoW manages transactions for zone administration.
	ZoneUoW interface {
		TxManager
		ZoneRepoFactory
	}

	// ZoneUoWFactory creates new zone unit of work instances.
	ZoneUoWFactory interface {
		Create() ZoneUoW
	}

	// ShopUoW manages transactions for shop administration.
	ShopUoW interface {
		TxManager
		ShopRepoFactory
	}

	// ShopUoWFactory creates new shop unit of work instances.
	ShopUoWFactory interface {
		Create() ShopUoW
	}

	// UoW manages transactions across both order and courier aggregates.
	// Used by every lifecycle command that touches the courier load counter:
	// assignment acquires a slot, terminal transitions release one, and both
	// writes must land in the same transaction as the order row.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   courierRepo := uow.CourierRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		CourierRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}

	// DisputeUoW manages transactions for dispute operations, which move the
	// order to disputed, release the courier slot and write the dispute row
	// atomically.
	DisputeUoW interface {
		TxManager
		OrderRepoFactory
		CourierRepoFactory
		DisputeRepoFactory
	}

	// DisputeUoWFactory creates new dispute unit of work instances.
	DisputeUoWFactory interface {
		Create() DisputeUoW
	}
)
