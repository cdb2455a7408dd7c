package commands

import (
	"context"
	"time"

	"courierhub/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves the zone pricing, freezes the price breakdown and persists the
// order in "created" status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(uuid.New(), shopID, zoneID,
//	    order.TypeSpecial, details, decimal.NewFromInt(300), decimal.Zero)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now created and ready for courier assignment
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a CreateOrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Loads the zone to price the order, computes the frozen breakdown per the
// order type, and creates the order in "created" status. Uses a transaction
// to ensure the order is properly persisted or rolled back on error.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryZone, err := uow.ZoneRepository().Get(ctx, cmd.ZoneID())
	if err != nil {
		return err
	}

	pricing := order.CalculatePricing(
		cmd.OrderType(), deliveryZone.BasePrice(), cmd.ZoneAddon(), cmd.RushHourAddon())

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.ShopID(), cmd.ZoneID(),
		cmd.OrderType(), pricing, cmd.Details(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
