package commands

import (
	"context"
	"time"

	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/core/ports"
)

// UpdateOrderStatusCommandHandler handles courier progress reports.
// Applies the state machine transition, persists the order guarded by its
// previous status, and releases the courier's capacity slot when the
// transition lands in a terminal state.
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the status update command.
// The order row is updated only while still in the status the transition
// started from, so two concurrent updates cannot both apply. Reaching
// "delivered" stamps the delivery time; reaching a terminal status frees
// the courier's slot in the same transaction. Notifications go out only
// after the commit.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, command UpdateOrderStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	trackedOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	previousStatus := trackedOrder.Status()
	now := time.Now().UTC()

	if err = trackedOrder.ChangeStatus(command.NextStatus(), now); err != nil {
		return err
	}
	if command.CourierNotes() != "" {
		trackedOrder.SetCourierNotes(command.CourierNotes())
	}

	if err = orderRepo.UpdateInStatus(ctx, trackedOrder, previousStatus); err != nil {
		return err
	}

	if trackedOrder.Status().IsTerminal() && trackedOrder.CourierID() != nil {
		if err = uow.CourierRepository().ReleaseSlot(ctx, *trackedOrder.CourierID()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OrderStatusChanged(ctx, trackedOrder)
	if trackedOrder.Status() == order.Delivered {
		h.notifier.OrderDelivered(ctx, trackedOrder, *trackedOrder.DeliveredAt())
	}

	return nil
}
