package commands

import (
	"context"
	"time"

	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/core/ports"
)

// CancelOrderCommandHandler handles order cancellation.
// Moves the order to cancelled and, when a courier had already accepted it,
// frees that courier's capacity slot in the same transaction.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewCancelOrderCommandHandler creates a handler for cancellations.
func NewCancelOrderCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the cancellation command.
// The state machine rejects cancellation once the courier is under way, and
// the status-guarded update makes a cancellation racing an assignment or a
// pickup lose cleanly.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) error {
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

	cancelledOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	previousStatus := cancelledOrder.Status()
	if err = cancelledOrder.ChangeStatus(order.Cancelled, time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.UpdateInStatus(ctx, cancelledOrder, previousStatus); err != nil {
		return err
	}

	if cancelledOrder.CourierID() != nil {
		if err = uow.CourierRepository().ReleaseSlot(ctx, *cancelledOrder.CourierID()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OrderStatusChanged(ctx, cancelledOrder)

	return nil
}
