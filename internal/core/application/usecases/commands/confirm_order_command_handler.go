package commands

import (
	"context"
	"time"

	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/core/ports"
)

// ConfirmOrderCommandHandler handles manual delivery confirmation.
// Moves a delivered order to completed, stamps the confirmation time and
// frees the courier's capacity slot.
type ConfirmOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewConfirmOrderCommandHandler creates a handler for manual confirmations.
func NewConfirmOrderCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the confirmation command.
// The order row is updated only while still in "delivered" status, so a
// manual confirmation racing the automatic sweep cannot double-complete the
// order. Completion is terminal, so the courier's slot is released in the
// same transaction.
func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, command ConfirmOrderCommand) error {
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

	confirmedOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = confirmedOrder.Confirm(time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.UpdateInStatus(ctx, confirmedOrder, order.Delivered); err != nil {
		return err
	}

	if confirmedOrder.CourierID() != nil {
		if err = uow.CourierRepository().ReleaseSlot(ctx, *confirmedOrder.CourierID()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OrderStatusChanged(ctx, confirmedOrder)

	return nil
}
