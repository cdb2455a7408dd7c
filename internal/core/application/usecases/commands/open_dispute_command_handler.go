package commands

import (
	"context"
	"time"

	"courierhub/internal/core/domain/model/dispute"
	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/core/ports"
	"courierhub/internal/pkg/errs"
)

// OpenDisputeCommandHandler handles dispute escalation.
// Freezes the order in disputed status, opens the dispute record and frees
// the courier's capacity slot, all in one transaction.
type OpenDisputeCommandHandler struct {
	uowFactory DisputeUoWFactory
	notifier   ports.Notifier
}

// NewOpenDisputeCommandHandler creates a handler for dispute escalation.
func NewOpenDisputeCommandHandler(uowFactory DisputeUoWFactory, notifier ports.Notifier) OpenDisputeCommandHandler {
	return OpenDisputeCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the dispute command.
// A dispute needs an assigned courier to dispute against. The order row is
// updated only while still in the status the escalation saw, and the unique
// index on the disputes table's order id stops a second dispute over the
// same order.
func (h OpenDisputeCommandHandler) Handle(ctx context.Context, command OpenDisputeCommand) error {
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

	disputedOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}
	if disputedOrder.CourierID() == nil {
		return errs.NewInvalidStateError("a dispute requires an assigned courier")
	}

	previousStatus := disputedOrder.Status()
	now := time.Now().UTC()

	if err = disputedOrder.ChangeStatus(order.Disputed, now); err != nil {
		return err
	}

	newDispute, err := dispute.NewDispute(
		command.DisputeID(), disputedOrder.ID(), disputedOrder.ShopID(),
		*disputedOrder.CourierID(), command.Description(), command.CreatedBy(), now)
	if err != nil {
		return err
	}

	if err = uow.DisputeRepository().Add(ctx, newDispute); err != nil {
		return err
	}

	if err = orderRepo.UpdateInStatus(ctx, disputedOrder, previousStatus); err != nil {
		return err
	}

	if err = uow.CourierRepository().ReleaseSlot(ctx, *disputedOrder.CourierID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OrderStatusChanged(ctx, disputedOrder)

	return nil
}
