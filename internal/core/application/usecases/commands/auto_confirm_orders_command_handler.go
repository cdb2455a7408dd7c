package commands

import (
	"context"
	"errors"
	"time"

	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/core/ports"
	"courierhub/internal/pkg/errs"
)

// DefaultConfirmationGracePeriod is how long a delivered order waits for the
// shop's confirmation before the sweep completes it automatically.
const DefaultConfirmationGracePeriod = 12 * time.Hour

// AutoConfirmOrdersCommandHandler handles the automatic confirmation sweep.
// Completes every order that sat in "delivered" beyond the grace period,
// stamping the automatic confirmation time instead of the manual one.
type AutoConfirmOrdersCommandHandler struct {
	uowFactory  UoWFactory
	notifier    ports.Notifier
	gracePeriod time.Duration
}

// NewAutoConfirmOrdersCommandHandler creates a handler for the sweep.
// A non-positive grace period falls back to DefaultConfirmationGracePeriod.
func NewAutoConfirmOrdersCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	gracePeriod time.Duration,
) AutoConfirmOrdersCommandHandler {
	if gracePeriod <= 0 {
		gracePeriod = DefaultConfirmationGracePeriod
	}

	return AutoConfirmOrdersCommandHandler{
		uowFactory:  uowFactory,
		notifier:    notifier,
		gracePeriod: gracePeriod,
	}
}

// Handle processes one sweep pass and returns how many orders it completed.
// Each order is updated only while still in "delivered" status; an order the
// shop confirmed between the listing and the write is skipped, not failed,
// so the sweep never races a manual confirmation destructively. Released
// courier slots and completed orders land in a single transaction.
func (h AutoConfirmOrdersCommandHandler) Handle(ctx context.Context, command AutoConfirmOrdersCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	courierRepo := uow.CourierRepository()

	now := time.Now().UTC()
	cutoff := now.Add(-h.gracePeriod)

	expired, err := orderRepo.ListAutoConfirmable(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	confirmed := make([]*order.Order, 0, len(expired))
	for _, expiredOrder := range expired {
		if err = expiredOrder.AutoConfirm(now); err != nil {
			return 0, err
		}

		err = orderRepo.UpdateInStatus(ctx, expiredOrder, order.Delivered)
		if errors.Is(err, errs.ErrInvalidState) {
			// A concurrent manual confirmation won; leave that order alone.
			continue
		}
		if err != nil {
			return 0, err
		}

		if expiredOrder.CourierID() != nil {
			if err = courierRepo.ReleaseSlot(ctx, *expiredOrder.CourierID()); err != nil {
				return 0, err
			}
		}

		confirmed = append(confirmed, expiredOrder)
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, confirmedOrder := range confirmed {
		h.notifier.OrderStatusChanged(ctx, confirmedOrder)
	}

	return len(confirmed), nil
}
