package commands

import (
	"context"
	"errors"
	"time"

	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/core/domain/services"
	"courierhub/internal/core/ports"
	"courierhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNoOrderFound        = errors.New("no unassigned special order found")
	ErrNoFreeCouriersFound = errors.New("no free couriers found")
)

// AutoAssignCourierCommandHandler orchestrates the automatic assignment pass.
// Finds the oldest pending special order and matches it with the best
// available courier using the dispatcher's selection policy. Ensures
// transactional consistency when updating both order and courier states.
//
// Example:
//
//	handler := NewAutoAssignCourierCommandHandler(uowFactory, notifier)
//	cmd := NewAutoAssignCourierCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoOrderFound):
//	    log.Println("No pending special orders")
//	case errors.Is(err, ErrNoFreeCouriersFound):
//	    log.Println("All couriers are busy")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	default:
//	    log.Println("Courier assigned successfully")
//	}
type AutoAssignCourierCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewAutoAssignCourierCommandHandler creates a handler for automatic
// assignment passes.
func NewAutoAssignCourierCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) AutoAssignCourierCommandHandler {
	return AutoAssignCourierCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes one automatic assignment.
// With a target order the order is loaded directly; without one the first
// pending special order is picked. The available couriers go through
// CourierDispatcher to select the best match. The courier slot is acquired
// with a conditional increment and the order update is guarded by its
// expected status, so a concurrent manual assignment makes this pass lose
// cleanly. A sweep pass returns ErrNoOrderFound or ErrNoFreeCouriersFound
// when there is nothing to do.
func (h AutoAssignCourierCommandHandler) Handle(ctx context.Context, command AutoAssignCourierCommand) error {
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
	courierRepo := uow.CourierRepository()

	pendingOrder, err := h.targetOrder(ctx, orderRepo, command)
	if err != nil {
		return err
	}

	couriers, err := courierRepo.GetAllAvailable(ctx)
	if err != nil {
		return err
	}

	assignedCourier, err := services.NewCourierDispatcher().Dispatch(pendingOrder, couriers, time.Now().UTC())
	if err != nil {
		return err
	}
	if assignedCourier == nil {
		return ErrNoFreeCouriersFound
	}

	if err = courierRepo.AcquireSlot(ctx, assignedCourier.ID()); err != nil {
		return err
	}

	if err = orderRepo.UpdateInStatus(ctx, pendingOrder, order.Created); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OrderAssigned(ctx, pendingOrder, assignedCourier.Name())

	return nil
}

// targetOrder resolves which order this command assigns. A targeted call
// surfaces repository errors as-is; a sweep pass translates an empty queue
// into ErrNoOrderFound.
func (h AutoAssignCourierCommandHandler) targetOrder(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	command AutoAssignCourierCommand,
) (*order.Order, error) {
	if command.OrderID() != uuid.Nil {
		return orderRepo.Get(ctx, command.OrderID())
	}

	pendingOrder, err := orderRepo.GetFirstUnassignedSpecial(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrNoOrderFound
	}
	return pendingOrder, err
}
