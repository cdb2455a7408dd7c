package commands

import (
	"context"
	"time"

	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/core/ports"
	"courierhub/internal/pkg/errs"
)

// AssignCourierCommandHandler handles manual courier assignment.
// Acquires a capacity slot for the courier and moves the order to accepted
// within a single transaction, so a courier can never end up over capacity
// and an order can never be accepted twice.
//
// Example:
//
//	handler := NewAssignCourierCommandHandler(uowFactory, notifier)
//	cmd, _ := NewAssignCourierCommand(orderID, courierID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrCapacityExceeded):
//	    log.Println("Courier is at capacity")
//	case errors.Is(err, errs.ErrInvalidState):
//	    log.Println("Order is no longer assignable")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignCourierCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewAssignCourierCommandHandler creates a handler for manual assignment.
// Requires a UoWFactory for coordinating transactional updates across
// repositories and a Notifier for the post-commit event.
func NewAssignCourierCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the manual assignment command.
// The courier slot is acquired with a conditional increment and the order
// row is updated only while still in "created" status, so two operators
// racing over the same order or courier cannot both win. The assignment
// notification goes out only after the transaction committed.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, command AssignCourierCommand) error {
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

	assignedOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}
	if assignedOrder.Status() != order.Created {
		return errs.NewInvalidStateError("only a created order can be assigned")
	}

	assignedCourier, err := courierRepo.Get(ctx, command.CourierID())
	if err != nil {
		return err
	}
	if !assignedCourier.IsActive() {
		return errs.NewCourierUnavailableError(assignedCourier.ID())
	}

	if err = courierRepo.AcquireSlot(ctx, assignedCourier.ID()); err != nil {
		return err
	}

	if err = assignedOrder.Assign(assignedCourier.ID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.UpdateInStatus(ctx, assignedOrder, order.Created); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OrderAssigned(ctx, assignedOrder, assignedCourier.Name())

	return nil
}
