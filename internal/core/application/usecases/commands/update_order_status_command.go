package commands

import (
	"errors"

	"courierhub/internal/core/domain/model/order"

	"github.com/google/uuid"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a courier's progress report on an
// order: picking_up, in_progress, delivered. Cancellation and confirmation
// have their own commands because they carry extra side effects.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID      uuid.UUID
	nextStatus   order.Status
	courierNotes string

	isSet bool
}

// NewUpdateOrderStatusCommand creates a command to move an order along the
// lifecycle. The target status must be a valid status value; whether the
// transition is legal from the order's current status is decided by the
// aggregate inside the handler's transaction.
func NewUpdateOrderStatusCommand(orderID uuid.UUID, nextStatus order.Status, courierNotes string) (UpdateOrderStatusCommand, error) {
	statusCommand := UpdateOrderStatusCommand{
		courierNotes: courierNotes,
		isSet:        true,
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setNextStatus(nextStatus),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateOrderStatusCommand) Validate() error {
	if !c.isSet {
		return ErrUpdateOrderStatusCommandIsNotConstructed
	}
	return nil
}

// OrderID returns the identifier of the order being updated.
func (c UpdateOrderStatusCommand) OrderID() uuid.UUID {
	return c.orderID
}

// NextStatus returns the requested target status.
func (c UpdateOrderStatusCommand) NextStatus() order.Status {
	return c.nextStatus
}

// CourierNotes returns the courier's free-form notes, if any.
func (c UpdateOrderStatusCommand) CourierNotes() string {
	return c.courierNotes
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID uuid.UUID) error {
	if orderID == uuid.Nil {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setNextStatus(nextStatus order.Status) error {
	if err := nextStatus.Validate(); err != nil {
		return err
	}

	c.nextStatus = nextStatus
	return nil
}
