package commands

import (
	"errors"

	"github.com/google/uuid"
)

var ErrAutoAssignCourierCommandIsNotConstructed = errors.New(
	"AutoAssignCourierCommand must be created via NewAutoAssignCourierCommand constructor",
)

// AutoAssignCourierCommand triggers automatic assignment: a target order is
// matched with the least-loaded available courier. Without a target, one
// sweep pass runs and the oldest unassigned special order is picked.
//
// Example:
//
//	cmd := NewAutoAssignCourierCommand()
//	handler := NewAutoAssignCourierCommandHandler(uowFactory, notifier)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("No orders to assign or no available couriers: %v", err)
//	}
type AutoAssignCourierCommand struct {
	orderID uuid.UUID

	isSet bool
}

// NewAutoAssignCourierCommand creates a command for one sweep pass over the
// queue of unassigned special orders.
func NewAutoAssignCourierCommand() AutoAssignCourierCommand {
	return AutoAssignCourierCommand{
		isSet: true,
	}
}

// NewAutoAssignCourierCommandForOrder creates a command that assigns the
// given order specifically. The order must support automatic assignment.
func NewAutoAssignCourierCommandForOrder(orderID uuid.UUID) (AutoAssignCourierCommand, error) {
	if orderID == uuid.Nil {
		return AutoAssignCourierCommand{}, ErrOrderIDIsRequired
	}

	return AutoAssignCourierCommand{
		orderID: orderID,
		isSet:   true,
	}, nil
}

// Validate ensures the command was created through a constructor.
// Returns ErrAutoAssignCourierCommandIsNotConstructed if validation fails.
func (c AutoAssignCourierCommand) Validate() error {
	if !c.isSet {
		return ErrAutoAssignCourierCommandIsNotConstructed
	}
	return nil
}

// OrderID returns the target order, or uuid.Nil for a sweep pass.
func (c AutoAssignCourierCommand) OrderID() uuid.UUID {
	return c.orderID
}
