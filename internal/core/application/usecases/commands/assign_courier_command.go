package commands

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrAssignCourierCommandIsNotConstructed = errors.New(
		"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
	)
	ErrCourierIDIsRequired = errors.New("courier id is required")
)

// AssignCourierCommand represents a manual assignment of a specific courier
// to a specific order by an operator. The automatic counterpart, which picks
// the courier itself, is AutoAssignCourierCommand.
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	orderID   uuid.UUID
	courierID uuid.UUID

	isSet bool
}

// NewAssignCourierCommand creates a command to assign a courier to an order.
// Both identifiers are mandatory.
func NewAssignCourierCommand(orderID, courierID uuid.UUID) (AssignCourierCommand, error) {
	assignCommand := AssignCourierCommand{
		isSet: true,
	}

	if err := errors.Join(
		assignCommand.setOrderID(orderID),
		assignCommand.setCourierID(courierID),
	); err != nil {
		return AssignCourierCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignCourierCommandIsNotConstructed if validation fails.
func (c AssignCourierCommand) Validate() error {
	if !c.isSet {
		return ErrAssignCourierCommandIsNotConstructed
	}
	return nil
}

// OrderID returns the identifier of the order being assigned.
func (c AssignCourierCommand) OrderID() uuid.UUID {
	return c.orderID
}

// CourierID returns the identifier of the courier taking the order.
func (c AssignCourierCommand) CourierID() uuid.UUID {
	return c.courierID
}

func (c *AssignCourierCommand) setOrderID(orderID uuid.UUID) error {
	if orderID == uuid.Nil {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *AssignCourierCommand) setCourierID(courierID uuid.UUID) error {
	if courierID == uuid.Nil {
		return ErrCourierIDIsRequired
	}

	c.courierID = courierID
	return nil
}
