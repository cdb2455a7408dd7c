package commands

import (
	"errors"

	"github.com/google/uuid"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents the shop's withdrawal of an order before the
// courier started the pickup. Cancellation is only legal from the created
// and accepted statuses.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID uuid.UUID

	isSet bool
}

// NewCancelOrderCommand creates a command to cancel an order.
func NewCancelOrderCommand(orderID uuid.UUID) (CancelOrderCommand, error) {
	cancelCommand := CancelOrderCommand{
		isSet: true,
	}

	if err := cancelCommand.setOrderID(orderID); err != nil {
		return CancelOrderCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelOrderCommandIsNotConstructed if validation fails.
func (c CancelOrderCommand) Validate() error {
	if !c.isSet {
		return ErrCancelOrderCommandIsNotConstructed
	}
	return nil
}

// OrderID returns the identifier of the order being cancelled.
func (c CancelOrderCommand) OrderID() uuid.UUID {
	return c.orderID
}

func (c *CancelOrderCommand) setOrderID(orderID uuid.UUID) error {
	if orderID == uuid.Nil {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}
