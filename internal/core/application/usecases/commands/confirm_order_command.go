package commands

import (
	"errors"

	"github.com/google/uuid"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand represents the shop's confirmation that a delivered
// order arrived. Confirmation is the only way an order becomes completed,
// besides the automatic sweep after the grace period.
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	orderID uuid.UUID

	isSet bool
}

// NewConfirmOrderCommand creates a command to confirm a delivered order.
func NewConfirmOrderCommand(orderID uuid.UUID) (ConfirmOrderCommand, error) {
	confirmCommand := ConfirmOrderCommand{
		isSet: true,
	}

	if err := confirmCommand.setOrderID(orderID); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return confirmCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConfirmOrderCommandIsNotConstructed if validation fails.
func (c ConfirmOrderCommand) Validate() error {
	if !c.isSet {
		return ErrConfirmOrderCommandIsNotConstructed
	}
	return nil
}

// OrderID returns the identifier of the order being confirmed.
func (c ConfirmOrderCommand) OrderID() uuid.UUID {
	return c.orderID
}

func (c *ConfirmOrderCommand) setOrderID(orderID uuid.UUID) error {
	if orderID == uuid.Nil {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}
