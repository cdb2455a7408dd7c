package commands

import (
	"errors"

	"github.com/google/uuid"
)

var ErrSetCourierAvailabilityCommandIsNotConstructed = errors.New(
	"SetCourierAvailabilityCommand must be created via NewSetCourierAvailabilityCommand constructor",
)

// SetCourierAvailabilityCommand represents a courier going on or off shift.
// Going off shift stops new assignments; orders already in progress stay
// with the courier.
type SetCourierAvailabilityCommand struct { //nolint:recvcheck //using for validation
	courierID uuid.UUID
	active    bool

	isSet bool
}

// NewSetCourierAvailabilityCommand creates a command to toggle a courier's
// shift state.
func NewSetCourierAvailabilityCommand(courierID uuid.UUID, active bool) (SetCourierAvailabilityCommand, error) {
	availabilityCommand := SetCourierAvailabilityCommand{
		active: active,
		isSet:  true,
	}

	if err := availabilityCommand.setCourierID(courierID); err != nil {
		return SetCourierAvailabilityCommand{}, err
	}

	return availabilityCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetCourierAvailabilityCommandIsNotConstructed if validation fails.
func (c SetCourierAvailabilityCommand) Validate() error {
	if !c.isSet {
		return ErrSetCourierAvailabilityCommandIsNotConstructed
	}
	return nil
}

// CourierID returns the identifier of the courier being toggled.
func (c SetCourierAvailabilityCommand) CourierID() uuid.UUID {
	return c.courierID
}

// Active reports whether the courier is going on shift.
func (c SetCourierAvailabilityCommand) Active() bool {
	return c.active
}

func (c *SetCourierAvailabilityCommand) setCourierID(courierID uuid.UUID) error {
	if courierID == uuid.Nil {
		return ErrCourierIDIsRequired
	}

	c.courierID = courierID
	return nil
}
