package commands

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrCreateCourierCommandIsNotConstructed = errors.New(
		"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
	)
	ErrUserIDIsRequired = errors.New("user id is required")
	ErrNameIsRequired   = errors.New("name is required")
)

// CreateCourierCommand represents the registration of a new courier in the
// fleet. New couriers start off shift with an empty load.
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID uuid.UUID
	userID    uuid.UUID
	name      string
	maxOrders int

	isSet bool
}

// NewCreateCourierCommand creates a command to register a courier. A
// non-positive maxOrders falls back to the default capacity inside the
// aggregate.
func NewCreateCourierCommand(courierID, userID uuid.UUID, name string, maxOrders int) (CreateCourierCommand, error) {
	courierCommand := CreateCourierCommand{
		maxOrders: maxOrders,
		isSet:     true,
	}

	if err := errors.Join(
		courierCommand.setCourierID(courierID),
		courierCommand.setUserID(userID),
		courierCommand.setName(name),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	return courierCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateCourierCommandIsNotConstructed if validation fails.
func (c CreateCourierCommand) Validate() error {
	if !c.isSet {
		return ErrCreateCourierCommandIsNotConstructed
	}
	return nil
}

// CourierID returns the identifier for the new courier.
func (c CreateCourierCommand) CourierID() uuid.UUID {
	return c.courierID
}

// UserID returns the identifier of the account behind the courier.
func (c CreateCourierCommand) UserID() uuid.UUID {
	return c.userID
}

// Name returns the courier's display name.
func (c CreateCourierCommand) Name() string {
	return c.name
}

// MaxOrders returns the courier's capacity ceiling.
func (c CreateCourierCommand) MaxOrders() int {
	return c.maxOrders
}

func (c *CreateCourierCommand) setCourierID(courierID uuid.UUID) error {
	if courierID == uuid.Nil {
		return ErrCourierIDIsRequired
	}

	c.courierID = courierID
	return nil
}

func (c *CreateCourierCommand) setUserID(userID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUserIDIsRequired
	}

	c.userID = userID
	return nil
}

func (c *CreateCourierCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
