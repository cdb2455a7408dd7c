package commands

import (
	"errors"

	"courierhub/internal/core/domain/model/dispute"

	"github.com/google/uuid"
)

var (
	ErrOpenDisputeCommandIsNotConstructed = errors.New(
		"OpenDisputeCommand must be created via NewOpenDisputeCommand constructor",
	)
	ErrDisputeIDIsRequired   = errors.New("dispute id is required")
	ErrDescriptionIsRequired = errors.New("description is required")
)

// OpenDisputeCommand represents a party's escalation of an order: the order
// freezes in disputed status and a dispute record is opened for an admin to
// work through.
type OpenDisputeCommand struct { //nolint:recvcheck //using for validation
	disputeID   uuid.UUID
	orderID     uuid.UUID
	description string
	createdBy   dispute.Role

	isSet bool
}

// NewOpenDisputeCommand creates a command to open a dispute over an order.
// The description is mandatory and the role must be a valid dispute party.
func NewOpenDisputeCommand(
	disputeID uuid.UUID,
	orderID uuid.UUID,
	description string,
	createdBy dispute.Role,
) (OpenDisputeCommand, error) {
	disputeCommand := OpenDisputeCommand{
		isSet: true,
	}

	if err := errors.Join(
		disputeCommand.setDisputeID(disputeID),
		disputeCommand.setOrderID(orderID),
		disputeCommand.setDescription(description),
		disputeCommand.setCreatedBy(createdBy),
	); err != nil {
		return OpenDisputeCommand{}, err
	}

	return disputeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrOpenDisputeCommandIsNotConstructed if validation fails.
func (c OpenDisputeCommand) Validate() error {
	if !c.isSet {
		return ErrOpenDisputeCommandIsNotConstructed
	}
	return nil
}

// DisputeID returns the identifier for the new dispute.
func (c OpenDisputeCommand) DisputeID() uuid.UUID {
	return c.disputeID
}

// OrderID returns the identifier of the disputed order.
func (c OpenDisputeCommand) OrderID() uuid.UUID {
	return c.orderID
}

// Description returns the complaint text.
func (c OpenDisputeCommand) Description() string {
	return c.description
}

// CreatedBy returns which party opened the dispute.
func (c OpenDisputeCommand) CreatedBy() dispute.Role {
	return c.createdBy
}

func (c *OpenDisputeCommand) setDisputeID(disputeID uuid.UUID) error {
	if disputeID == uuid.Nil {
		return ErrDisputeIDIsRequired
	}

	c.disputeID = disputeID
	return nil
}

func (c *OpenDisputeCommand) setOrderID(orderID uuid.UUID) error {
	if orderID == uuid.Nil {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *OpenDisputeCommand) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}

	c.description = description
	return nil
}

func (c *OpenDisputeCommand) setCreatedBy(createdBy dispute.Role) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}

	c.createdBy = createdBy
	return nil
}
