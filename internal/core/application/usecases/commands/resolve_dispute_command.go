package commands

import (
	"errors"

	"courierhub/internal/core/domain/model/dispute"

	"github.com/google/uuid"
)

var ErrResolveDisputeCommandIsNotConstructed = errors.New(
	"ResolveDisputeCommand must be created via NewResolveDisputeCommand constructor",
)

// ResolveDisputeCommand represents an admin moving a dispute through its
// workflow: into review, to a resolution, or closed.
type ResolveDisputeCommand struct { //nolint:recvcheck //using for validation
	disputeID  uuid.UUID
	nextStatus dispute.Status
	resolution string

	isSet bool
}

// NewResolveDisputeCommand creates a command to advance a dispute. The
// resolution text is mandatory only when moving to resolved, which the
// aggregate enforces.
func NewResolveDisputeCommand(
	disputeID uuid.UUID,
	nextStatus dispute.Status,
	resolution string,
) (ResolveDisputeCommand, error) {
	resolveCommand := ResolveDisputeCommand{
		resolution: resolution,
		isSet:      true,
	}

	if err := errors.Join(
		resolveCommand.setDisputeID(disputeID),
		resolveCommand.setNextStatus(nextStatus),
	); err != nil {
		return ResolveDisputeCommand{}, err
	}

	return resolveCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrResolveDisputeCommandIsNotConstructed if validation fails.
func (c ResolveDisputeCommand) Validate() error {
	if !c.isSet {
		return ErrResolveDisputeCommandIsNotConstructed
	}
	return nil
}

// DisputeID returns the identifier of the dispute being advanced.
func (c ResolveDisputeCommand) DisputeID() uuid.UUID {
	return c.disputeID
}

// NextStatus returns the requested dispute status.
func (c ResolveDisputeCommand) NextStatus() dispute.Status {
	return c.nextStatus
}

// Resolution returns the admin's resolution text, if any.
func (c ResolveDisputeCommand) Resolution() string {
	return c.resolution
}

func (c *ResolveDisputeCommand) setDisputeID(disputeID uuid.UUID) error {
	if disputeID == uuid.Nil {
		return ErrDisputeIDIsRequired
	}

	c.disputeID = disputeID
	return nil
}

func (c *ResolveDisputeCommand) setNextStatus(nextStatus dispute.Status) error {
	if err := nextStatus.Validate(); err != nil {
		return err
	}

	c.nextStatus = nextStatus
	return nil
}
