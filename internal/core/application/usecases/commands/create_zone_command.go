package commands

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrCreateZoneCommandIsNotConstructed = errors.New(
	"CreateZoneCommand must be created via NewCreateZoneCommand constructor",
)

// CreateZoneCommand represents an admin adding a delivery zone to the
// pricing table.
type CreateZoneCommand struct { //nolint:recvcheck //using for validation
	zoneID    uuid.UUID
	name      string
	radiusKm  int
	basePrice decimal.Decimal

	isSet bool
}

// NewCreateZoneCommand creates a command to add a delivery zone. Deeper
// validation of the radius and base price happens in the aggregate.
func NewCreateZoneCommand(zoneID uuid.UUID, name string, radiusKm int, basePrice decimal.Decimal) (CreateZoneCommand, error) {
	zoneCommand := CreateZoneCommand{
		radiusKm:  radiusKm,
		basePrice: basePrice,
		isSet:     true,
	}

	if err := errors.Join(
		zoneCommand.setZoneID(zoneID),
		zoneCommand.setName(name),
	); err != nil {
		return CreateZoneCommand{}, err
	}

	return zoneCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateZoneCommandIsNotConstructed if validation fails.
func (c CreateZoneCommand) Validate() error {
	if !c.isSet {
		return ErrCreateZoneCommandIsNotConstructed
	}
	return nil
}

// ZoneID returns the identifier for the new zone.
func (c CreateZoneCommand) ZoneID() uuid.UUID {
	return c.zoneID
}

// Name returns the zone's display name.
func (c CreateZoneCommand) Name() string {
	return c.name
}

// RadiusKm returns the zone's radius in kilometers.
func (c CreateZoneCommand) RadiusKm() int {
	return c.radiusKm
}

// BasePrice returns the zone's base delivery price.
func (c CreateZoneCommand) BasePrice() decimal.Decimal {
	return c.basePrice
}

func (c *CreateZoneCommand) setZoneID(zoneID uuid.UUID) error {
	if zoneID == uuid.Nil {
		return ErrZoneIDIsRequired
	}

	c.zoneID = zoneID
	return nil
}

func (c *CreateZoneCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
