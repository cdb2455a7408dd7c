package commands

import (
	"errors"

	"courierhub/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderIDIsRequired          = errors.New("order id is required")
	ErrShopIDIsRequired           = errors.New("shop id is required")
	ErrZoneIDIsRequired           = errors.New("zone id is required")
	ErrAddonIsNegative            = errors.New("addon must not be negative")
	ErrRecipientPhoneIsRequired   = errors.New("recipient phone is required")
	ErrRecipientAddressIsRequired = errors.New("recipient address is required")
	ErrPickupAddressIsRequired    = errors.New("pickup address is required")
)

// CreateOrderCommand represents a shop's request to create a new delivery
// order. Carries the delivery details plus the shop-supplied price addons;
// the zone base price is resolved by the handler and the final breakdown is
// frozen at creation.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(uuid.New(), shopID, zoneID,
//	    order.TypeNormal, details, decimal.Zero, decimal.Zero)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       uuid.UUID
	shopID        uuid.UUID
	zoneID        uuid.UUID
	orderType     order.Type
	details       order.Details
	zoneAddon     decimal.Decimal
	rushHourAddon decimal.Decimal

	isSet bool
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// Validates identifiers, the order type and the mandatory delivery details;
// addons must not be negative. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID uuid.UUID,
	shopID uuid.UUID,
	zoneID uuid.UUID,
	orderType order.Type,
	details order.Details,
	zoneAddon decimal.Decimal,
	rushHourAddon decimal.Decimal,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		isSet: true,
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setShopID(shopID),
		orderCommand.setZoneID(zoneID),
		orderCommand.setOrderType(orderType),
		orderCommand.setDetails(details),
		orderCommand.setAddons(zoneAddon, rushHourAddon),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	if !c.isSet {
		return ErrCreateOrderCommandIsNotConstructed
	}
	return nil
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() uuid.UUID {
	return c.orderID
}

// ShopID returns the identifier of the shop placing the order.
func (c CreateOrderCommand) ShopID() uuid.UUID {
	return c.shopID
}

// ZoneID returns the identifier of the delivery zone.
func (c CreateOrderCommand) ZoneID() uuid.UUID {
	return c.zoneID
}

// OrderType returns the pricing category of the order.
func (c CreateOrderCommand) OrderType() order.Type {
	return c.orderType
}

// Details returns the delivery details supplied by the shop.
func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

// ZoneAddon returns the shop-supplied zone surcharge.
func (c CreateOrderCommand) ZoneAddon() decimal.Decimal {
	return c.zoneAddon
}

// RushHourAddon returns the shop-supplied rush hour surcharge.
func (c CreateOrderCommand) RushHourAddon() decimal.Decimal {
	return c.rushHourAddon
}

func (c *CreateOrderCommand) setOrderID(orderID uuid.UUID) error {
	if orderID == uuid.Nil {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setShopID(shopID uuid.UUID) error {
	if shopID == uuid.Nil {
		return ErrShopIDIsRequired
	}

	c.shopID = shopID
	return nil
}

func (c *CreateOrderCommand) setZoneID(zoneID uuid.UUID) error {
	if zoneID == uuid.Nil {
		return ErrZoneIDIsRequired
	}

	c.zoneID = zoneID
	return nil
}

func (c *CreateOrderCommand) setOrderType(orderType order.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}

func (c *CreateOrderCommand) setDetails(details order.Details) error {
	if details.RecipientPhone == "" {
		return ErrRecipientPhoneIsRequired
	}
	if details.RecipientAddress == "" {
		return ErrRecipientAddressIsRequired
	}
	if details.PickupAddress == "" {
		return ErrPickupAddressIsRequired
	}

	c.details = details
	return nil
}

func (c *CreateOrderCommand) setAddons(zoneAddon, rushHourAddon decimal.Decimal) error {
	if zoneAddon.IsNegative() || rushHourAddon.IsNegative() {
		return ErrAddonIsNegative
	}

	c.zoneAddon = zoneAddon
	c.rushHourAddon = rushHourAddon
	return nil
}
