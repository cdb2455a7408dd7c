package commands

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrCreateShopCommandIsNotConstructed = errors.New(
		"CreateShopCommand must be created via NewCreateShopCommand constructor",
	)
	ErrTelegramChatIDIsRequired = errors.New("telegram chat id is required")
)

// CreateShopCommand represents the registration of a shop in the directory,
// including the bot chat its notifications go to.
type CreateShopCommand struct { //nolint:recvcheck //using for validation
	shopID         uuid.UUID
	name           string
	telegramChatID int64

	isSet bool
}

// NewCreateShopCommand creates a command to register a shop.
func NewCreateShopCommand(shopID uuid.UUID, name string, telegramChatID int64) (CreateShopCommand, error) {
	shopCommand := CreateShopCommand{
		isSet: true,
	}

	if err := errors.Join(
		shopCommand.setShopID(shopID),
		shopCommand.setName(name),
		shopCommand.setTelegramChatID(telegramChatID),
	); err != nil {
		return CreateShopCommand{}, err
	}

	return shopCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShopCommandIsNotConstructed if validation fails.
func (c CreateShopCommand) Validate() error {
	if !c.isSet {
		return ErrCreateShopCommandIsNotConstructed
	}
	return nil
}

// ShopID returns the identifier for the new shop.
func (c CreateShopCommand) ShopID() uuid.UUID {
	return c.shopID
}

// Name returns the shop's display name.
func (c CreateShopCommand) Name() string {
	return c.name
}

// TelegramChatID returns the chat the shop's notifications go to.
func (c CreateShopCommand) TelegramChatID() int64 {
	return c.telegramChatID
}

func (c *CreateShopCommand) setShopID(shopID uuid.UUID) error {
	if shopID == uuid.Nil {
		return ErrShopIDIsRequired
	}

	c.shopID = shopID
	return nil
}

func (c *CreateShopCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateShopCommand) setTelegramChatID(telegramChatID int64) error {
	if telegramChatID == 0 {
		return ErrTelegramChatIDIsRequired
	}

	c.telegramChatID = telegramChatID
	return nil
}
