package commands

import (
	"errors"

	"courierhub/internal/core/domain/model/registration"
)

var (
	ErrIssueRegistrationCodeCommandIsNotConstructed = errors.New(
		"IssueRegistrationCodeCommand must be created via NewIssueRegistrationCodeCommand constructor",
	)
	ErrTelegramIDIsRequired = errors.New("telegram id is required")
)

// IssueRegistrationCodeCommand represents an admin issuing a one-time
// registration code to onboard a shop or courier through the bot.
type IssueRegistrationCodeCommand struct { //nolint:recvcheck //using for validation
	telegramID int64
	role       registration.Role

	isSet bool
}

// NewIssueRegistrationCodeCommand creates a command to issue a code for the
// given recipient and role.
func NewIssueRegistrationCodeCommand(telegramID int64, role registration.Role) (IssueRegistrationCodeCommand, error) {
	issueCommand := IssueRegistrationCodeCommand{
		isSet: true,
	}

	if err := errors.Join(
		issueCommand.setTelegramID(telegramID),
		issueCommand.setRole(role),
	); err != nil {
		return IssueRegistrationCodeCommand{}, err
	}

	return issueCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrIssueRegistrationCodeCommandIsNotConstructed if validation fails.
func (c IssueRegistrationCodeCommand) Validate() error {
	if !c.isSet {
		return ErrIssueRegistrationCodeCommandIsNotConstructed
	}
	return nil
}

// TelegramID returns the recipient's chat identifier.
func (c IssueRegistrationCodeCommand) TelegramID() int64 {
	return c.telegramID
}

// Role returns the account kind the code grants.
func (c IssueRegistrationCodeCommand) Role() registration.Role {
	return c.role
}

func (c *IssueRegistrationCodeCommand) setTelegramID(telegramID int64) error {
	if telegramID == 0 {
		return ErrTelegramIDIsRequired
	}

	c.telegramID = telegramID
	return nil
}

func (c *IssueRegistrationCodeCommand) setRole(role registration.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
