package commands

import "errors"

var (
	ErrRedeemRegistrationCodeCommandIsNotConstructed = errors.New(
		"RedeemRegistrationCodeCommand must be created via NewRedeemRegistrationCodeCommand constructor",
	)
	ErrCodeIsRequired = errors.New("code is required")
)

// RedeemRegistrationCodeCommand represents a shop or courier presenting a
// one-time registration code during onboarding.
type RedeemRegistrationCodeCommand struct { //nolint:recvcheck //using for validation
	code string

	isSet bool
}

// NewRedeemRegistrationCodeCommand creates a command to redeem a code.
func NewRedeemRegistrationCodeCommand(code string) (RedeemRegistrationCodeCommand, error) {
	redeemCommand := RedeemRegistrationCodeCommand{
		isSet: true,
	}

	if err := redeemCommand.setCode(code); err != nil {
		return RedeemRegistrationCodeCommand{}, err
	}

	return redeemCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRedeemRegistrationCodeCommandIsNotConstructed if validation fails.
func (c RedeemRegistrationCodeCommand) Validate() error {
	if !c.isSet {
		return ErrRedeemRegistrationCodeCommandIsNotConstructed
	}
	return nil
}

// Code returns the presented code value.
func (c RedeemRegistrationCodeCommand) Code() string {
	return c.code
}

func (c *RedeemRegistrationCodeCommand) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}

	c.code = code
	return nil
}
