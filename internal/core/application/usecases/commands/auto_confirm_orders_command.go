package commands

import "errors"

var ErrAutoConfirmOrdersCommandIsNotConstructed = errors.New(
	"AutoConfirmOrdersCommand must be created via NewAutoConfirmOrdersCommand constructor",
)

// AutoConfirmOrdersCommand triggers one pass of the automatic confirmation
// sweep: every order delivered longer ago than the grace period without a
// shop confirmation is completed on the shop's behalf.
type AutoConfirmOrdersCommand struct {
	isSet bool
}

// NewAutoConfirmOrdersCommand creates a new command to trigger a sweep pass.
// This is a parameterless command.
func NewAutoConfirmOrdersCommand() AutoConfirmOrdersCommand {
	return AutoConfirmOrdersCommand{
		isSet: true,
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAutoConfirmOrdersCommandIsNotConstructed if validation fails.
func (c AutoConfirmOrdersCommand) Validate() error {
	if !c.isSet {
		return ErrAutoConfirmOrdersCommandIsNotConstructed
	}
	return nil
}
