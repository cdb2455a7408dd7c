package commands

import (
	"context"

	"courierhub/internal/core/domain/model/registration"
	"courierhub/internal/core/ports"
)

// RedeemRegistrationCodeCommandHandler handles the redemption side of
// onboarding. The store consumes the code atomically, so presenting the
// same code twice fails the second time.
type RedeemRegistrationCodeCommandHandler struct {
	codeStore ports.CodeStore
}

// NewRedeemRegistrationCodeCommandHandler creates a handler for code redemption.
func NewRedeemRegistrationCodeCommandHandler(codeStore ports.CodeStore) RedeemRegistrationCodeCommandHandler {
	return RedeemRegistrationCodeCommandHandler{
		codeStore: codeStore,
	}
}

// Handle processes the redemption command and returns the consumed code,
// which tells the caller what role to grant and to whom. An unknown or
// expired code surfaces as an ObjectNotFoundError.
func (h RedeemRegistrationCodeCommandHandler) Handle(ctx context.Context, command RedeemRegistrationCodeCommand) (*registration.Code, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	return h.codeStore.Redeem(ctx, command.Code())
}
