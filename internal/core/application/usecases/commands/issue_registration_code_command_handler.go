package commands

import (
	"context"
	"errors"
	"time"

	"courierhub/internal/core/domain/model/registration"
	"courierhub/internal/core/ports"
	"courierhub/internal/pkg/errs"
)

// Registration codes expire after this long; the store enforces the TTL.
const registrationCodeTTL = 30 * time.Minute

// Code values are random digits, so two in-flight codes can collide. The
// issuer regenerates a few times before giving up.
const maxCodeGenerationAttempts = 3

// IssueRegistrationCodeCommandHandler handles registration code issuance.
// Generates a random one-time code and parks it in the code store under a
// TTL until the recipient redeems it.
type IssueRegistrationCodeCommandHandler struct {
	codeStore ports.CodeStore
}

// NewIssueRegistrationCodeCommandHandler creates a handler for code issuance.
func NewIssueRegistrationCodeCommandHandler(codeStore ports.CodeStore) IssueRegistrationCodeCommandHandler {
	return IssueRegistrationCodeCommandHandler{
		codeStore: codeStore,
	}
}

// Handle processes the issuance command and returns the issued code.
// A collision with an in-flight code triggers regeneration; after the
// attempts run out the store's conflict error is returned as is.
func (h IssueRegistrationCodeCommandHandler) Handle(ctx context.Context, command IssueRegistrationCodeCommand) (*registration.Code, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	var lastErr error
	for range maxCodeGenerationAttempts {
		code, err := registration.NewCode(command.TelegramID(), command.Role(), time.Now().UTC())
		if err != nil {
			return nil, err
		}

		err = h.codeStore.Save(ctx, code, registrationCodeTTL)
		if err == nil {
			return code, nil
		}
		if !errors.Is(err, errs.ErrInvalidState) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}
