package commands_test

import (
	"testing"
	"time"

	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/domain/model/registration"
	"courierhub/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIssueRegistrationCodeCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewIssueRegistrationCodeCommand(123456789, registration.RoleCourier)
	require.NoError(t, err)

	store := new(MockCodeStore)
	store.On("Save", ctx, mock.MatchedBy(func(code *registration.Code) bool {
		return len(code.Value) == registration.CodeLength &&
			code.TelegramID == int64(123456789) &&
			code.Role == registration.RoleCourier
	}), 30*time.Minute).Return(nil).Once()

	handler := commands.NewIssueRegistrationCodeCommandHandler(store)
	code, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, code)
	store.AssertExpectations(t)
}

func TestIssueRegistrationCodeCommandHandler_Handle_RegeneratesOnCollision(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewIssueRegistrationCodeCommand(123456789, registration.RoleShop)
	require.NoError(t, err)

	store := new(MockCodeStore)
	store.On("Save", ctx, mock.Anything, mock.Anything).
		Return(errs.NewInvalidStateError("code already exists")).Once()
	store.On("Save", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	handler := commands.NewIssueRegistrationCodeCommandHandler(store)
	code, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, code)
	store.AssertNumberOfCalls(t, "Save", 2)
}

func TestRedeemRegistrationCodeCommandHandler_Handle_UnknownCode(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewRedeemRegistrationCodeCommand("000000")
	require.NoError(t, err)

	store := new(MockCodeStore)
	store.On("Redeem", ctx, "000000").
		Return(nil, errs.NewObjectNotFoundError("code", "000000")).Once()

	handler := commands.NewRedeemRegistrationCodeCommandHandler(store)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
