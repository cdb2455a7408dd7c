package commands_test

import (
	"testing"

	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/core/ports"
	"courierhub/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConfirmOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	courierID := newTestCourier(t).ID()
	testOrder := newDeliveredOrder(t, courierID)

	cmd, err := commands.NewConfirmOrderCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("UpdateInStatus", ctx, testOrder, order.Delivered).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("ReleaseSlot", ctx, courierID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("OrderStatusChanged", ctx, testOrder).Once()

	handler := commands.NewConfirmOrderCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.Completed, testOrder.Status())
	require.NotNil(t, testOrder.ConfirmedAt())
	require.Nil(t, testOrder.AutoconfirmedAt())
	orderRepo.AssertExpectations(t)
	courierRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_NotDelivered(t *testing.T) {
	ctx := t.Context()

	testOrder := newAcceptedOrder(t, newTestCourier(t).ID())

	cmd, err := commands.NewConfirmOrderCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmOrderCommandHandler(factory, ports.NewNopNotifier())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	orderRepo.AssertNotCalled(t, "UpdateInStatus", mock.Anything, mock.Anything, mock.Anything)
}
