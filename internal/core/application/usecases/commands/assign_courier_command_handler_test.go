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

func TestAssignCourierCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testCourier := newTestCourier(t)
	testOrder := newTestOrder(t, order.TypeNormal)

	cmd, err := commands.NewAssignCourierCommand(testOrder.ID(), testCourier.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		courierRepo.On("Get", ctx, testCourier.ID()).Return(testCourier, nil).Once(),
		courierRepo.On("AcquireSlot", ctx, testCourier.ID()).Return(nil).Once(),
		orderRepo.On("UpdateInStatus", ctx, testOrder, order.Created).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("OrderAssigned", ctx, testOrder, testCourier.Name()).Once()

	handler := commands.NewAssignCourierCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.Accepted, testOrder.Status())
	require.NotNil(t, testOrder.CourierID())
	require.Equal(t, testCourier.ID(), *testOrder.CourierID())
	orderRepo.AssertExpectations(t)
	courierRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAssignCourierCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AssignCourierCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewAssignCourierCommandHandler(factory, ports.NewNopNotifier())
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAssignCourierCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestAssignCourierCommandHandler_Handle_CourierOffShift(t *testing.T) {
	ctx := t.Context()

	testCourier := newTestCourier(t)
	testCourier.Deactivate()
	testOrder := newTestOrder(t, order.TypeNormal)

	cmd, err := commands.NewAssignCourierCommand(testOrder.ID(), testCourier.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		courierRepo.On("Get", ctx, testCourier.ID()).Return(testCourier, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCourierCommandHandler(factory, ports.NewNopNotifier())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrCourierUnavailable)
	courierRepo.AssertNotCalled(t, "AcquireSlot", mock.Anything, mock.Anything)
}

func TestAssignCourierCommandHandler_Handle_CapacityExceeded(t *testing.T) {
	ctx := t.Context()

	testCourier := newTestCourier(t)
	testOrder := newTestOrder(t, order.TypeNormal)

	cmd, err := commands.NewAssignCourierCommand(testOrder.ID(), testCourier.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		courierRepo.On("Get", ctx, testCourier.ID()).Return(testCourier, nil).Once(),
		courierRepo.On("AcquireSlot", ctx, testCourier.ID()).
			Return(errs.NewCapacityExceededError(testCourier.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)

	handler := commands.NewAssignCourierCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrCapacityExceeded)
	require.Equal(t, order.Created, testOrder.Status())
	notifier.AssertNotCalled(t, "OrderAssigned", mock.Anything, mock.Anything, mock.Anything)
}

func TestAssignCourierCommandHandler_Handle_OrderAlreadyAssigned(t *testing.T) {
	ctx := t.Context()

	testCourier := newTestCourier(t)
	testOrder := newAcceptedOrder(t, newTestCourier(t).ID())

	cmd, err := commands.NewAssignCourierCommand(testOrder.ID(), testCourier.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCourierCommandHandler(factory, ports.NewNopNotifier())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	courierRepo.AssertNotCalled(t, "AcquireSlot", mock.Anything, mock.Anything)
	orderRepo.AssertNotCalled(t, "UpdateInStatus", mock.Anything, mock.Anything, mock.Anything)
}
