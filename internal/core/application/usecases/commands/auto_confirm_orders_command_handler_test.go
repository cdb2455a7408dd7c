package commands_test

import (
	"testing"
	"time"

	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAutoConfirmOrdersCommandHandler_Handle_CompletesExpired(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAutoConfirmOrdersCommand()

	courierID := newTestCourier(t).ID()
	first := newDeliveredOrder(t, courierID)
	second := newDeliveredOrder(t, courierID)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("CourierRepository").Return(courierRepo).Once()
	orderRepo.On("ListAutoConfirmable", ctx, mock.AnythingOfType("time.Time")).
		Return([]*order.Order{first, second}, nil).Once()
	orderRepo.On("UpdateInStatus", ctx, first, order.Delivered).Return(nil).Once()
	orderRepo.On("UpdateInStatus", ctx, second, order.Delivered).Return(nil).Once()
	courierRepo.On("ReleaseSlot", ctx, courierID).Return(nil).Twice()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("OrderStatusChanged", ctx, first).Once()
	notifier.On("OrderStatusChanged", ctx, second).Once()

	handler := commands.NewAutoConfirmOrdersCommandHandler(factory, notifier, 12*time.Hour)
	count, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, 2, count)
	require.Equal(t, order.Completed, first.Status())
	require.NotNil(t, first.AutoconfirmedAt())
	require.Nil(t, first.ConfirmedAt())
	orderRepo.AssertExpectations(t)
	courierRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestAutoConfirmOrdersCommandHandler_Handle_SkipsConcurrentlyConfirmed(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAutoConfirmOrdersCommand()

	courierID := newTestCourier(t).ID()
	contested := newDeliveredOrder(t, courierID)
	clean := newDeliveredOrder(t, courierID)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("CourierRepository").Return(courierRepo).Once()
	orderRepo.On("ListAutoConfirmable", ctx, mock.AnythingOfType("time.Time")).
		Return([]*order.Order{contested, clean}, nil).Once()
	// The shop confirmed the first order between the listing and the write.
	orderRepo.On("UpdateInStatus", ctx, contested, order.Delivered).
		Return(errs.NewInvalidStateError("order is not in delivered status")).Once()
	orderRepo.On("UpdateInStatus", ctx, clean, order.Delivered).Return(nil).Once()
	courierRepo.On("ReleaseSlot", ctx, courierID).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("OrderStatusChanged", ctx, clean).Once()

	handler := commands.NewAutoConfirmOrdersCommandHandler(factory, notifier, 12*time.Hour)
	count, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, 1, count)
	notifier.AssertNotCalled(t, "OrderStatusChanged", ctx, contested)
}

func TestAutoConfirmOrdersCommandHandler_Handle_NothingExpired(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAutoConfirmOrdersCommand()

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("CourierRepository").Return(new(MockCourierRepository)).Once()
	orderRepo.On("ListAutoConfirmable", ctx, mock.AnythingOfType("time.Time")).
		Return([]*order.Order{}, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)

	handler := commands.NewAutoConfirmOrdersCommandHandler(factory, notifier, 0)
	count, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, 0, count)
	notifier.AssertNotCalled(t, "OrderStatusChanged", mock.Anything, mock.Anything)
}
