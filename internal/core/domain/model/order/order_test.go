package order_test

import (
	"testing"
	"time"

	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails() order.Details {
	return order.Details{
		RecipientName:    "Anna",
		RecipientPhone:   "+79990001122",
		RecipientAddress: "Lenina 10, apt 3",
		PickupAddress:    "Mira 1",
	}
}

func newTestOrder(t *testing.T, orderType order.Type) *order.Order {
	t.Helper()
	pricing := order.CalculatePricing(orderType, decimal.NewFromInt(3000), decimal.Zero, decimal.Zero)
	o, err := order.NewOrder(uuid.New(), uuid.New(), uuid.New(), orderType, pricing, validDetails(), time.Now())
	require.NoError(t, err)
	return o
}

func deliverOrder(t *testing.T, o *order.Order, at time.Time) {
	t.Helper()
	require.NoError(t, o.Assign(uuid.New(), at))
	require.NoError(t, o.ChangeStatus(order.PickingUp, at))
	require.NoError(t, o.ChangeStatus(order.InProgress, at))
	require.NoError(t, o.ChangeStatus(order.Delivered, at))
}

func TestNewOrder(t *testing.T) {
	t.Run("creates order in created status with frozen price", func(t *testing.T) {
		o := newTestOrder(t, order.TypeNormal)

		assert.Equal(t, order.Created, o.Status())
		assert.Nil(t, o.CourierID())
		assert.True(t, o.Price().Equal(decimal.NewFromInt(3000)))
		assert.Nil(t, o.AcceptedAt())
		assert.Nil(t, o.DeliveredAt())
	})

	t.Run("requires identifiers and mandatory details", func(t *testing.T) {
		pricing := order.CalculatePricing(order.TypeNormal, decimal.NewFromInt(3000), decimal.Zero, decimal.Zero)

		_, err := order.NewOrder(uuid.Nil, uuid.New(), uuid.New(), order.TypeNormal, pricing, validDetails(), time.Now())
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		details := validDetails()
		details.PickupAddress = ""
		_, err = order.NewOrder(uuid.New(), uuid.New(), uuid.New(), order.TypeNormal, pricing, details, time.Now())
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects unknown order type", func(t *testing.T) {
		pricing := order.CalculatePricing(order.TypeNormal, decimal.NewFromInt(3000), decimal.Zero, decimal.Zero)
		_, err := order.NewOrder(uuid.New(), uuid.New(), uuid.New(), order.Type("priority"), pricing, validDetails(), time.Now())
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	var zero order.Order
	assert.ErrorIs(t, zero.Validate(), order.ErrOrderIsNotConstructed)

	o := newTestOrder(t, order.TypeNormal)
	assert.NoError(t, o.Validate())
}

func TestOrder_Assign(t *testing.T) {
	t.Run("moves created order to accepted and stamps acceptedAt", func(t *testing.T) {
		o := newTestOrder(t, order.TypeNormal)
		courierID := uuid.New()
		at := time.Now()

		require.NoError(t, o.Assign(courierID, at))

		assert.Equal(t, order.Accepted, o.Status())
		require.NotNil(t, o.CourierID())
		assert.Equal(t, courierID, *o.CourierID())
		require.NotNil(t, o.AcceptedAt())
		assert.Equal(t, at, *o.AcceptedAt())
	})

	t.Run("rejects assignment of a non-created order", func(t *testing.T) {
		o := newTestOrder(t, order.TypeNormal)
		require.NoError(t, o.Assign(uuid.New(), time.Now()))

		err := o.Assign(uuid.New(), time.Now())
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("rejects nil courier id", func(t *testing.T) {
		o := newTestOrder(t, order.TypeNormal)
		assert.ErrorIs(t, o.Assign(uuid.Nil, time.Now()), errs.ErrValueIsRequired)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("walks the forward path and stamps deliveredAt", func(t *testing.T) {
		o := newTestOrder(t, order.TypeNormal)
		at := time.Now()
		deliverOrder(t, o, at)

		assert.Equal(t, order.Delivered, o.Status())
		require.NotNil(t, o.DeliveredAt())
		assert.Equal(t, at, *o.DeliveredAt())
	})

	t.Run("rejects skipping states", func(t *testing.T) {
		o := newTestOrder(t, order.TypeNormal)
		require.NoError(t, o.Assign(uuid.New(), time.Now()))

		err := o.ChangeStatus(order.Delivered, time.Now())
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Nil(t, o.DeliveredAt())
	})

	t.Run("accepted and completed are owned by other operations", func(t *testing.T) {
		o := newTestOrder(t, order.TypeNormal)
		assert.ErrorIs(t, o.ChangeStatus(order.Accepted, time.Now()), errs.ErrInvalidState)

		deliverOrder(t, o, time.Now())
		assert.ErrorIs(t, o.ChangeStatus(order.Completed, time.Now()), errs.ErrInvalidState)
	})

	t.Run("cancellation is allowed before pickup only", func(t *testing.T) {
		o := newTestOrder(t, order.TypeNormal)
		require.NoError(t, o.Assign(uuid.New(), time.Now()))
		require.NoError(t, o.ChangeStatus(order.Cancelled, time.Now()))

		inFlight := newTestOrder(t, order.TypeNormal)
		require.NoError(t, inFlight.Assign(uuid.New(), time.Now()))
		require.NoError(t, inFlight.ChangeStatus(order.PickingUp, time.Now()))
		assert.ErrorIs(t, inFlight.ChangeStatus(order.Cancelled, time.Now()), errs.ErrInvalidState)
	})

	t.Run("dispute is reachable from any non-terminal state", func(t *testing.T) {
		o := newTestOrder(t, order.TypeNormal)
		deliverOrder(t, o, time.Now())

		require.NoError(t, o.ChangeStatus(order.Disputed, time.Now()))
		assert.Equal(t, order.Disputed, o.Status())
	})
}

func TestOrder_Confirm(t *testing.T) {
	t.Run("completes a delivered order and stamps confirmedAt only", func(t *testing.T) {
		o := newTestOrder(t, order.TypeNormal)
		deliverOrder(t, o, time.Now())
		at := time.Now()

		require.NoError(t, o.Confirm(at))

		assert.Equal(t, order.Completed, o.Status())
		require.NotNil(t, o.ConfirmedAt())
		assert.Equal(t, at, *o.ConfirmedAt())
		assert.Nil(t, o.AutoconfirmedAt())
	})

	t.Run("rejects a non-delivered order", func(t *testing.T) {
		o := newTestOrder(t, order.TypeNormal)
		assert.ErrorIs(t, o.Confirm(time.Now()), errs.ErrInvalidState)
	})

	t.Run("confirm and auto-confirm are mutually exclusive", func(t *testing.T) {
		o := newTestOrder(t, order.TypeNormal)
		deliverOrder(t, o, time.Now())
		require.NoError(t, o.Confirm(time.Now()))

		assert.ErrorIs(t, o.AutoConfirm(time.Now()), errs.ErrInvalidState)
		assert.Nil(t, o.AutoconfirmedAt())
	})
}

func TestOrder_AutoConfirm(t *testing.T) {
	o := newTestOrder(t, order.TypeNormal)
	deliverOrder(t, o, time.Now())
	at := time.Now()

	require.NoError(t, o.AutoConfirm(at))

	assert.Equal(t, order.Completed, o.Status())
	require.NotNil(t, o.AutoconfirmedAt())
	assert.Nil(t, o.ConfirmedAt())

	// A second sweep pass must not double-stamp.
	assert.ErrorIs(t, o.AutoConfirm(time.Now()), errs.ErrInvalidState)
	assert.Equal(t, at, *o.AutoconfirmedAt())
}

func TestOrder_RateCourier(t *testing.T) {
	completedOrder := func(t *testing.T) *order.Order {
		o := newTestOrder(t, order.TypeNormal)
		deliverOrder(t, o, time.Now())
		require.NoError(t, o.Confirm(time.Now()))
		return o
	}

	t.Run("accepts a rating in range on a completed order", func(t *testing.T) {
		o := completedOrder(t)

		require.NoError(t, o.RateCourier(3, "quick and careful"))

		require.NotNil(t, o.CourierRating())
		assert.Equal(t, 3, *o.CourierRating())
		assert.Equal(t, "quick and careful", o.CourierFeedback())
	})

	t.Run("rejects out-of-range ratings before any state check", func(t *testing.T) {
		o := newTestOrder(t, order.TypeNormal)

		assert.ErrorIs(t, o.RateCourier(6, ""), errs.ErrValueIsOutOfRange)
		assert.ErrorIs(t, o.RateCourier(0, ""), errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects rating of an active order", func(t *testing.T) {
		o := newTestOrder(t, order.TypeNormal)
		assert.ErrorIs(t, o.RateCourier(4, ""), errs.ErrInvalidState)
	})

	t.Run("rating is written at most once", func(t *testing.T) {
		o := completedOrder(t)
		require.NoError(t, o.RateCourier(5, ""))

		err := o.RateCourier(1, "changed my mind")
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, 5, *o.CourierRating())
	})

	t.Run("disputed orders can still be rated", func(t *testing.T) {
		o := newTestOrder(t, order.TypeNormal)
		deliverOrder(t, o, time.Now())
		require.NoError(t, o.ChangeStatus(order.Disputed, time.Now()))

		assert.NoError(t, o.RateCourier(2, ""))
	})
}
