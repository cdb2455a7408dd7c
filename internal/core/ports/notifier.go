package ports

import (
	"context"
	"time"

	"courierhub/internal/core/domain/model/order"
)

// Notifier pushes order lifecycle events to the parties' bot chats.
//
// Delivery is best effort and strictly fire-and-forget: implementations
// swallow and log their own failures, which is why the methods return no
// error: a notification problem must never roll back or retry a committed
// state change. Handlers call the notifier only after a successful commit.
type Notifier interface {
	// OrderAssigned reports that a courier took the order.
	OrderAssigned(ctx context.Context, o *order.Order, courierName string)

	// OrderStatusChanged reports a lifecycle transition.
	OrderStatusChanged(ctx context.Context, o *order.Order)

	// OrderDelivered reports the courier's delivery hand-off.
	OrderDelivered(ctx context.Context, o *order.Order, deliveredAt time.Time)
}

// NopNotifier is a Notifier that does nothing. It is the default in tests
// and in deployments without a configured bot.
type NopNotifier struct{}

// NewNopNotifier creates a NopNotifier.
func NewNopNotifier() NopNotifier {
	return NopNotifier{}
}

func (NopNotifier) OrderAssigned(context.Context, *order.Order, string) {}

func (NopNotifier) OrderStatusChanged(context.Context, *order.Order) {}

func (NopNotifier) OrderDelivered(context.Context, *order.Order, time.Time) {}
