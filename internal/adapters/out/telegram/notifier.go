// Package telegram delivers order lifecycle notifications to shop chats via
// the Telegram Bot API. Delivery is best effort: sends are retried with
// exponential backoff and failures are logged, never returned, so a broken
// bot cannot affect a committed state change.
package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/core/ports"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sethvargo/go-retry"
)

const (
	sendMaxRetries   = 3
	sendInitialDelay = 500 * time.Millisecond
)

// messageSender is the slice of the bot API the notifier needs.
type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier sends order event messages to the owning shop's chat.
type Notifier struct {
	bot    messageSender
	shops  ports.ShopRepository
	logger *slog.Logger
}

var _ ports.Notifier = (*Notifier)(nil)

// NewNotifier creates a notifier over the given bot.
func NewNotifier(bot messageSender, shops ports.ShopRepository, logger *slog.Logger) *Notifier {
	return &Notifier{
		bot:    bot,
		shops:  shops,
		logger: logger.With("component", "telegram_notifier"),
	}
}

// OrderAssigned reports that a courier took the order. When the shop asked
// for a delivery time, the message carries it so the chat sees the deadline
// the courier committed to.
func (n *Notifier) OrderAssigned(ctx context.Context, o *order.Order, courierName string) {
	text := fmt.Sprintf("Order %s: courier %s is on the way to pick it up.",
		o.ID(), courierName)
	if deliverBy := o.Details().DeliveryTime; deliverBy != nil {
		text = fmt.Sprintf("Order %s: courier %s is on the way to pick it up. Delivery is expected by %s.",
			o.ID(), courierName, deliverBy.Format(time.RFC822))
	}
	n.notifyShop(ctx, o, text)
}

// OrderStatusChanged reports a lifecycle transition.
func (n *Notifier) OrderStatusChanged(ctx context.Context, o *order.Order) {
	text := fmt.Sprintf("Order %s is now %s.", o.ID(), o.Status())
	n.notifyShop(ctx, o, text)
}

// OrderDelivered reports the courier's delivery hand-off.
func (n *Notifier) OrderDelivered(ctx context.Context, o *order.Order, deliveredAt time.Time) {
	text := fmt.Sprintf(
		"Order %s was delivered to %s at %s. It completes automatically unless the recipient disputes it.",
		o.ID(), o.Details().RecipientAddress, deliveredAt.Format(time.RFC822))
	n.notifyShop(ctx, o, text)
}

func (n *Notifier) notifyShop(ctx context.Context, o *order.Order, text string) {
	s, err := n.shops.Get(ctx, o.ShopID())
	if err != nil {
		n.logger.ErrorContext(ctx, "Failed to resolve shop chat for notification",
			"order_id", o.ID(), "shop_id", o.ShopID(), "error", err)
		return
	}

	if err = n.send(ctx, s.TelegramChatID(), text); err != nil {
		n.logger.ErrorContext(ctx, "Failed to send notification",
			"order_id", o.ID(), "chat_id", s.TelegramChatID(), "error", err)
	}
}

// send pushes one message, retrying transient bot API failures.
func (n *Notifier) send(ctx context.Context, chatID int64, text string) error {
	backoff := retry.WithMaxRetries(sendMaxRetries, retry.NewExponential(sendInitialDelay))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if _, err := n.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
}
