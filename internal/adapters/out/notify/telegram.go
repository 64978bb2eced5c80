package notify

import (
	"context"
	"fmt"

	"github.com/marribaloch/Indian-food/internal/core/domain/model/order"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// messageSender is the slice of the Telegram bot API the notifier needs.
type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier posts order status updates to an operations channel.
// Unlike email it does not reach the customer; it keeps the restaurant staff
// aware of order flow in real time.
type TelegramNotifier struct {
	bot    messageSender
	chatID int64
}

// NewTelegramNotifier creates a Telegram notifier from a bot token.
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

// NewTelegramNotifierWithSender creates a notifier around an existing sender.
// Used by tests.
func NewTelegramNotifierWithSender(bot messageSender, chatID int64) *TelegramNotifier {
	return &TelegramNotifier{bot: bot, chatID: chatID}
}

// OrderStatusChanged posts the status update to the operations chat.
func (n *TelegramNotifier) OrderStatusChanged(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	text := fmt.Sprintf("%s\n\n%s", subjectFor(aggregate), bodyFor(aggregate))
	_, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, text))
	return err
}
