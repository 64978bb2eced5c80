package notify

import (
	"context"
	"log/slog"

	"github.com/marribaloch/Indian-food/internal/core/domain/model/order"
)

// LogNotifier writes notifications to the application log. It stands in for
// real channels in development and when no channel is configured.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "notify")}
}

// OrderStatusChanged logs the status update.
func (n *LogNotifier) OrderStatusChanged(_ context.Context, aggregate *order.Order) error {
	n.logger.Info("order status notification",
		"order_id", aggregate.ID(),
		"status", aggregate.Status().String(),
		"contact", aggregate.ContactEmail(),
	)
	return nil
}
