package notify

import (
	"context"
	"errors"

	"github.com/marribaloch/Indian-food/internal/core/domain/model/order"
	"github.com/marribaloch/Indian-food/internal/core/ports"
)

// MultiNotifier fans one notification out to several channels. Every channel
// is attempted even when an earlier one fails; the joined error reports all
// failures.
type MultiNotifier struct {
	notifiers []ports.Notifier
}

// NewMultiNotifier creates a fan-out notifier.
func NewMultiNotifier(notifiers ...ports.Notifier) *MultiNotifier {
	return &MultiNotifier{notifiers: notifiers}
}

// OrderStatusChanged notifies every configured channel.
func (n *MultiNotifier) OrderStatusChanged(ctx context.Context, aggregate *order.Order) error {
	var errs []error
	for _, notifier := range n.notifiers {
		if err := notifier.OrderStatusChanged(ctx, aggregate); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
