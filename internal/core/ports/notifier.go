package ports

import (
	"context"

	"github.com/marribaloch/Indian-food/internal/core/domain/model/order"
)

// Notifier delivers a status notification for an order to its contact.
// Delivery is best-effort: callers log a failure and annotate their response
// with a warning, but never fail the underlying operation because of it.
type Notifier interface {
	OrderStatusChanged(ctx context.Context, aggregate *order.Order) error
}
