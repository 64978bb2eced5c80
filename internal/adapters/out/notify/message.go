// Package notify delivers best-effort order status notifications over SMTP
// and Telegram. Failures here never fail the operation that triggered them;
// callers log the error and annotate their response with a warning.
package notify

import (
	"fmt"
	"strings"

	"github.com/marribaloch/Indian-food/internal/core/domain/model/kernel"
	"github.com/marribaloch/Indian-food/internal/core/domain/model/order"
)

func subjectFor(aggregate *order.Order) string {
	return fmt.Sprintf("Order #%d is %s", aggregate.ID(), humanStatus(aggregate.Status()))
}

func bodyFor(aggregate *order.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Your order #%d is now %s.\n\n", aggregate.ID(), humanStatus(aggregate.Status()))
	for _, item := range aggregate.Items() {
		fmt.Fprintf(&b, "  %dx %s - %s\n", item.Quantity(), item.Name(), kernel.FormatVND(item.Subtotal()))
	}

	totals := aggregate.Totals()
	fmt.Fprintf(&b, "\nItems: %s\n", kernel.FormatVND(totals.ItemsTotal()))
	fmt.Fprintf(&b, "Delivery: %s\n", kernel.FormatVND(totals.DeliveryFee()))
	if totals.ServiceFee() > 0 {
		fmt.Fprintf(&b, "Service: %s\n", kernel.FormatVND(totals.ServiceFee()))
	}
	fmt.Fprintf(&b, "Total: %s\n", kernel.FormatVND(totals.GrandTotal()))

	return b.String()
}

func humanStatus(status order.Status) string {
	return strings.ReplaceAll(status.String(), "_", " ")
}
