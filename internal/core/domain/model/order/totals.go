package order

import (
	"errors"
	"fmt"

	"github.com/marribaloch/Indian-food/internal/pkg/errs"
	"github.com/marribaloch/Indian-food/internal/pkg/guard"
)

// ErrTotalsAreNotConstructed is returned when Totals were not created via
// NewTotals or RestoreTotals.
var ErrTotalsAreNotConstructed = errors.New("Totals must be created via NewTotals or RestoreTotals")

// Totals is the immutable fee breakdown of an order in whole VND.
// It is computed exactly once, at order creation, and the invariant
// grandTotal == itemsTotal + serviceFee + deliveryFee always holds.
// A breakdown is never stored as zero and patched later.
type Totals struct { //nolint:recvcheck //using for validation
	itemsTotal  int64
	deliveryFee int64
	serviceFee  int64
	grandTotal  int64

	guard guard.ConstructorGuard
}

// NewTotals creates a breakdown from its components, deriving the grand total.
// All components must be non-negative.
func NewTotals(itemsTotal, deliveryFee, serviceFee int64) (Totals, error) {
	t := Totals{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		nonNegative("items total", itemsTotal),
		nonNegative("delivery fee", deliveryFee),
		nonNegative("service fee", serviceFee),
	); err != nil {
		return Totals{}, err
	}

	t.itemsTotal = itemsTotal
	t.deliveryFee = deliveryFee
	t.serviceFee = serviceFee
	t.grandTotal = itemsTotal + deliveryFee + serviceFee
	return t, nil
}

// RestoreTotals rebuilds a breakdown from persistence, verifying that the
// stored grand total still equals the sum of its components. A mismatch means
// the row was partially written and must surface as corruption, not be
// silently recomputed.
func RestoreTotals(itemsTotal, deliveryFee, serviceFee, grandTotal int64) (Totals, error) {
	t, err := NewTotals(itemsTotal, deliveryFee, serviceFee)
	if err != nil {
		return Totals{}, err
	}

	if t.grandTotal != grandTotal {
		return Totals{}, errs.NewValueIsInvalidErrorWithCause("grand total",
			fmt.Errorf("stored %d does not equal %d+%d+%d", grandTotal, itemsTotal, serviceFee, deliveryFee))
	}

	return t, nil
}

// Validate ensures the breakdown was created through a constructor.
func (t Totals) Validate() error {
	return t.guard.Validate(ErrTotalsAreNotConstructed)
}

// ItemsTotal returns the line-item subtotal sum.
func (t Totals) ItemsTotal() int64 {
	return t.itemsTotal
}

// DeliveryFee returns the delivery fee.
func (t Totals) DeliveryFee() int64 {
	return t.deliveryFee
}

// ServiceFee returns the service fee.
func (t Totals) ServiceFee() int64 {
	return t.serviceFee
}

// GrandTotal returns items total + service fee + delivery fee.
func (t Totals) GrandTotal() int64 {
	return t.grandTotal
}

func nonNegative(name string, value int64) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause(name,
			fmt.Errorf("%d is negative", value))
	}
	return nil
}
