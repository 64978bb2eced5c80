package order

import (
	"errors"
	"fmt"

	"github.com/marribaloch/Indian-food/internal/pkg/errs"
	"github.com/marribaloch/Indian-food/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created via
// NewLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is a value object representing one priced catalog entry in an
// order. The unit price is captured at order time and never re-read from the
// catalog afterwards, so historical orders keep the price they were sold at.
type LineItem struct { //nolint:recvcheck //using for validation
	menuItemID int64
	name       string
	unitPrice  int64
	quantity   int

	guard guard.ConstructorGuard
}

// NewLineItem creates a validated line item.
//
// menuItemID references the catalog entry the price was captured from; zero
// means the item carries no catalog provenance. name must be non-empty,
// unitPrice must be positive, and quantity must be at least 1.
func NewLineItem(menuItemID int64, name string, unitPrice int64, quantity int) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setName(name),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}

	item.menuItemID = menuItemID
	return item, nil
}

// Validate ensures the line item was created through NewLineItem.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// MenuItemID returns the catalog reference, or 0 when the item has none.
func (i LineItem) MenuItemID() int64 {
	return i.menuItemID
}

// Name returns the item name captured at order time.
func (i LineItem) Name() string {
	return i.name
}

// UnitPrice returns the per-unit price in whole VND captured at order time.
func (i LineItem) UnitPrice() int64 {
	return i.unitPrice
}

// Quantity returns the ordered quantity.
func (i LineItem) Quantity() int {
	return i.quantity
}

// Subtotal returns unit price times quantity.
func (i LineItem) Subtotal() int64 {
	return i.unitPrice * int64(i.quantity)
}

func (i *LineItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *LineItem) setUnitPrice(unitPrice int64) error {
	if unitPrice <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%d is not greater than 0", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not at least 1", quantity))
	}
	i.quantity = quantity
	return nil
}

// ItemsTotal sums the subtotals of the given line items.
func ItemsTotal(items []LineItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}
