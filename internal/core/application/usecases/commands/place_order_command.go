package commands

import (
	"errors"
	"strings"

	"github.com/marribaloch/Indian-food/internal/core/domain/model/kernel"
	"github.com/marribaloch/Indian-food/internal/pkg/errs"
	"github.com/marribaloch/Indian-food/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderItem is one cart line as submitted by the client.
// MenuItemID of zero means an off-catalog item priced by UnitPrice;
// a positive MenuItemID is re-priced from the catalog and UnitPrice ignored.
type PlaceOrderItem struct {
	MenuItemID int64
	Name       string
	UnitPrice  int64
	Quantity   int
}

// PlaceOrderCommand represents a request to place a new food order.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(nil, "buyer@example.com", items, &dropoff)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerID   *int64
	contactEmail string
	items        []PlaceOrderItem
	dropoff      *kernel.Location

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order.
// customerID may be nil for guest checkout; the handler resolves the email
// to an account. dropoff may be nil when the client has no coordinates.
func NewPlaceOrderCommand(
	customerID *int64,
	contactEmail string,
	items []PlaceOrderItem,
	dropoff *kernel.Location,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setContactEmail(contactEmail),
		cmd.setItems(items),
		cmd.setDropoff(dropoff),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	cmd.customerID = customerID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// CustomerID returns the authenticated customer id, or nil for guests.
func (c PlaceOrderCommand) CustomerID() *int64 {
	return c.customerID
}

// ContactEmail returns the normalized contact email for the order.
func (c PlaceOrderCommand) ContactEmail() string {
	return c.contactEmail
}

// Items returns the submitted cart lines.
func (c PlaceOrderCommand) Items() []PlaceOrderItem {
	return c.items
}

// Dropoff returns the delivery coordinates, or nil when unknown.
func (c PlaceOrderCommand) Dropoff() *kernel.Location {
	return c.dropoff
}

func (c *PlaceOrderCommand) setContactEmail(contactEmail string) error {
	email := strings.ToLower(strings.TrimSpace(contactEmail))
	if email == "" {
		return errs.NewValueIsRequiredError("contact email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("contact email")
	}

	c.contactEmail = email
	return nil
}

func (c *PlaceOrderCommand) setItems(items []PlaceOrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if item.Quantity < 1 {
			return errs.NewValueIsInvalidError("item quantity")
		}
		if item.MenuItemID < 0 {
			return errs.NewValueIsInvalidError("menu item id")
		}
	}

	c.items = items
	return nil
}

func (c *PlaceOrderCommand) setDropoff(dropoff *kernel.Location) error {
	if dropoff != nil {
		if err := dropoff.Validate(); err != nil {
			return err
		}
		loc := *dropoff
		c.dropoff = &loc
	}
	return nil
}
