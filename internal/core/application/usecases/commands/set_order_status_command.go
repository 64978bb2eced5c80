package commands

import (
	"errors"

	"github.com/marribaloch/Indian-food/internal/core/domain/model/order"
	"github.com/marribaloch/Indian-food/internal/pkg/errs"
	"github.com/marribaloch/Indian-food/internal/pkg/guard"
)

var ErrSetOrderStatusCommandIsNotConstructed = errors.New(
	"SetOrderStatusCommand must be created via NewSetOrderStatusCommand constructor",
)

// SetOrderStatusCommand represents an operator request to move an order to a
// new canonical status.
type SetOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	next    order.Status

	guard guard.ConstructorGuard
}

// NewSetOrderStatusCommand creates a command to change an order's status.
// The target status must be a recognized member of the status enum; whether
// the transition itself is legal is decided by the aggregate.
func NewSetOrderStatusCommand(orderID int64, next order.Status) (SetOrderStatusCommand, error) {
	cmd := SetOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if orderID <= 0 {
		return SetOrderStatusCommand{}, errs.NewValueIsInvalidError("order id")
	}
	if err := next.Validate(); err != nil {
		return SetOrderStatusCommand{}, err
	}

	cmd.orderID = orderID
	cmd.next = next
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c SetOrderStatusCommand) OrderID() int64 {
	return c.orderID
}

// Next returns the target status.
func (c SetOrderStatusCommand) Next() order.Status {
	return c.next
}
