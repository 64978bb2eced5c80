package commands

import (
	"errors"

	"github.com/marribaloch/Indian-food/internal/pkg/errs"
	"github.com/marribaloch/Indian-food/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents a driver's request to claim an order from
// the dispatch feed.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  int64
	driverID int64

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command for a driver to accept an order.
func NewAcceptOrderCommand(orderID, driverID int64) (AcceptOrderCommand, error) {
	cmd := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if orderID <= 0 {
		return AcceptOrderCommand{}, errs.NewValueIsInvalidError("order id")
	}
	if driverID <= 0 {
		return AcceptOrderCommand{}, errs.NewValueIsInvalidError("driver id")
	}

	cmd.orderID = orderID
	cmd.driverID = driverID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being claimed.
func (c AcceptOrderCommand) OrderID() int64 {
	return c.orderID
}

// DriverID returns the identifier of the claiming driver.
func (c AcceptOrderCommand) DriverID() int64 {
	return c.driverID
}
