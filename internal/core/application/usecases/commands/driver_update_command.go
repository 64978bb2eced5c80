package commands

import (
	"errors"

	"github.com/marribaloch/Indian-food/internal/core/domain/model/kernel"
	"github.com/marribaloch/Indian-food/internal/pkg/errs"
	"github.com/marribaloch/Indian-food/internal/pkg/guard"
)

var ErrDriverUpdateCommandIsNotConstructed = errors.New(
	"DriverUpdateCommand must be created via NewDriverUpdateCommand constructor",
)

// DriverUpdateCommand represents a driver's combined update: a location
// refresh, optionally accompanied by a progress report on one of their
// assigned orders.
type DriverUpdateCommand struct { //nolint:recvcheck //using for validation
	driverID  int64
	location  *kernel.Location
	orderID   *int64
	subStatus string

	guard guard.ConstructorGuard
}

// NewDriverUpdateCommand creates a combined driver update command.
// orderID may be nil when the driver only refreshes their position;
// subStatus accompanies the order report and is free-form.
func NewDriverUpdateCommand(
	driverID int64,
	location *kernel.Location,
	orderID *int64,
	subStatus string,
) (DriverUpdateCommand, error) {
	cmd := DriverUpdateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if driverID <= 0 {
		return DriverUpdateCommand{}, errs.NewValueIsInvalidError("driver id")
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			return DriverUpdateCommand{}, err
		}
		loc := *location
		cmd.location = &loc
	}
	if orderID != nil {
		if *orderID <= 0 {
			return DriverUpdateCommand{}, errs.NewValueIsInvalidError("order id")
		}
		id := *orderID
		cmd.orderID = &id
	}

	cmd.driverID = driverID
	cmd.subStatus = subStatus
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DriverUpdateCommand) Validate() error {
	return c.guard.Validate(ErrDriverUpdateCommandIsNotConstructed)
}

// DriverID returns the reporting driver's identifier.
func (c DriverUpdateCommand) DriverID() int64 {
	return c.driverID
}

// Location returns the reported coordinates, or nil when absent.
func (c DriverUpdateCommand) Location() *kernel.Location {
	return c.location
}

// OrderID returns the order being reported on, or nil for a pure
// location refresh.
func (c DriverUpdateCommand) OrderID() *int64 {
	return c.orderID
}

// SubStatus returns the driver-reported progress marker.
func (c DriverUpdateCommand) SubStatus() string {
	return c.subStatus
}
