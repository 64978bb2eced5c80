package commands

import (
	"errors"

	"github.com/marribaloch/Indian-food/internal/core/domain/model/kernel"
	"github.com/marribaloch/Indian-food/internal/pkg/errs"
	"github.com/marribaloch/Indian-food/internal/pkg/guard"
)

var ErrReportPresenceCommandIsNotConstructed = errors.New(
	"ReportPresenceCommand must be created via NewReportPresenceCommand constructor",
)

// ReportPresenceCommand represents a driver's availability report.
type ReportPresenceCommand struct { //nolint:recvcheck //using for validation
	driverID  int64
	available bool
	location  *kernel.Location

	guard guard.ConstructorGuard
}

// NewReportPresenceCommand creates a presence report command.
// location is optional; when supplied it must be valid coordinates.
func NewReportPresenceCommand(driverID int64, available bool, location *kernel.Location) (ReportPresenceCommand, error) {
	cmd := ReportPresenceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if driverID <= 0 {
		return ReportPresenceCommand{}, errs.NewValueIsInvalidError("driver id")
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			return ReportPresenceCommand{}, err
		}
		loc := *location
		cmd.location = &loc
	}

	cmd.driverID = driverID
	cmd.available = available
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportPresenceCommand) Validate() error {
	return c.guard.Validate(ErrReportPresenceCommandIsNotConstructed)
}

// DriverID returns the reporting driver's identifier.
func (c ReportPresenceCommand) DriverID() int64 {
	return c.driverID
}

// Available reports the declared availability.
func (c ReportPresenceCommand) Available() bool {
	return c.available
}

// Location returns the reported coordinates, or nil when absent.
func (c ReportPresenceCommand) Location() *kernel.Location {
	return c.location
}
