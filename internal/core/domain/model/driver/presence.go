package driver

import (
	"errors"
	"fmt"
	"time"

	"github.com/marribaloch/Indian-food/internal/core/domain/model/kernel"
	"github.com/marribaloch/Indian-food/internal/pkg/errs"
	"github.com/marribaloch/Indian-food/internal/pkg/guard"
)

// ErrPresenceIsNotConstructed is returned when a Presence was not created via
// NewPresence.
var ErrPresenceIsNotConstructed = errors.New("Presence must be created via NewPresence constructor")

// Presence is a driver's self-reported availability and last known position.
//
// The registry holds exactly one Presence per driver id and overwrites it on
// every report. Absence of a row means "unknown/unavailable". Location may be
// nil when the driver's device did not supply coordinates.
type Presence struct { //nolint:recvcheck //using for validation
	driverID  int64
	available bool
	location  *kernel.Location
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewPresence creates a presence report for a driver.
// driverID must be positive; location is optional but, when supplied, must be
// a properly constructed Location.
func NewPresence(driverID int64, available bool, location *kernel.Location, updatedAt time.Time) (Presence, error) {
	p := Presence{
		guard: guard.NewConstructorGuard(),
	}

	if driverID <= 0 {
		return Presence{}, errs.NewValueIsInvalidErrorWithCause("driver id",
			fmt.Errorf("%d is not a positive identifier", driverID))
	}

	if location != nil {
		if err := location.Validate(); err != nil {
			return Presence{}, err
		}
		loc := *location
		p.location = &loc
	}

	p.driverID = driverID
	p.available = available
	p.updatedAt = updatedAt
	return p, nil
}

// Validate ensures the Presence was created through NewPresence.
func (p Presence) Validate() error {
	return p.guard.Validate(ErrPresenceIsNotConstructed)
}

// DriverID returns the reporting driver's identifier.
func (p Presence) DriverID() int64 {
	return p.driverID
}

// Available reports whether the driver declared themselves available.
func (p Presence) Available() bool {
	return p.available
}

// Location returns the driver's last known position, or nil when unreported.
func (p Presence) Location() *kernel.Location {
	return p.location
}

// UpdatedAt returns the time of the report.
func (p Presence) UpdatedAt() time.Time {
	return p.updatedAt
}

// IsStale reports whether the presence is older than maxAge as of now.
// The registry never expires rows itself; staleness is the reader's call.
func (p Presence) IsStale(now time.Time, maxAge time.Duration) bool {
	return now.Sub(p.updatedAt) > maxAge
}
