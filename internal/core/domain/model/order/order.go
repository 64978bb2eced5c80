package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/marribaloch/Indian-food/internal/core/domain/model/kernel"
	"github.com/marribaloch/Indian-food/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderIDAlreadyAssigned is returned when the store-assigned identifier
	// is set a second time.
	ErrOrderIDAlreadyAssigned = errors.New("order id is already assigned")
)

// Driver-reported sub-statuses with defined effects. Anything else a driver
// reports is ignored as a no-op rather than guessed at.
const (
	// SubStatusPickedUp stamps the pickup timestamp once. It does not change
	// the canonical status.
	SubStatusPickedUp = "picked_up"

	// SubStatusDelivered stamps the delivery timestamp once and finalizes the
	// canonical status to delivered.
	SubStatusDelivered = "delivered"
)

// Order is the aggregate root for a customer order. It owns the captured line
// items, the immutable fee breakdown, the lifecycle status, and the driver
// linkage.
//
// Invariants:
//   - at least one line item; every item individually valid
//   - totals computed once at creation; grand total equals the component sum
//   - delivered/cancelled are terminal: status, driver, and totals freeze
//   - the driver reference is set at most once, ever
//   - an order holding a driver reference can never return to pending
//   - pickup and delivery timestamps are each set once, pickup <= delivery
type Order struct {
	// id is the store-assigned monotonic identifier; 0 until persisted
	id int64

	// customerID references the owning account; nil for guest orders that are
	// identified by contact email only
	customerID *int64

	// contactEmail is where lifecycle notifications go
	contactEmail string

	items  []LineItem
	totals Totals
	status Status

	// driverID is the assigned driver (nil if unassigned)
	driverID *int64

	// driverStatus is the last driver-reported sub-status; free-form but only
	// SubStatusPickedUp and SubStatusDelivered have effects
	driverStatus string

	pickedUpAt  *time.Time
	deliveredAt *time.Time

	// dropoff is the delivery destination; required only under dynamic pricing
	dropoff *kernel.Location

	createdAt time.Time

	isConstructed bool
}

// NewOrder creates a new pending Order with its totals fixed at creation time.
//
// customerID may be nil for guest orders; contactEmail is always required so
// the owner can be notified of status changes. dropoff may be nil when flat
// pricing is in effect.
func NewOrder(
	customerID *int64,
	contactEmail string,
	items []LineItem,
	totals Totals,
	dropoff *kernel.Location,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setContactEmail(contactEmail),
		o.setItems(items),
		o.setTotals(totals),
		o.setDropoff(dropoff),
	); err != nil {
		return nil, err
	}

	if got, want := totals.ItemsTotal(), ItemsTotal(items); got != want {
		return nil, errs.NewValueIsInvalidErrorWithCause("items total",
			fmt.Errorf("breakdown carries %d but line items sum to %d", got, want))
	}

	o.customerID = customerID
	o.createdAt = createdAt
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. All invariants are
// re-validated so corrupt rows surface as errors instead of invalid aggregates.
func RestoreOrder(
	id int64,
	customerID *int64,
	contactEmail string,
	items []LineItem,
	totals Totals,
	status Status,
	driverID *int64,
	driverStatus string,
	pickedUpAt *time.Time,
	deliveredAt *time.Time,
	dropoff *kernel.Location,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(customerID, contactEmail, items, totals, dropoff, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.id = id
	o.status = status
	o.driverID = driverID
	o.driverStatus = driverStatus
	o.pickedUpAt = pickedUpAt
	o.deliveredAt = deliveredAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// AssignID records the store-assigned identifier after the first insert.
// The identifier is write-once.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return ErrOrderIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not a positive identifier", id))
	}

	o.id = id
	return nil
}

// ID returns the store-assigned identifier, or 0 before the first persist.
func (o *Order) ID() int64 {
	return o.id
}

// CustomerID returns the owning account id, or nil for guest orders.
func (o *Order) CustomerID() *int64 {
	return o.customerID
}

// ContactEmail returns the notification address for the order.
func (o *Order) ContactEmail() string {
	return o.contactEmail
}

// Items returns a copy of the captured line items.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// Totals returns the immutable fee breakdown.
func (o *Order) Totals() Totals {
	return o.totals
}

// Status returns the current canonical lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Driver returns the assigned driver's id, or nil if unassigned.
func (o *Order) Driver() *int64 {
	return o.driverID
}

// DriverStatus returns the last driver-reported sub-status.
func (o *Order) DriverStatus() string {
	return o.driverStatus
}

// PickedUpAt returns the pickup timestamp, or nil if not yet reported.
func (o *Order) PickedUpAt() *time.Time {
	return o.pickedUpAt
}

// DeliveredAt returns the delivery timestamp, or nil if not yet reported.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Dropoff returns the delivery destination, or nil when none was supplied.
func (o *Order) Dropoff() *kernel.Location {
	return o.dropoff
}

// CreatedAt returns the immutable creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ChangeStatus performs an admin/restaurant-authorized transition to next.
//
// Rules enforced:
//   - next must be a member of the enumerated set (invalid input otherwise)
//   - terminal orders reject every transition with a conflict
//   - an order with a driver assigned can never return to pending
//
// Moving to delivered stamps the delivery timestamp if it is not already set.
func (o *Order) ChangeStatus(next Status, at time.Time) error {
	newStatus, err := o.status.Transition(next)
	if err != nil {
		return err
	}

	if newStatus == Pending && o.driverID != nil {
		return errs.NewConflictError("order with a driver cannot return to pending")
	}

	o.status = newStatus
	if newStatus == Delivered {
		o.stampDeliveredAt(at)
	}
	return nil
}

// Accept atomically records driver acceptance: it sets the driver reference
// and advances the status toward out_for_delivery without ever moving it
// backward (ready stays ready).
//
// Acceptance is rejected with a conflict when a driver is already assigned or
// when the current status does not permit acceptance.
func (o *Order) Accept(driverID int64) error {
	if driverID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("driver id",
			fmt.Errorf("%d is not a positive identifier", driverID))
	}

	if o.driverID != nil {
		return errs.NewConflictError("order already assigned")
	}

	newStatus, err := o.status.OnAccept()
	if err != nil {
		return err
	}

	o.driverID = &driverID
	o.status = newStatus
	return nil
}

// ReportDriverProgress applies a driver-reported sub-status.
//
// Only the assigned driver may report; anyone else gets a conflict, as does
// any report against a terminal order. SubStatusPickedUp stamps the pickup
// timestamp once and leaves the canonical status untouched. SubStatusDelivered
// stamps the delivery timestamp once and finalizes the order. Any other
// sub-status is a no-op.
//
// The returned flag reports whether the canonical status changed, so callers
// know when to fire the owner notification.
func (o *Order) ReportDriverProgress(driverID int64, subStatus string, at time.Time) (bool, error) {
	if o.driverID == nil || *o.driverID != driverID {
		return false, errs.NewConflictError("order is assigned to another driver")
	}

	if o.status.IsTerminal() {
		return false, errs.NewConflictErrorWithCause("order is closed",
			fmt.Errorf("%s is terminal and permits no driver update", o.status))
	}

	switch subStatus {
	case SubStatusPickedUp:
		o.driverStatus = SubStatusPickedUp
		if o.pickedUpAt == nil {
			stamp := at
			o.pickedUpAt = &stamp
		}
		return false, nil

	case SubStatusDelivered:
		o.driverStatus = SubStatusDelivered
		o.stampDeliveredAt(at)
		o.status = Delivered
		return true, nil

	default:
		return false, nil
	}
}

func (o *Order) stampDeliveredAt(at time.Time) {
	if o.deliveredAt != nil {
		return
	}

	// keep pickup <= delivery even with a skewed caller clock
	if o.pickedUpAt != nil && at.Before(*o.pickedUpAt) {
		at = *o.pickedUpAt
	}

	stamp := at
	o.deliveredAt = &stamp
}

func (o *Order) setContactEmail(contactEmail string) error {
	contactEmail = strings.ToLower(strings.TrimSpace(contactEmail))
	if contactEmail == "" {
		return errs.NewValueIsRequiredError("contact email")
	}
	if !strings.Contains(contactEmail, "@") {
		return errs.NewValueIsInvalidError("contact email")
	}

	o.contactEmail = contactEmail
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setTotals(totals Totals) error {
	if err := totals.Validate(); err != nil {
		return err
	}

	o.totals = totals
	return nil
}

func (o *Order) setDropoff(dropoff *kernel.Location) error {
	if dropoff == nil {
		return nil
	}
	if err := dropoff.Validate(); err != nil {
		return err
	}

	loc := *dropoff
	o.dropoff = &loc
	return nil
}
