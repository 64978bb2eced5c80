package order

import (
	"fmt"

	"github.com/marribaloch/Indian-food/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	pending ──> confirmed ──> preparing ──┬──> out_for_delivery ──> delivered
//	                                      └──> ready ─────────────> delivered
//	cancelled is reachable from every non-terminal state
//
// delivered and cancelled are terminal: no transition leaves them.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first placed.
	// Orders stay pending until an admin or the restaurant promotes them.
	Pending

	// Confirmed indicates the restaurant has accepted the order.
	Confirmed

	// Preparing indicates the kitchen is working on the order.
	Preparing

	// OutForDelivery indicates a driver is carrying the order to the customer.
	OutForDelivery

	// Ready indicates the order is packed and waiting for pickup.
	Ready

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was abandoned. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Confirmed:      "confirmed",
		Preparing:      "preparing",
		OutForDelivery: "out_for_delivery",
		Ready:          "ready",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "pending",
		Confirmed:      "confirmed",
		Preparing:      "preparing",
		OutForDelivery: "out_for_delivery",
		Ready:          "ready",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// StatusFromString parses the persisted/wire representation of a status.
// Anything outside the fixed enumerated set is rejected as invalid input,
// never clamped to a known value.
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a recognized status", value),
	)
}

// Validate checks if the Status value is a member of the enumerated set.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase wire name of the status, e.g. "out_for_delivery".
// It returns "unknown" for invalid values and implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsDispatchable reports whether orders in this status are surfaced to
// drivers on the dispatch feed. Pending orders are deliberately excluded:
// the feed only shows orders the restaurant has already promoted.
func (s Status) IsDispatchable() bool {
	return s == Confirmed || s == Preparing || s == Ready
}

// CanAccept reports whether a driver may accept an order in this status.
// Acceptance is wider than the dispatch feed: a driver who learned of a
// pending order out of band may still take it, but nothing in or past
// out_for_delivery can be accepted.
func (s Status) CanAccept() bool {
	switch s {
	case Pending, Confirmed, Preparing, Ready:
		return true
	default:
		return false
	}
}

// OnAccept returns the status an order moves to when a driver accepts it.
// Acceptance never moves the status backward: ready stays ready, everything
// else advances to out_for_delivery.
//
// Returns a conflict error when acceptance is not permitted from s.
func (s Status) OnAccept() (Status, error) {
	if !s.CanAccept() {
		return Unknown, errs.NewConflictErrorWithCause(
			"order is not dispatchable",
			fmt.Errorf("%s does not permit driver acceptance", s),
		)
	}

	if s == Ready {
		return Ready, nil
	}
	return OutForDelivery, nil
}

// Transition validates an admin/restaurant-authorized move to next.
//
// Rules enforced:
//   - next must be a member of the enumerated set (invalid input otherwise)
//   - a terminal status permits no transition (conflict)
//
// Movement between non-terminal states is otherwise free-form: restaurants
// correct statuses in both directions during service.
func (s Status) Transition(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}

	if s.IsTerminal() {
		return Unknown, errs.NewConflictErrorWithCause(
			"order is closed",
			fmt.Errorf("%s is terminal and permits no transition", s),
		)
	}

	return next, nil
}
