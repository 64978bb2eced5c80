// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, route estimation,
// notification delivery, catalog lookup and identity resolution.
// These interfaces establish dependency inversion and keep the use cases
// testable without a database or network.
package ports

import (
	"context"

	"github.com/marribaloch/Indian-food/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order and assigns its database-generated id to the
	// aggregate. The order must be valid and must not carry an id yet.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order, but only if the stored
	// row still carries expectedStatus and expectedDriver (nil meaning
	// unassigned), both as the caller read them. A stale precondition means
	// another writer got there first and yields errs.ErrConflict. Status
	// alone is not enough: a claim on a ready order keeps the status, so a
	// writer holding a pre-claim snapshot would otherwise erase the
	// assignment.
	Update(ctx context.Context, aggregate *order.Order, expectedStatus order.Status, expectedDriver *int64) error

	// Get retrieves an order by its identifier.
	// Returns errs.ErrObjectNotFound when no such order exists.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetByCustomer retrieves all orders placed by a customer, newest first.
	GetByCustomer(ctx context.Context, customerID int64) ([]*order.Order, error)

	// GetAllDispatchable retrieves unassigned orders whose status admits
	// driver acceptance on the dispatch feed, oldest first, at most limit.
	GetAllDispatchable(ctx context.Context, limit int) ([]*order.Order, error)

	// AssignDriver atomically claims an order for a driver. The claim
	// succeeds only when the stored row has no driver and its status admits
	// acceptance; the row's status advances in the same statement. A lost
	// race yields errs.ErrConflict and leaves the row untouched.
	AssignDriver(ctx context.Context, orderID, driverID int64) (*order.Order, error)

	// CountDispatchable returns the number of orders currently waiting on
	// the dispatch feed.
	CountDispatchable(ctx context.Context) (int64, error)
}
