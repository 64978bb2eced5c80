package queries

import (
	"errors"

	"github.com/marribaloch/Indian-food/internal/pkg/errs"
	"github.com/marribaloch/Indian-food/internal/pkg/guard"
)

var ErrListCustomerOrdersQueryIsNotConstructed = errors.New(
	"ListCustomerOrdersQuery must be created via NewListCustomerOrdersQuery constructor",
)

const (
	// DefaultHistoryPageSize is the order history page size when the client
	// does not ask for one.
	DefaultHistoryPageSize = 50
	// MaxHistoryPageSize caps the order history page size.
	MaxHistoryPageSize = 100
)

// ListCustomerOrdersQuery retrieves a customer's order history, newest first,
// together with a delivered-order spending summary.
type ListCustomerOrdersQuery struct { //nolint:recvcheck //using for validation
	customerID int64
	limit      int

	guard guard.ConstructorGuard
}

// NewListCustomerOrdersQuery creates an order history query for one customer.
// A non-positive limit takes the default page size; anything above the cap
// is clamped down to it.
func NewListCustomerOrdersQuery(customerID int64, limit int) (ListCustomerOrdersQuery, error) {
	if customerID <= 0 {
		return ListCustomerOrdersQuery{}, errs.NewValueIsInvalidError("customer id")
	}
	if limit <= 0 {
		limit = DefaultHistoryPageSize
	}
	if limit > MaxHistoryPageSize {
		limit = MaxHistoryPageSize
	}
	return ListCustomerOrdersQuery{customerID: customerID, limit: limit, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the identifier of the customer whose history is listed.
func (q ListCustomerOrdersQuery) CustomerID() int64 {
	return q.customerID
}

// Limit returns the effective page size.
func (q ListCustomerOrdersQuery) Limit() int {
	return q.limit
}

// CustomerOrdersResponse is a customer's order history plus spending summary.
// Orders holds at most one page; DeliveredCount and TotalSpent summarize the
// whole history regardless of the page size. TotalSpent sums the grand totals
// of delivered orders only.
type CustomerOrdersResponse struct {
	Orders         []OrderResponse `json:"orders"`
	DeliveredCount int             `json:"delivered_count"`
	TotalSpent     int64           `json:"total_spent"`
}
