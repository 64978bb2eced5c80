package queries

import (
	"errors"

	"github.com/marribaloch/Indian-food/internal/pkg/errs"
	"github.com/marribaloch/Indian-food/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order by id.
//
// ownerID scopes the lookup: when non-nil, only an order belonging to that
// customer is visible and anything else reads as not found. Operators pass
// nil and see every order.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID int64
	ownerID *int64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order, optionally scoped to its owner.
func NewGetOrderQuery(orderID int64, ownerID *int64) (GetOrderQuery, error) {
	q := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if orderID <= 0 {
		return GetOrderQuery{}, errs.NewValueIsInvalidError("order id")
	}
	if ownerID != nil {
		if *ownerID <= 0 {
			return GetOrderQuery{}, errs.NewValueIsInvalidError("owner id")
		}
		id := *ownerID
		q.ownerID = &id
	}

	q.orderID = orderID
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}

// OwnerID returns the owner scope, or nil for an operator lookup.
func (q GetOrderQuery) OwnerID() *int64 {
	return q.ownerID
}
