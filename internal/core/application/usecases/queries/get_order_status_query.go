package queries

import (
	"errors"

	"github.com/marribaloch/Indian-food/internal/pkg/errs"
	"github.com/marribaloch/Indian-food/internal/pkg/guard"
)

var ErrGetOrderStatusQueryIsNotConstructed = errors.New(
	"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
)

// GetOrderStatusQuery retrieves the lightweight status view of one order,
// suitable for frequent client polling.
type GetOrderStatusQuery struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderStatusQuery creates a status polling query.
func NewGetOrderStatusQuery(orderID int64) (GetOrderStatusQuery, error) {
	if orderID <= 0 {
		return GetOrderStatusQuery{}, errs.NewValueIsInvalidError("order id")
	}
	return GetOrderStatusQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

// OrderID returns the identifier of the polled order.
func (q GetOrderStatusQuery) OrderID() int64 {
	return q.orderID
}

// OrderStatusResponse is the polling view of an order.
type OrderStatusResponse struct {
	OrderID      int64  `json:"order_id"`
	Status       string `json:"status"`
	DriverStatus string `json:"driver_status,omitempty"`
	DriverID     *int64 `json:"driver_id,omitempty"`
}
