package http

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlaceOrderItemRequest is one basket line in an order placement request.
// UnitPrice and Name are trusted only for off-catalog lines (MenuItemID 0);
// catalog lines are re-priced server side.
type PlaceOrderItemRequest struct {
	MenuItemID int64  `json:"menu_item_id"`
	Name       string `json:"name"`
	UnitPrice  int64  `json:"unit_price"`
	Quantity   int    `json:"quantity"`
}

// PlaceOrderRequest is the body of POST /api/order.
type PlaceOrderRequest struct {
	CustomerID   *int64                  `json:"customer_id,omitempty"`
	ContactEmail string                  `json:"contact_email"`
	Items        []PlaceOrderItemRequest `json:"items"`
	DropoffLat   *float64                `json:"dropoff_lat,omitempty"`
	DropoffLng   *float64                `json:"dropoff_lng,omitempty"`
}

// SetOrderStatusRequest is the body of POST /api/order/:id/status.
type SetOrderStatusRequest struct {
	Status string `json:"status"`
}

// AcceptOrderRequest is the body of POST /api/order/:id/accept.
type AcceptOrderRequest struct {
	DriverID int64 `json:"driver_id"`
}

// DriverAvailabilityRequest is the body of POST /api/driver/available.
type DriverAvailabilityRequest struct {
	DriverID  int64    `json:"driver_id"`
	Available bool     `json:"available"`
	Lat       *float64 `json:"lat,omitempty"`
	Lng       *float64 `json:"lng,omitempty"`
}

// DriverUpdateRequest is the body of POST /api/driver/update. OrderID and
// Status are optional; a bare update is just a location heartbeat.
type DriverUpdateRequest struct {
	DriverID int64    `json:"driver_id"`
	Lat      *float64 `json:"lat,omitempty"`
	Lng      *float64 `json:"lng,omitempty"`
	OrderID  *int64   `json:"order_id,omitempty"`
	Status   string   `json:"status,omitempty"`
}

// OrderMutationResponse reports the order state after a successful command.
// Warning carries a notification delivery failure; the mutation itself
// succeeded.
type OrderMutationResponse struct {
	OrderID      int64  `json:"order_id"`
	Status       string `json:"status"`
	DriverStatus string `json:"driver_status,omitempty"`
	ItemsTotal   int64  `json:"items_total"`
	DeliveryFee  int64  `json:"delivery_fee"`
	ServiceFee   int64  `json:"service_fee"`
	GrandTotal   int64  `json:"grand_total"`
	Warning      string `json:"warning,omitempty"`
}

// DriverUpdateResponse is the body returned by POST /api/driver/update.
type DriverUpdateResponse struct {
	DriverID int64  `json:"driver_id"`
	OrderID  *int64 `json:"order_id,omitempty"`
	Status   string `json:"status,omitempty"`
	Warning  string `json:"warning,omitempty"`
}

const notificationWarning = "notification delivery failed"
