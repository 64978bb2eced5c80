package http

import (
	"net/http"
	"strconv"

	"github.com/marribaloch/Indian-food/internal/core/application/usecases/commands"
	"github.com/marribaloch/Indian-food/internal/core/application/usecases/queries"
	"github.com/marribaloch/Indian-food/internal/core/domain/model/kernel"
	"github.com/marribaloch/Indian-food/internal/core/domain/model/order"
	"github.com/marribaloch/Indian-food/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// PlaceOrder handles POST /api/order - places a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	items := make([]commands.PlaceOrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = commands.PlaceOrderItem{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
		}
	}

	dropoff, err := locationFromCoords(req.DropoffLat, req.DropoffLng)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := commands.NewPlaceOrderCommand(req.CustomerID, req.ContactEmail, items, dropoff)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	result, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, mutationResponse(result.Order, result.NotificationFailed))
}

// GetOrder handles GET /api/order/:id - retrieves one order. An optional
// customer_id query parameter scopes the lookup to that customer; a scoped
// miss is indistinguishable from a missing order. The customer_id is client
// asserted, so scoping narrows what a caller sees rather than proving
// ownership; the unscoped variant sees every order and requires the admin
// key.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id")
	}

	ownerID, err := optionalQueryID(ctx, "customer_id")
	if err != nil {
		return writeBadRequest(ctx, "Invalid customer id")
	}

	if ownerID == nil && !s.adminAuthorized(ctx) {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Invalid admin key",
		})
	}

	query, err := queries.NewGetOrderQuery(orderID, ownerID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderStatus handles GET /api/order/:id/status - the lightweight polling
// endpoint for order tracking screens.
func (s *Server) GetOrderStatus(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderStatusQuery(orderID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response, err := s.getOrderStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMyOrders handles GET /api/my_orders - a customer's order history with
// delivered count and lifetime spend. An optional limit query parameter caps
// the page; out of range values are clamped, never rejected.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	customerID, err := strconv.ParseInt(ctx.QueryParam("customer_id"), 10, 64)
	if err != nil {
		return writeBadRequest(ctx, "Invalid customer id")
	}

	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return writeBadRequest(ctx, "Invalid limit")
		}
		limit = parsed
	}

	query, err := queries.NewListCustomerOrdersQuery(customerID, limit)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response, err := s.listCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// SetOrderStatus handles POST /api/order/:id/status - an operator status
// change. Guarded by the admin key middleware.
func (s *Server) SetOrderStatus(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id")
	}

	var req SetOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	next, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := commands.NewSetOrderStatusCommand(orderID, next)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	result, err := s.setOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, mutationResponse(result.Order, result.NotificationFailed))
}

func mutationResponse(aggregate *order.Order, notificationFailed bool) OrderMutationResponse {
	totals := aggregate.Totals()
	response := OrderMutationResponse{
		OrderID:      aggregate.ID(),
		Status:       aggregate.Status().String(),
		DriverStatus: aggregate.DriverStatus(),
		ItemsTotal:   totals.ItemsTotal(),
		DeliveryFee:  totals.DeliveryFee(),
		ServiceFee:   totals.ServiceFee(),
		GrandTotal:   totals.GrandTotal(),
	}
	if notificationFailed {
		response.Warning = notificationWarning
	}
	return response
}

func pathID(ctx echo.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("id"), 10, 64)
}

func optionalQueryID(ctx echo.Context, name string) (*int64, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// locationFromCoords turns an optional lat/lng pair into a Location.
// Both coordinates must be present or both absent.
func locationFromCoords(lat, lng *float64) (*kernel.Location, error) {
	if lat == nil && lng == nil {
		return nil, nil
	}
	if lat == nil || lng == nil {
		return nil, errs.NewValueIsRequiredError("both lat and lng")
	}
	loc, err := kernel.NewLocation(*lat, *lng)
	if err != nil {
		return nil, err
	}
	return &loc, nil
}
