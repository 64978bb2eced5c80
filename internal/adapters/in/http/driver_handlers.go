package http

import (
	"net/http"
	"strconv"

	"github.com/marribaloch/Indian-food/internal/core/application/usecases/commands"
	"github.com/marribaloch/Indian-food/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetOpenOrders handles GET /api/open_orders - the dispatch feed drivers
// poll for claimable orders. An optional limit query parameter caps the
// page; out of range values are clamped, never rejected.
func (s *Server) GetOpenOrders(ctx echo.Context) error {
	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return writeBadRequest(ctx, "Invalid limit")
		}
		limit = parsed
	}

	query, err := queries.NewListDispatchableOrdersQuery(limit)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	orders, err := s.listDispatchableOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// AcceptOrder handles POST /api/order/:id/accept - a driver claiming an
// order. Exactly one concurrent claimant wins; losers get a conflict.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id")
	}

	var req AcceptOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, req.DriverID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	result, err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, mutationResponse(result.Order, result.NotificationFailed))
}

// ReportDriverAvailability handles POST /api/driver/available - a driver
// going on or off shift, with an optional current location.
func (s *Server) ReportDriverAvailability(ctx echo.Context) error {
	var req DriverAvailabilityRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	location, err := locationFromCoords(req.Lat, req.Lng)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := commands.NewReportPresenceCommand(req.DriverID, req.Available, location)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.reportPresenceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DriverUpdate handles POST /api/driver/update - the combined heartbeat:
// refresh presence, optionally report delivery progress on an order.
func (s *Server) DriverUpdate(ctx echo.Context) error {
	var req DriverUpdateRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	location, err := locationFromCoords(req.Lat, req.Lng)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := commands.NewDriverUpdateCommand(req.DriverID, location, req.OrderID, req.Status)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	result, err := s.driverUpdateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := DriverUpdateResponse{DriverID: req.DriverID}
	if result.Order != nil {
		orderID := result.Order.ID()
		response.OrderID = &orderID
		response.Status = result.Order.Status().String()
	}
	if result.NotificationFailed {
		response.Warning = notificationWarning
	}

	return ctx.JSON(http.StatusOK, response)
}
