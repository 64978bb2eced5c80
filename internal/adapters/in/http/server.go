// Package http exposes the order and driver APIs over REST. Handlers bind
// requests, delegate to application use cases and translate domain errors
// to HTTP status codes; no business rules live here.
package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/marribaloch/Indian-food/internal/core/application/usecases/commands"
	"github.com/marribaloch/Indian-food/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server wires HTTP routes to command and query handlers.
type Server struct {
	// Command handlers
	placeOrderHandler     commands.PlaceOrderCommandHandler
	setOrderStatusHandler commands.SetOrderStatusCommandHandler
	acceptOrderHandler    commands.AcceptOrderCommandHandler
	reportPresenceHandler commands.ReportPresenceCommandHandler
	driverUpdateHandler   commands.DriverUpdateCommandHandler

	// Query handlers
	getOrderHandler               queries.GetOrderQueryHandler
	getOrderStatusHandler         queries.GetOrderStatusQueryHandler
	listCustomerOrdersHandler     queries.ListCustomerOrdersQueryHandler
	listDispatchableOrdersHandler queries.ListDispatchableOrdersQueryHandler

	// adminKey guards operator endpoints. Empty disables the check; the
	// composition root refuses to start without one outside development.
	adminKey string
}

// NewServer creates the HTTP server with the required handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	setOrderStatusHandler commands.SetOrderStatusCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	reportPresenceHandler commands.ReportPresenceCommandHandler,
	driverUpdateHandler commands.DriverUpdateCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrderStatusHandler queries.GetOrderStatusQueryHandler,
	listCustomerOrdersHandler queries.ListCustomerOrdersQueryHandler,
	listDispatchableOrdersHandler queries.ListDispatchableOrdersQueryHandler,
	adminKey string,
) *Server {
	return &Server{
		placeOrderHandler:             placeOrderHandler,
		setOrderStatusHandler:         setOrderStatusHandler,
		acceptOrderHandler:            acceptOrderHandler,
		reportPresenceHandler:         reportPresenceHandler,
		driverUpdateHandler:           driverUpdateHandler,
		getOrderHandler:               getOrderHandler,
		getOrderStatusHandler:         getOrderStatusHandler,
		listCustomerOrdersHandler:     listCustomerOrdersHandler,
		listDispatchableOrdersHandler: listDispatchableOrdersHandler,
		adminKey:                      adminKey,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", s.Health)

	api := e.Group("/api")

	api.POST("/order", s.PlaceOrder)
	api.GET("/order/:id", s.GetOrder)
	api.GET("/order/:id/status", s.GetOrderStatus)
	api.GET("/my_orders", s.GetMyOrders)
	api.POST("/order/:id/status", s.SetOrderStatus, s.requireAdminKey)

	api.GET("/open_orders", s.GetOpenOrders)
	api.POST("/order/:id/accept", s.AcceptOrder)
	api.POST("/driver/available", s.ReportDriverAvailability)
	api.POST("/driver/update", s.DriverUpdate)
}

// Health handles GET /healthz.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// requireAdminKey rejects operator requests without the configured key.
func (s *Server) requireAdminKey(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if !s.adminAuthorized(ctx) {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "Invalid admin key",
			})
		}
		return next(ctx)
	}
}

// adminAuthorized reports whether the request carries the configured admin
// key. An empty configured key disables the check.
func (s *Server) adminAuthorized(ctx echo.Context) bool {
	if s.adminKey == "" {
		return true
	}
	provided := ctx.Request().Header.Get("X-Admin-Key")
	return subtle.ConstantTimeCompare([]byte(provided), []byte(s.adminKey)) == 1
}
