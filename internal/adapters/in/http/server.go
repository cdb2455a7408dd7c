// Package http exposes the delivery engine over a REST API. Handlers bind
// request bodies, build commands or queries, and translate domain errors to
// status codes; all business rules live in the use case layer.
package http

import (
	"errors"
	"net/http"

	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/application/usecases/queries"
	"courierhub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires HTTP routes to the application's command and query handlers.
type Server struct {
	// Command handlers
	createOrderHandler            commands.CreateOrderCommandHandler
	assignCourierHandler          commands.AssignCourierCommandHandler
	autoAssignCourierHandler      commands.AutoAssignCourierCommandHandler
	updateOrderStatusHandler      commands.UpdateOrderStatusCommandHandler
	confirmOrderHandler           commands.ConfirmOrderCommandHandler
	cancelOrderHandler            commands.CancelOrderCommandHandler
	rateCourierHandler            commands.RateCourierCommandHandler
	openDisputeHandler            commands.OpenDisputeCommandHandler
	resolveDisputeHandler         commands.ResolveDisputeCommandHandler
	createCourierHandler          commands.CreateCourierCommandHandler
	setCourierAvailabilityHandler commands.SetCourierAvailabilityCommandHandler
	createZoneHandler             commands.CreateZoneCommandHandler
	createShopHandler             commands.CreateShopCommandHandler
	issueRegistrationCodeHandler  commands.IssueRegistrationCodeCommandHandler
	redeemRegistrationCodeHandler commands.RedeemRegistrationCodeCommandHandler

	// Query handlers
	getOrderHandler      queries.GetOrderQueryHandler
	getShopOrdersHandler queries.GetShopOrdersQueryHandler
	getCouriersHandler   queries.GetCouriersQueryHandler
}

// ServerHandlers groups the use case handlers the server depends on.
type ServerHandlers struct {
	CreateOrder            commands.CreateOrderCommandHandler
	AssignCourier          commands.AssignCourierCommandHandler
	AutoAssignCourier      commands.AutoAssignCourierCommandHandler
	UpdateOrderStatus      commands.UpdateOrderStatusCommandHandler
	ConfirmOrder           commands.ConfirmOrderCommandHandler
	CancelOrder            commands.CancelOrderCommandHandler
	RateCourier            commands.RateCourierCommandHandler
	OpenDispute            commands.OpenDisputeCommandHandler
	ResolveDispute         commands.ResolveDisputeCommandHandler
	CreateCourier          commands.CreateCourierCommandHandler
	SetCourierAvailability commands.SetCourierAvailabilityCommandHandler
	CreateZone             commands.CreateZoneCommandHandler
	CreateShop             commands.CreateShopCommandHandler
	IssueRegistrationCode  commands.IssueRegistrationCodeCommandHandler
	RedeemRegistrationCode commands.RedeemRegistrationCodeCommandHandler

	GetOrder      queries.GetOrderQueryHandler
	GetShopOrders queries.GetShopOrdersQueryHandler
	GetCouriers   queries.GetCouriersQueryHandler
}

// NewServer creates an HTTP server over the given handlers.
func NewServer(handlers ServerHandlers) *Server {
	return &Server{
		createOrderHandler:            handlers.CreateOrder,
		assignCourierHandler:          handlers.AssignCourier,
		autoAssignCourierHandler:      handlers.AutoAssignCourier,
		updateOrderStatusHandler:      handlers.UpdateOrderStatus,
		confirmOrderHandler:           handlers.ConfirmOrder,
		cancelOrderHandler:            handlers.CancelOrder,
		rateCourierHandler:            handlers.RateCourier,
		openDisputeHandler:            handlers.OpenDispute,
		resolveDisputeHandler:         handlers.ResolveDispute,
		createCourierHandler:          handlers.CreateCourier,
		setCourierAvailabilityHandler: handlers.SetCourierAvailability,
		createZoneHandler:             handlers.CreateZone,
		createShopHandler:             handlers.CreateShop,
		issueRegistrationCodeHandler:  handlers.IssueRegistrationCode,
		redeemRegistrationCodeHandler: handlers.RedeemRegistrationCode,
		getOrderHandler:               handlers.GetOrder,
		getShopOrdersHandler:          handlers.GetShopOrders,
		getCouriersHandler:            handlers.GetCouriers,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderId", s.GetOrder)
	api.POST("/orders/:orderId/assign", s.AssignCourier)
	api.POST("/orders/:orderId/auto-assign", s.AutoAssignCourier)
	api.POST("/orders/:orderId/status", s.UpdateOrderStatus)
	api.POST("/orders/:orderId/confirm", s.ConfirmOrder)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.POST("/orders/:orderId/rating", s.RateCourier)
	api.POST("/orders/:orderId/disputes", s.OpenDispute)
	api.POST("/disputes/:disputeId/resolution", s.ResolveDispute)

	api.GET("/shops/:shopId/orders", s.GetShopOrders)
	api.POST("/shops", s.CreateShop)

	api.GET("/couriers", s.GetCouriers)
	api.POST("/couriers", s.CreateCourier)
	api.PUT("/couriers/:courierId/availability", s.SetCourierAvailability)

	api.POST("/zones", s.CreateZone)

	api.POST("/registration-codes", s.IssueRegistrationCode)
	api.POST("/registration-codes/redeem", s.RedeemRegistrationCode)
}

// domainError maps a use case error to an HTTP error response.
func domainError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrCapacityExceeded),
		errors.Is(err, errs.ErrCourierUnavailable):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrOperationNotSupported):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
