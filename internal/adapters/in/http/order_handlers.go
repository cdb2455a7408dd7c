package http

import (
	"errors"
	"net/http"

	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/application/usecases/queries"
	"courierhub/internal/core/domain/model/dispute"
	"courierhub/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := uuid.New()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		req.ShopID,
		req.ZoneID,
		order.Type(req.OrderType),
		order.Details{
			Description:      req.Description,
			RecipientName:    req.RecipientName,
			RecipientPhone:   req.RecipientPhone,
			RecipientAddress: req.RecipientAddress,
			PickupAddress:    req.PickupAddress,
			DeliveryTime:     req.DeliveryTime,
			IsFragile:        req.IsFragile,
			IsBulky:          req.IsBulky,
			SpecialReason:    req.SpecialReason,
		},
		req.ZoneAddon,
		req.RushHourAddon,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID})
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := uuid.Parse(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShopOrders handles GET /api/v1/shops/:shopId/orders. An optional status
// query parameter narrows the listing to one lifecycle state.
func (s *Server) GetShopOrders(ctx echo.Context) error {
	shopID, err := uuid.Parse(ctx.Param("shopId"))
	if err != nil {
		return badRequest(ctx, "Invalid shop id")
	}

	query, err := queries.NewGetShopOrdersQuery(shopID, ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.getShopOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignCourier handles POST /api/v1/orders/:orderId/assign.
func (s *Server) AssignCourier(ctx echo.Context) error {
	orderID, err := uuid.Parse(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req AssignCourierRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignCourierCommand(orderID, req.CourierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.assignCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AutoAssignCourier handles POST /api/v1/orders/:orderId/auto-assign.
// The order must be of a type that supports automatic assignment; when no
// courier has a free slot the response is 409 so the caller can retry later.
func (s *Server) AutoAssignCourier(ctx echo.Context) error {
	orderID, err := uuid.Parse(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewAutoAssignCourierCommandForOrder(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.autoAssignCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, commands.ErrNoFreeCouriersFound) {
			return ctx.JSON(http.StatusConflict, ErrorResponse{
				Code:    http.StatusConflict,
				Message: err.Error(),
			})
		}
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles POST /api/v1/orders/:orderId/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := uuid.Parse(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.Status(req.Status), req.CourierNotes)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmOrder handles POST /api/v1/orders/:orderId/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	orderID, err := uuid.Parse(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := uuid.Parse(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RateCourier handles POST /api/v1/orders/:orderId/rating.
func (s *Server) RateCourier(ctx echo.Context) error {
	orderID, err := uuid.Parse(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req RateCourierRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRateCourierCommand(orderID, req.Rating, req.Feedback)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.rateCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OpenDispute handles POST /api/v1/orders/:orderId/disputes.
func (s *Server) OpenDispute(ctx echo.Context) error {
	orderID, err := uuid.Parse(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req OpenDisputeRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	disputeID := uuid.New()
	cmd, err := commands.NewOpenDisputeCommand(disputeID, orderID, req.Description, dispute.Role(req.CreatedBy))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.openDisputeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: disputeID})
}

// ResolveDispute handles POST /api/v1/disputes/:disputeId/resolution.
func (s *Server) ResolveDispute(ctx echo.Context) error {
	disputeID, err := uuid.Parse(ctx.Param("disputeId"))
	if err != nil {
		return badRequest(ctx, "Invalid dispute id")
	}

	var req ResolveDisputeRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewResolveDisputeCommand(disputeID, dispute.Status(req.Status), req.Resolution)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.resolveDisputeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
