package http

import (
	"net/http"

	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/application/usecases/queries"
	"courierhub/internal/core/domain/model/registration"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// GetCouriers handles GET /api/v1/couriers. The available query parameter
// limits the listing to on-shift couriers with spare capacity.
func (s *Server) GetCouriers(ctx echo.Context) error {
	onlyAvailable := ctx.QueryParam("available") == "true"

	query := queries.NewGetCouriersQuery(onlyAvailable)

	couriers, err := s.getCouriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, couriers)
}

// CreateCourier handles POST /api/v1/couriers.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var req CreateCourierRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID := uuid.New()
	cmd, err := commands.NewCreateCourierCommand(courierID, req.UserID, req.Name, req.MaxOrders)
	if err != nil {
		return badRequest(ctx, "Invalid courier data: "+err.Error())
	}

	if err = s.createCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: courierID})
}

// SetCourierAvailability handles PUT /api/v1/couriers/:courierId/availability.
func (s *Server) SetCourierAvailability(ctx echo.Context) error {
	courierID, err := uuid.Parse(ctx.Param("courierId"))
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	var req SetCourierAvailabilityRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetCourierAvailabilityCommand(courierID, req.Active)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.setCourierAvailabilityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateZone handles POST /api/v1/zones.
func (s *Server) CreateZone(ctx echo.Context) error {
	var req CreateZoneRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	zoneID := uuid.New()
	cmd, err := commands.NewCreateZoneCommand(zoneID, req.Name, req.RadiusKm, req.BasePrice)
	if err != nil {
		return badRequest(ctx, "Invalid zone data: "+err.Error())
	}

	if err = s.createZoneHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: zoneID})
}

// CreateShop handles POST /api/v1/shops.
func (s *Server) CreateShop(ctx echo.Context) error {
	var req CreateShopRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	shopID := uuid.New()
	cmd, err := commands.NewCreateShopCommand(shopID, req.Name, req.TelegramChatID)
	if err != nil {
		return badRequest(ctx, "Invalid shop data: "+err.Error())
	}

	if err = s.createShopHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: shopID})
}

// IssueRegistrationCode handles POST /api/v1/registration-codes.
func (s *Server) IssueRegistrationCode(ctx echo.Context) error {
	var req IssueRegistrationCodeRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewIssueRegistrationCodeCommand(req.TelegramID, registration.Role(req.Role))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	code, err := s.issueRegistrationCodeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RegistrationCodeResponse{
		Code:       code.Value,
		TelegramID: code.TelegramID,
		Role:       string(code.Role),
	})
}

// RedeemRegistrationCode handles POST /api/v1/registration-codes/redeem.
func (s *Server) RedeemRegistrationCode(ctx echo.Context) error {
	var req RedeemRegistrationCodeRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRedeemRegistrationCodeCommand(req.Code)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	code, err := s.redeemRegistrationCodeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RegistrationCodeResponse{
		Code:       code.Value,
		TelegramID: code.TelegramID,
		Role:       string(code.Role),
	})
}
