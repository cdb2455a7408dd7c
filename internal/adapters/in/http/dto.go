package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	ShopID    uuid.UUID `json:"shop_id"`
	ZoneID    uuid.UUID `json:"zone_id"`
	OrderType string    `json:"order_type"`

	Description      string     `json:"description,omitempty"`
	RecipientName    string     `json:"recipient_name,omitempty"`
	RecipientPhone   string     `json:"recipient_phone"`
	RecipientAddress string     `json:"recipient_address"`
	PickupAddress    string     `json:"pickup_address"`
	DeliveryTime     *time.Time `json:"delivery_time,omitempty"`
	IsFragile        bool       `json:"is_fragile,omitempty"`
	IsBulky          bool       `json:"is_bulky,omitempty"`
	SpecialReason    string     `json:"special_reason,omitempty"`

	ZoneAddon     decimal.Decimal `json:"zone_addon"`
	RushHourAddon decimal.Decimal `json:"rush_hour_addon"`
}

// CreatedResponse carries the server-generated id of a new resource.
type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

// AssignCourierRequest is the body of POST /api/v1/orders/:orderId/assign.
type AssignCourierRequest struct {
	CourierID uuid.UUID `json:"courier_id"`
}

// UpdateOrderStatusRequest is the body of POST /api/v1/orders/:orderId/status.
type UpdateOrderStatusRequest struct {
	Status       string `json:"status"`
	CourierNotes string `json:"courier_notes,omitempty"`
}

// RateCourierRequest is the body of POST /api/v1/orders/:orderId/rating.
type RateCourierRequest struct {
	Rating   int    `json:"rating"`
	Feedback string `json:"feedback,omitempty"`
}

// OpenDisputeRequest is the body of POST /api/v1/orders/:orderId/disputes.
type OpenDisputeRequest struct {
	Description string `json:"description"`
	CreatedBy   string `json:"created_by"`
}

// ResolveDisputeRequest is the body of POST /api/v1/disputes/:disputeId/resolution.
type ResolveDisputeRequest struct {
	Status     string `json:"status"`
	Resolution string `json:"resolution,omitempty"`
}

// CreateCourierRequest is the body of POST /api/v1/couriers.
type CreateCourierRequest struct {
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	MaxOrders int       `json:"max_orders"`
}

// SetCourierAvailabilityRequest is the body of
// PUT /api/v1/couriers/:courierId/availability.
type SetCourierAvailabilityRequest struct {
	Active bool `json:"active"`
}

// CreateZoneRequest is the body of POST /api/v1/zones.
type CreateZoneRequest struct {
	Name      string          `json:"name"`
	RadiusKm  int             `json:"radius_km"`
	BasePrice decimal.Decimal `json:"base_price"`
}

// CreateShopRequest is the body of POST /api/v1/shops.
type CreateShopRequest struct {
	Name           string `json:"name"`
	TelegramChatID int64  `json:"telegram_chat_id"`
}

// IssueRegistrationCodeRequest is the body of POST /api/v1/registration-codes.
type IssueRegistrationCodeRequest struct {
	TelegramID int64  `json:"telegram_id"`
	Role       string `json:"role"`
}

// RegistrationCodeResponse is returned on issuance and redemption.
type RegistrationCodeResponse struct {
	Code       string `json:"code"`
	TelegramID int64  `json:"telegram_id"`
	Role       string `json:"role"`
}

// RedeemRegistrationCodeRequest is the body of
// POST /api/v1/registration-codes/redeem.
type RedeemRegistrationCodeRequest struct {
	Code string `json:"code"`
}
