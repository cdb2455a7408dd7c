// Package queries contains read operations against the database.
// Query handlers bypass the aggregates and read projection rows directly,
// which is the read side of the CQRS split.
package queries

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
	ErrOrderIDIsRequired = errors.New("order id is required")
)

// GetOrderQuery retrieves a single order with its full price breakdown,
// delivery details and lifecycle timestamps.
type GetOrderQuery struct {
	orderID uuid.UUID

	isSet bool
}

// NewGetOrderQuery creates a query to retrieve one order by id.
func NewGetOrderQuery(orderID uuid.UUID) (GetOrderQuery, error) {
	if orderID == uuid.Nil {
		return GetOrderQuery{}, ErrOrderIDIsRequired
	}

	return GetOrderQuery{orderID: orderID, isSet: true}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	if !q.isSet {
		return ErrGetOrderQueryIsNotConstructed
	}
	return nil
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() uuid.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the full read model of an order.
type GetOrderQueryResponse struct {
	ID        uuid.UUID  `json:"id"`
	ShopID    uuid.UUID  `json:"shopId"`
	ZoneID    uuid.UUID  `json:"zoneId"`
	CourierID *uuid.UUID `json:"courierId,omitempty"`

	OrderType string `json:"orderType"`
	Status    string `json:"status"`

	BasePrice     decimal.Decimal `json:"basePrice"`
	ZoneAddon     decimal.Decimal `json:"zoneAddon"`
	RushHourAddon decimal.Decimal `json:"rushHourAddon"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`

	Description      string     `json:"description,omitempty"`
	RecipientName    string     `json:"recipientName,omitempty"`
	RecipientPhone   string     `json:"recipientPhone"`
	RecipientAddress string     `json:"recipientAddress"`
	PickupAddress    string     `json:"pickupAddress"`
	DeliveryTime     *time.Time `json:"deliveryTime,omitempty"`
	IsFragile        bool       `json:"isFragile"`
	IsBulky          bool       `json:"isBulky"`

	CourierNotes    string `json:"courierNotes,omitempty"`
	CourierRating   *int   `json:"courierRating,omitempty"`
	CourierFeedback string `json:"courierFeedback,omitempty"`

	CreatedAt       time.Time  `json:"createdAt"`
	AcceptedAt      *time.Time `json:"acceptedAt,omitempty"`
	DeliveredAt     *time.Time `json:"deliveredAt,omitempty"`
	ConfirmedAt     *time.Time `json:"confirmedAt,omitempty"`
	AutoconfirmedAt *time.Time `json:"autoconfirmedAt,omitempty"`
}
