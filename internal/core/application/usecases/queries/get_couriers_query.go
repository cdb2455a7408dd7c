package queries

import (
	"errors"

	"github.com/google/uuid"
)

var ErrGetCouriersQueryIsNotConstructed = errors.New(
	"GetCouriersQuery must be created via NewGetCouriersQuery constructor",
)

// GetCouriersQuery retrieves the courier registry with current load, for
// operator dashboards and the admin bot.
type GetCouriersQuery struct {
	onlyAvailable bool

	isSet bool
}

// NewGetCouriersQuery creates a query for the courier list. With
// onlyAvailable set, couriers off shift or at capacity are filtered out.
func NewGetCouriersQuery(onlyAvailable bool) GetCouriersQuery {
	return GetCouriersQuery{onlyAvailable: onlyAvailable, isSet: true}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCouriersQueryIsNotConstructed if validation fails.
func (q GetCouriersQuery) Validate() error {
	if !q.isSet {
		return ErrGetCouriersQueryIsNotConstructed
	}
	return nil
}

// OnlyAvailable reports whether the listing is filtered to couriers that can
// take an order right now.
func (q GetCouriersQuery) OnlyAvailable() bool {
	return q.onlyAvailable
}

// GetCouriersQueryResponse is one row of the courier listing.
type GetCouriersQueryResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	IsActive      bool      `json:"isActive"`
	CurrentOrders int       `json:"currentOrders"`
	MaxOrders     int       `json:"maxOrders"`
}
