package queries

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrGetShopOrdersQueryIsNotConstructed = errors.New(
		"GetShopOrdersQuery must be created via NewGetShopOrdersQuery constructor",
	)
	ErrShopIDIsRequired = errors.New("shop id is required")
)

// GetShopOrdersQuery retrieves a shop's orders, newest first, optionally
// filtered by status.
type GetShopOrdersQuery struct {
	shopID uuid.UUID
	status string

	isSet bool
}

// NewGetShopOrdersQuery creates a query for a shop's order list. An empty
// status means no filtering.
func NewGetShopOrdersQuery(shopID uuid.UUID, status string) (GetShopOrdersQuery, error) {
	if shopID == uuid.Nil {
		return GetShopOrdersQuery{}, ErrShopIDIsRequired
	}

	return GetShopOrdersQuery{shopID: shopID, status: status, isSet: true}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShopOrdersQueryIsNotConstructed if validation fails.
func (q GetShopOrdersQuery) Validate() error {
	if !q.isSet {
		return ErrGetShopOrdersQueryIsNotConstructed
	}
	return nil
}

// ShopID returns the identifier of the shop whose orders are requested.
func (q GetShopOrdersQuery) ShopID() uuid.UUID {
	return q.shopID
}

// Status returns the status filter; empty means all orders.
func (q GetShopOrdersQuery) Status() string {
	return q.status
}
