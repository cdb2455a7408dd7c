package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCouriersQueryHandler retrieves the courier registry from the database.
type GetCouriersQueryHandler struct {
	db *gorm.DB
}

// NewGetCouriersQueryHandler creates a handler for courier listings.
// Requires a GORM database connection for query execution.
func NewGetCouriersQueryHandler(db *gorm.DB) GetCouriersQueryHandler {
	return GetCouriersQueryHandler{db: db}
}

// Handle executes the listing, sorted by courier id for consistent output.
func (h GetCouriersQueryHandler) Handle(ctx context.Context, query GetCouriersQuery) ([]GetCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	q := `
		SELECT id, name, is_active, current_orders, max_orders
		FROM couriers
	`
	if query.OnlyAvailable() {
		q += " WHERE is_active AND current_orders < max_orders"
	}
	q += " ORDER BY id"

	rows, err := h.db.WithContext(ctx).Raw(q).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	couriers := make([]GetCouriersQueryResponse, 0)
	for rows.Next() {
		var resp GetCouriersQueryResponse

		err = rows.Scan(&resp.ID, &resp.Name, &resp.IsActive, &resp.CurrentOrders, &resp.MaxOrders)
		if err != nil {
			return nil, err
		}

		couriers = append(couriers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}
