package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetShopOrdersQueryHandler retrieves a shop's order list from the database.
type GetShopOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetShopOrdersQueryHandler creates a handler for shop order listings.
// Requires a GORM database connection for query execution.
func NewGetShopOrdersQueryHandler(db *gorm.DB) GetShopOrdersQueryHandler {
	return GetShopOrdersQueryHandler{db: db}
}

// Handle executes the listing, newest orders first. The response reuses the
// single-order read model row by row.
func (h GetShopOrdersQueryHandler) Handle(ctx context.Context, query GetShopOrdersQuery) ([]GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	q := `
		SELECT
			id, shop_id, zone_id, courier_id,
			order_type, status,
			base_price, zone_addon, rush_hour_addon, total_price,
			description, recipient_name, recipient_phone, recipient_address, pickup_address,
			delivery_time, is_fragile, is_bulky,
			courier_notes, courier_rating, courier_feedback,
			created_at, accepted_at, delivered_at, confirmed_at, autoconfirmed_at
		FROM orders
		WHERE shop_id = ?
	`
	args := []any{query.ShopID()}
	if query.Status() != "" {
		q += " AND status = ?"
		args = append(args, query.Status())
	}
	q += " ORDER BY created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(q, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrderQueryResponse, 0)
	for rows.Next() {
		var resp GetOrderQueryResponse

		err = rows.Scan(
			&resp.ID, &resp.ShopID, &resp.ZoneID, &resp.CourierID,
			&resp.OrderType, &resp.Status,
			&resp.BasePrice, &resp.ZoneAddon, &resp.RushHourAddon, &resp.TotalPrice,
			&resp.Description, &resp.RecipientName, &resp.RecipientPhone, &resp.RecipientAddress, &resp.PickupAddress,
			&resp.DeliveryTime, &resp.IsFragile, &resp.IsBulky,
			&resp.CourierNotes, &resp.CourierRating, &resp.CourierFeedback,
			&resp.CreatedAt, &resp.AcceptedAt, &resp.DeliveredAt, &resp.ConfirmedAt, &resp.AutoconfirmedAt,
		)
		if err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
