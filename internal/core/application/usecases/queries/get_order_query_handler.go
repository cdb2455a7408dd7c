package queries

import (
	"context"
	"database/sql"
	"errors"

	"courierhub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order row from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns an ObjectNotFoundError when the id is
// unknown.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id, shop_id, zone_id, courier_id,
			order_type, status,
			base_price, zone_addon, rush_hour_addon, total_price,
			description, recipient_name, recipient_phone, recipient_address, pickup_address,
			delivery_time, is_fragile, is_bulky,
			courier_notes, courier_rating, courier_feedback,
			created_at, accepted_at, delivered_at, confirmed_at, autoconfirmed_at
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Row().Scan(
		&resp.ID, &resp.ShopID, &resp.ZoneID, &resp.CourierID,
		&resp.OrderType, &resp.Status,
		&resp.BasePrice, &resp.ZoneAddon, &resp.RushHourAddon, &resp.TotalPrice,
		&resp.Description, &resp.RecipientName, &resp.RecipientPhone, &resp.RecipientAddress, &resp.PickupAddress,
		&resp.DeliveryTime, &resp.IsFragile, &resp.IsBulky,
		&resp.CourierNotes, &resp.CourierRating, &resp.CourierFeedback,
		&resp.CreatedAt, &resp.AcceptedAt, &resp.DeliveredAt, &resp.ConfirmedAt, &resp.AutoconfirmedAt,
	)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}
