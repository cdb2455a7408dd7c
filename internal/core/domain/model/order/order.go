package order

import (
	"errors"
	"fmt"
	"time"

	"courierhub/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Details carries the delivery information supplied by the shop at creation.
// Recipient phone, recipient address and pickup address are mandatory; the
// rest is optional context for the courier.
type Details struct {
	Description      string
	RecipientName    string
	RecipientPhone   string
	RecipientAddress string
	PickupAddress    string
	DeliveryTime     *time.Time
	IsFragile        bool
	IsBulky          bool
	SpecialReason    string
}

// Order is the aggregate root of the delivery lifecycle. It owns the status
// state machine, the frozen price breakdown, the lifecycle timestamps, and
// the single-write courier rating.
//
// Invariants:
//   - the price breakdown is immutable after construction
//   - status changes follow the transitions table in status.go
//   - at most one of confirmedAt/autoconfirmedAt is set, and only when the
//     order is completed
//   - courierRating, once set, never changes
type Order struct {
	id        uuid.UUID
	shopID    uuid.UUID
	zoneID    uuid.UUID
	courierID *uuid.UUID

	orderType Type
	status    Status
	pricing   Pricing
	details   Details

	courierNotes    string
	courierRating   *int
	courierFeedback string

	createdAt       time.Time
	acceptedAt      *time.Time
	deliveredAt     *time.Time
	confirmedAt     *time.Time
	autoconfirmedAt *time.Time
	updatedAt       time.Time

	isConstructed bool
}

// NewOrder creates an order in created status with a frozen price breakdown.
// The pricing must have been produced by CalculatePricing for the same order
// type; the aggregate does not recompute it.
func NewOrder(
	id uuid.UUID,
	shopID uuid.UUID,
	zoneID uuid.UUID,
	orderType Type,
	pricing Pricing,
	details Details,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Created,
		pricing:       pricing,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setShopID(shopID),
		o.setZoneID(zoneID),
		o.setType(orderType),
		o.setDetails(details),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without re-running the
// creation rules. Status and type are still validated so corrupted rows are
// rejected at the boundary.
func RestoreOrder(
	id uuid.UUID,
	shopID uuid.UUID,
	zoneID uuid.UUID,
	courierID *uuid.UUID,
	orderType Type,
	status Status,
	pricing Pricing,
	details Details,
	courierNotes string,
	courierRating *int,
	courierFeedback string,
	createdAt time.Time,
	acceptedAt *time.Time,
	deliveredAt *time.Time,
	confirmedAt *time.Time,
	autoconfirmedAt *time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(status.Validate(), orderType.Validate()); err != nil {
		return nil, err
	}

	o := &Order{
		id:              id,
		shopID:          shopID,
		zoneID:          zoneID,
		courierID:       courierID,
		orderType:       orderType,
		status:          status,
		pricing:         pricing,
		details:         details,
		courierNotes:    courierNotes,
		courierRating:   courierRating,
		courierFeedback: courierFeedback,
		createdAt:       createdAt,
		acceptedAt:      acceptedAt,
		deliveredAt:     deliveredAt,
		confirmedAt:     confirmedAt,
		autoconfirmedAt: autoconfirmedAt,
		updatedAt:       updatedAt,
		isConstructed:   true,
	}
	return o, nil
}

// Validate ensures the order was produced by a factory function and not by
// direct struct instantiation.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

func (o *Order) ID() uuid.UUID           { return o.id }
func (o *Order) ShopID() uuid.UUID       { return o.shopID }
func (o *Order) ZoneID() uuid.UUID       { return o.zoneID }
func (o *Order) CourierID() *uuid.UUID   { return o.courierID }
func (o *Order) Type() Type              { return o.orderType }
func (o *Order) Status() Status          { return o.status }
func (o *Order) Pricing() Pricing        { return o.pricing }
func (o *Order) Price() decimal.Decimal  { return o.pricing.Total }
func (o *Order) Details() Details        { return o.details }
func (o *Order) CourierNotes() string    { return o.courierNotes }
func (o *Order) CourierRating() *int     { return o.courierRating }
func (o *Order) CourierFeedback() string { return o.courierFeedback }

func (o *Order) CreatedAt() time.Time        { return o.createdAt }
func (o *Order) AcceptedAt() *time.Time      { return o.acceptedAt }
func (o *Order) DeliveredAt() *time.Time     { return o.deliveredAt }
func (o *Order) ConfirmedAt() *time.Time     { return o.confirmedAt }
func (o *Order) AutoconfirmedAt() *time.Time { return o.autoconfirmedAt }
func (o *Order) UpdatedAt() time.Time        { return o.updatedAt }

// Assign binds a courier to a created order and moves it to accepted.
// Assignment is the only way an order becomes accepted.
func (o *Order) Assign(courierID uuid.UUID, at time.Time) error {
	if courierID == uuid.Nil {
		return errs.NewValueIsRequiredError("courierId")
	}
	if o.status != Created {
		return errs.NewInvalidStateError(
			fmt.Sprintf("a courier can only be assigned to a created order, not %s", o.status))
	}

	o.courierID = &courierID
	o.status = Accepted
	o.acceptedAt = &at
	o.updatedAt = at
	return nil
}

// ChangeStatus moves the order along the state machine. The accepted and
// completed targets are owned by Assign and Confirm/AutoConfirm respectively
// and are rejected here, so their side effects cannot be skipped.
// Reaching delivered stamps deliveredAt.
func (o *Order) ChangeStatus(next Status, at time.Time) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if next == Accepted {
		return errs.NewInvalidStateError("an order becomes accepted through courier assignment")
	}
	if next == Completed {
		return errs.NewInvalidStateError("an order becomes completed through confirmation")
	}
	if !o.status.CanTransitionTo(next) {
		return errs.NewInvalidStateError(
			fmt.Sprintf("transition from %s to %s is not allowed", o.status, next))
	}

	if next == Delivered {
		o.deliveredAt = &at
	}
	o.status = next
	o.updatedAt = at
	return nil
}

// Confirm records the shop's manual delivery confirmation.
func (o *Order) Confirm(at time.Time) error {
	if err := o.completable(); err != nil {
		return err
	}

	o.status = Completed
	o.confirmedAt = &at
	o.updatedAt = at
	return nil
}

// AutoConfirm records a completion produced by the auto-confirm sweep after
// the grace period elapsed without a manual confirmation.
func (o *Order) AutoConfirm(at time.Time) error {
	if err := o.completable(); err != nil {
		return err
	}

	o.status = Completed
	o.autoconfirmedAt = &at
	o.updatedAt = at
	return nil
}

func (o *Order) completable() error {
	if o.status != Delivered {
		return errs.NewInvalidStateError("only a delivered order can be confirmed")
	}
	if o.confirmedAt != nil || o.autoconfirmedAt != nil {
		return errs.NewInvalidStateError("order is already confirmed")
	}
	return nil
}

// RateCourier records the shop's one-time rating of the courier's work.
// The rating is written at most once and only after the order reached
// completed or disputed.
func (o *Order) RateCourier(rating int, feedback string) error {
	if rating < 1 || rating > 5 {
		return errs.NewValueIsOutOfRangeError("rating", rating, 1, 5)
	}
	if o.status != Completed && o.status != Disputed {
		return errs.NewInvalidStateError("only a completed or disputed order can be rated")
	}
	if o.courierRating != nil {
		return errs.NewInvalidStateError("order is already rated")
	}

	o.courierRating = &rating
	if feedback != "" {
		o.courierFeedback = feedback
	}
	return nil
}

// SetCourierNotes overwrites the courier's free-form notes.
func (o *Order) SetCourierNotes(notes string) {
	o.courierNotes = notes
}

func (o *Order) setID(id uuid.UUID) error {
	if id == uuid.Nil {
		return errs.NewValueIsRequiredError("orderId")
	}
	o.id = id
	return nil
}

func (o *Order) setShopID(id uuid.UUID) error {
	if id == uuid.Nil {
		return errs.NewValueIsRequiredError("shopId")
	}
	o.shopID = id
	return nil
}

func (o *Order) setZoneID(id uuid.UUID) error {
	if id == uuid.Nil {
		return errs.NewValueIsRequiredError("zoneId")
	}
	o.zoneID = id
	return nil
}

func (o *Order) setType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	o.orderType = t
	return nil
}

func (o *Order) setDetails(d Details) error {
	if d.RecipientPhone == "" {
		return errs.NewValueIsRequiredError("recipientPhone")
	}
	if d.RecipientAddress == "" {
		return errs.NewValueIsRequiredError("recipientAddress")
	}
	if d.PickupAddress == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	o.details = d
	return nil
}
