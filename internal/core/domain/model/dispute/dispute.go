// Package dispute contains the Dispute aggregate: a disagreement between a
// shop and a courier over a specific order, mediated by admins. Opening a
// dispute moves the referenced order into its disputed state.
package dispute

import (
	"errors"
	"fmt"
	"time"

	"courierhub/internal/pkg/errs"

	"github.com/google/uuid"
)

// Status is the review state of a dispute.
type Status string

const (
	// Open means the dispute awaits an admin.
	Open Status = "open"
	// InReview means an admin picked the dispute up.
	InReview Status = "in_review"
	// Resolved means the admin recorded a resolution.
	Resolved Status = "resolved"
	// Closed means the dispute is archived.
	Closed Status = "closed"
)

var statusOrder = map[Status][]Status{
	Open:     {InReview, Resolved, Closed},
	InReview: {Resolved, Closed},
	Resolved: {Closed},
	Closed:   {},
}

// Validate checks that the status is one of the defined review states.
func (s Status) Validate() error {
	if _, ok := statusOrder[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("disputeStatus",
			fmt.Errorf("%q is not a valid dispute status", string(s)))
	}
	return nil
}

// Role identifies which party opened the dispute.
type Role string

const (
	// ByShop marks a dispute opened by the shop.
	ByShop Role = "shop"
	// ByCourier marks a dispute opened by the courier.
	ByCourier Role = "courier"
)

// Validate checks that the role is one of the defined parties.
func (r Role) Validate() error {
	if r != ByShop && r != ByCourier {
		return errs.NewValueIsInvalidErrorWithCause("createdByRole",
			fmt.Errorf("%q is not a valid dispute role", string(r)))
	}
	return nil
}

// Dispute records a disagreement over an order. The shop and courier
// references are copied from the order at opening time so the dispute stays
// addressable even if the order is later reassigned in an admin override.
type Dispute struct {
	id            uuid.UUID
	orderID       uuid.UUID
	shopID        uuid.UUID
	courierID     uuid.UUID
	description   string
	createdByRole Role
	status        Status
	resolution    string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewDispute opens a dispute over an order that already has a courier.
func NewDispute(
	id uuid.UUID,
	orderID uuid.UUID,
	shopID uuid.UUID,
	courierID uuid.UUID,
	description string,
	createdByRole Role,
	now time.Time,
) (*Dispute, error) {
	if id == uuid.Nil || orderID == uuid.Nil || shopID == uuid.Nil || courierID == uuid.Nil {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if description == "" {
		return nil, errs.NewValueIsRequiredError("description")
	}
	if err := createdByRole.Validate(); err != nil {
		return nil, err
	}

	return &Dispute{
		id:            id,
		orderID:       orderID,
		shopID:        shopID,
		courierID:     courierID,
		description:   description,
		createdByRole: createdByRole,
		status:        Open,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// RestoreDispute reconstructs a dispute from persistence.
func RestoreDispute(
	id uuid.UUID,
	orderID uuid.UUID,
	shopID uuid.UUID,
	courierID uuid.UUID,
	description string,
	createdByRole Role,
	status Status,
	resolution string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Dispute, error) {
	if err := errors.Join(status.Validate(), createdByRole.Validate()); err != nil {
		return nil, err
	}

	return &Dispute{
		id:            id,
		orderID:       orderID,
		shopID:        shopID,
		courierID:     courierID,
		description:   description,
		createdByRole: createdByRole,
		status:        status,
		resolution:    resolution,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (d *Dispute) ID() uuid.UUID        { return d.id }
func (d *Dispute) OrderID() uuid.UUID   { return d.orderID }
func (d *Dispute) ShopID() uuid.UUID    { return d.shopID }
func (d *Dispute) CourierID() uuid.UUID { return d.courierID }
func (d *Dispute) Description() string  { return d.description }
func (d *Dispute) CreatedByRole() Role  { return d.createdByRole }
func (d *Dispute) Status() Status       { return d.status }
func (d *Dispute) Resolution() string   { return d.resolution }
func (d *Dispute) CreatedAt() time.Time { return d.createdAt }
func (d *Dispute) UpdatedAt() time.Time { return d.updatedAt }

// Advance moves the dispute to the next review state. Resolving requires a
// resolution text; closing does not overwrite an existing one.
func (d *Dispute) Advance(next Status, resolution string, at time.Time) error {
	if err := next.Validate(); err != nil {
		return err
	}

	legal := false
	for _, allowed := range statusOrder[d.status] {
		if allowed == next {
			legal = true
			break
		}
	}
	if !legal {
		return errs.NewInvalidStateError(
			fmt.Sprintf("dispute transition from %s to %s is not allowed", d.status, next))
	}
	if next == Resolved && resolution == "" {
		return errs.NewValueIsRequiredError("resolution")
	}

	if resolution != "" {
		d.resolution = resolution
	}
	d.status = next
	d.updatedAt = at
	return nil
}
