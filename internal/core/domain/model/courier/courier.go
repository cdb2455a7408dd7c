package courier

import (
	"errors"

	"courierhub/internal/pkg/errs"

	"github.com/google/uuid"
)

// defaultMaxOrders is the capacity ceiling applied when a courier is
// registered without an explicit one.
const defaultMaxOrders = 5

// ErrCourierIsNotConstructed is returned when a Courier instance was not
// created through NewCourier or RestoreCourier.
var ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")

// Courier is the aggregate tracking a courier's availability and load.
//
// Invariant: 0 <= currentOrders <= maxOrders at all times. The aggregate
// enforces it for in-memory mutations; the storage layer repeats the same
// guards as conditional updates so the invariant also holds under concurrent
// assignments.
type Courier struct {
	id            uuid.UUID
	userID        uuid.UUID
	name          string
	isActive      bool
	currentOrders int
	maxOrders     int

	isConstructed bool
}

// NewCourier registers a courier with zero load. A non-positive maxOrders
// falls back to the default ceiling. New couriers start inactive; they go on
// shift through Activate.
func NewCourier(id uuid.UUID, userID uuid.UUID, name string, maxOrders int) (*Courier, error) {
	if maxOrders <= 0 {
		maxOrders = defaultMaxOrders
	}

	c := &Courier{
		maxOrders:     maxOrders,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setUserID(userID),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a courier from persistence.
func RestoreCourier(id uuid.UUID, userID uuid.UUID, name string, isActive bool, currentOrders, maxOrders int) (*Courier, error) {
	if maxOrders <= 0 {
		return nil, errs.NewValueIsInvalidError("maxOrders")
	}
	if currentOrders < 0 || currentOrders > maxOrders {
		return nil, errs.NewValueIsOutOfRangeError("currentOrders", currentOrders, 0, maxOrders)
	}

	c := &Courier{
		id:            id,
		userID:        userID,
		name:          name,
		isActive:      isActive,
		currentOrders: currentOrders,
		maxOrders:     maxOrders,
		isConstructed: true,
	}
	return c, nil
}

// Validate ensures the courier was produced by a factory function.
func (c *Courier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCourierIsNotConstructed
	}
	return nil
}

// IsEqual compares two couriers by identifier.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id == other.id
}

func (c *Courier) ID() uuid.UUID      { return c.id }
func (c *Courier) UserID() uuid.UUID  { return c.userID }
func (c *Courier) Name() string       { return c.name }
func (c *Courier) IsActive() bool     { return c.isActive }
func (c *Courier) CurrentOrders() int { return c.currentOrders }
func (c *Courier) MaxOrders() int     { return c.maxOrders }

// Activate puts the courier on shift, making them eligible for assignments.
func (c *Courier) Activate() {
	c.isActive = true
}

// Deactivate takes the courier off shift. Orders already in progress keep
// their assignment.
func (c *Courier) Deactivate() {
	c.isActive = false
}

// CanTakeOrder reports whether the courier is on shift with a free slot.
func (c *Courier) CanTakeOrder() bool {
	return c.isActive && c.currentOrders < c.maxOrders
}

// TakeOrder occupies one load slot. The checks mirror the assignment
// preconditions so each violation surfaces as its own error kind.
func (c *Courier) TakeOrder() error {
	if !c.isActive {
		return errs.NewCourierUnavailableError(c.id)
	}
	if c.currentOrders >= c.maxOrders {
		return errs.NewCapacityExceededError(c.id)
	}

	c.currentOrders++
	return nil
}

// ReleaseOrder frees one load slot when an order the courier carried reaches
// a terminal state. Releasing at zero load is a no-op so the release paths
// stay idempotent.
func (c *Courier) ReleaseOrder() {
	if c.currentOrders > 0 {
		c.currentOrders--
	}
}

func (c *Courier) setID(id uuid.UUID) error {
	if id == uuid.Nil {
		return errs.NewValueIsRequiredError("courierId")
	}
	c.id = id
	return nil
}

func (c *Courier) setUserID(id uuid.UUID) error {
	if id == uuid.Nil {
		return errs.NewValueIsRequiredError("userId")
	}
	c.userID = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
