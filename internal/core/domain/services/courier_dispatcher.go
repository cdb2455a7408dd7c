package services

import (
	"bytes"
	"time"

	"courierhub/internal/core/domain/model/courier"
	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/pkg/errs"
)

// CourierDispatcher is the domain service behind automatic assignment. It
// picks the least-loaded available courier for a special order and executes
// the assignment on both aggregates.
//
// Selection policy:
//   - only couriers that are on shift with a free slot are candidates
//   - the candidate with the minimum current load wins
//   - ties break by ascending courier id, so repeated runs over the same
//     input are deterministic
//
// An empty candidate set is not an error at this level: Dispatch returns
// (nil, nil) and the caller retries on the next sweep.
type CourierDispatcher struct{}

// NewCourierDispatcher creates a CourierDispatcher.
func NewCourierDispatcher() CourierDispatcher {
	return CourierDispatcher{}
}

// Dispatch selects a courier for the order and applies the assignment to
// both aggregates. The order must be of a type that supports automatic
// assignment and still be in created status.
func (d CourierDispatcher) Dispatch(o *order.Order, couriers []*courier.Courier, at time.Time) (*courier.Courier, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if !o.Type().SupportsAutoAssignment() {
		return nil, errs.NewOperationNotSupportedError(
			"automatic assignment", "automatic assignment unsupported for this type")
	}
	if o.Status() != order.Created {
		return nil, errs.NewInvalidStateError("only a created order can be assigned automatically")
	}

	best := d.pickLeastLoaded(couriers)
	if best == nil {
		return nil, nil
	}

	if err := best.TakeOrder(); err != nil {
		return nil, err
	}
	if err := o.Assign(best.ID(), at); err != nil {
		return nil, err
	}

	return best, nil
}

func (d CourierDispatcher) pickLeastLoaded(couriers []*courier.Courier) *courier.Courier {
	var best *courier.Courier
	for _, c := range couriers {
		if !c.CanTakeOrder() {
			continue
		}
		if best == nil || less(c, best) {
			best = c
		}
	}
	return best
}

// less orders candidates by load, then by id for deterministic ties.
func less(a, b *courier.Courier) bool {
	if a.CurrentOrders() != b.CurrentOrders() {
		return a.CurrentOrders() < b.CurrentOrders()
	}
	aID, bID := a.ID(), b.ID()
	return bytes.Compare(aID[:], bID[:]) < 0
}
