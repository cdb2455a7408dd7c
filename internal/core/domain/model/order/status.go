package order

import (
	"fmt"

	"courierhub/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the delivery workflow:
//
//	created ──> accepted ──> picking_up ──> in_progress ──> delivered ──> completed
//	   │            │                            (confirm or auto-confirm)
//	   └─> cancelled└─> cancelled
//
// disputed is reachable from every non-terminal state; completed, cancelled
// and disputed are terminal. Values are stored as strings so the persisted
// rows and the API surface stay human-readable.
type Status string

const (
	// Created is the initial status: the order waits for a courier.
	Created Status = "created"
	// Accepted means a courier has been assigned.
	Accepted Status = "accepted"
	// PickingUp means the courier is on the way to the pickup address.
	PickingUp Status = "picking_up"
	// InProgress means the courier is carrying the order to the recipient.
	InProgress Status = "in_progress"
	// Delivered means the courier reported the hand-off; the shop has not
	// confirmed yet.
	Delivered Status = "delivered"
	// Completed means the shop confirmed the delivery, or the auto-confirm
	// sweep did after the grace period.
	Completed Status = "completed"
	// Cancelled means the order was withdrawn before pickup.
	Cancelled Status = "cancelled"
	// Disputed means a dispute was opened against the order.
	Disputed Status = "disputed"
)

// transitions is the single source of truth for edge legality. Every status
// change in the engine goes through CanTransitionTo; there are no ad hoc
// checks elsewhere.
var transitions = map[Status][]Status{
	Created:    {Accepted, Cancelled, Disputed},
	Accepted:   {PickingUp, Cancelled, Disputed},
	PickingUp:  {InProgress, Disputed},
	InProgress: {Delivered, Disputed},
	Delivered:  {Completed, Disputed},
	Completed:  {},
	Cancelled:  {},
	Disputed:   {},
}

// Validate checks that the status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := transitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid order status", string(s)))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether moving from s directly to next is a legal
// edge of the order state machine.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
