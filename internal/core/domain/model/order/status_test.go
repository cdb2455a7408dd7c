package order_test

import (
	"testing"

	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	valid := []order.Status{
		order.Created, order.Accepted, order.PickingUp, order.InProgress,
		order.Delivered, order.Completed, order.Cancelled, order.Disputed,
	}
	for _, s := range valid {
		assert.NoError(t, s.Validate(), s.String())
	}

	err := order.Status("shipped").Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    order.Status
		to      order.Status
		allowed bool
	}{
		{"created to accepted", order.Created, order.Accepted, true},
		{"created to cancelled", order.Created, order.Cancelled, true},
		{"created to disputed", order.Created, order.Disputed, true},
		{"created to delivered skips states", order.Created, order.Delivered, false},
		{"accepted to picking_up", order.Accepted, order.PickingUp, true},
		{"accepted to cancelled", order.Accepted, order.Cancelled, true},
		{"picking_up to in_progress", order.PickingUp, order.InProgress, true},
		{"picking_up to cancelled after pickup", order.PickingUp, order.Cancelled, false},
		{"in_progress to delivered", order.InProgress, order.Delivered, true},
		{"in_progress to cancelled after pickup", order.InProgress, order.Cancelled, false},
		{"delivered to completed", order.Delivered, order.Completed, true},
		{"delivered to disputed", order.Delivered, order.Disputed, true},
		{"completed is terminal", order.Completed, order.Disputed, false},
		{"cancelled is terminal", order.Cancelled, order.Accepted, false},
		{"disputed is terminal", order.Disputed, order.Completed, false},
		{"no backwards transition", order.Delivered, order.InProgress, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.True(t, order.Disputed.IsTerminal())

	assert.False(t, order.Created.IsTerminal())
	assert.False(t, order.Accepted.IsTerminal())
	assert.False(t, order.PickingUp.IsTerminal())
	assert.False(t, order.InProgress.IsTerminal())
	assert.False(t, order.Delivered.IsTerminal())
	// An unknown status must never look terminal.
	assert.False(t, order.Status("shipped").IsTerminal())
}
