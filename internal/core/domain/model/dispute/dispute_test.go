package dispute_test

import (
	"testing"
	"time"

	"courierhub/internal/core/domain/model/dispute"
	"courierhub/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOpenDispute(t *testing.T) *dispute.Dispute {
	t.Helper()

	d, err := dispute.NewDispute(uuid.New(), uuid.New(), uuid.New(), uuid.New(),
		"package arrived damaged", dispute.ByShop, time.Now().UTC())
	require.NoError(t, err)

	return d
}

func TestNewDispute(t *testing.T) {
	d := newOpenDispute(t)

	assert.Equal(t, dispute.Open, d.Status())
	assert.Equal(t, dispute.ByShop, d.CreatedByRole())
	assert.Empty(t, d.Resolution())
}

func TestNewDispute_Validation(t *testing.T) {
	now := time.Now().UTC()

	_, err := dispute.NewDispute(uuid.Nil, uuid.New(), uuid.New(), uuid.New(),
		"missing items", dispute.ByShop, now)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = dispute.NewDispute(uuid.New(), uuid.New(), uuid.New(), uuid.New(),
		"", dispute.ByShop, now)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = dispute.NewDispute(uuid.New(), uuid.New(), uuid.New(), uuid.New(),
		"missing items", dispute.Role("admin"), now)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestDispute_Advance(t *testing.T) {
	d := newOpenDispute(t)
	now := time.Now().UTC()

	require.NoError(t, d.Advance(dispute.InReview, "", now))
	assert.Equal(t, dispute.InReview, d.Status())

	require.NoError(t, d.Advance(dispute.Resolved, "refund issued", now))
	assert.Equal(t, dispute.Resolved, d.Status())
	assert.Equal(t, "refund issued", d.Resolution())

	// Closing without new text keeps the recorded resolution.
	require.NoError(t, d.Advance(dispute.Closed, "", now))
	assert.Equal(t, "refund issued", d.Resolution())
}

func TestDispute_Advance_ResolutionIsRequired(t *testing.T) {
	d := newOpenDispute(t)

	err := d.Advance(dispute.Resolved, "", time.Now().UTC())
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Equal(t, dispute.Open, d.Status())
}

func TestDispute_Advance_NoBackwardsTransition(t *testing.T) {
	d := newOpenDispute(t)
	now := time.Now().UTC()

	require.NoError(t, d.Advance(dispute.Closed, "", now))

	err := d.Advance(dispute.InReview, "", now)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
}
