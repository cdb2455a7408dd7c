package ports

import (
	"context"
	"time"

	"courierhub/internal/core/domain/model/registration"
)

// CodeStore keeps one-time registration codes in a key-value store with a
// TTL. A code is consumed atomically on redemption, so it can be used at
// most once even when two redeemers race.
type CodeStore interface {
	// Save stores a code under its value unless that value is already taken.
	// An occupied value surfaces as an InvalidStateError so the issuer can
	// regenerate.
	Save(ctx context.Context, code *registration.Code, ttl time.Duration) error

	// Redeem atomically fetches and deletes a code. An unknown or expired
	// value surfaces as an ObjectNotFoundError.
	Redeem(ctx context.Context, value string) (*registration.Code, error)
}
