// Package registration contains the one-time registration code issued by
// admins so shops and couriers can onboard through the messaging bot. Codes
// live in a key-value store with a short TTL and are consumed on first use.
package registration

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"courierhub/internal/pkg/errs"
)

// CodeLength is the number of digits in a registration code.
const CodeLength = 6

// Role is the account kind a registration code grants.
type Role string

const (
	// RoleShop registers a shop account.
	RoleShop Role = "shop"
	// RoleCourier registers a courier account.
	RoleCourier Role = "courier"
)

// Validate checks that the role is one of the registrable kinds.
func (r Role) Validate() error {
	if r != RoleShop && r != RoleCourier {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a registrable role", string(r)))
	}
	return nil
}

// Code is a one-time registration grant.
type Code struct {
	Value      string
	TelegramID int64
	Role       Role
	CreatedAt  time.Time
}

// NewCode issues a code for the given recipient and role. The digits come
// from crypto/rand; uniqueness against in-flight codes is the store's job.
func NewCode(telegramID int64, role Role, now time.Time) (*Code, error) {
	if telegramID == 0 {
		return nil, errs.NewValueIsRequiredError("telegramId")
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}

	digits := make([]byte, CodeLength)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return nil, fmt.Errorf("generating registration code: %w", err)
		}
		digits[i] = byte('0' + n.Int64())
	}

	return &Code{
		Value:      string(digits),
		TelegramID: telegramID,
		Role:       role,
		CreatedAt:  now,
	}, nil
}
