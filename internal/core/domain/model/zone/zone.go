// Package zone contains the Zone reference entity: a priced delivery region.
// Zones are created by administrative tooling and are read-only from the
// order lifecycle engine's perspective.
package zone

import (
	"errors"

	"courierhub/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Zone is a delivery region with a fixed base price for normal orders.
type Zone struct {
	id        uuid.UUID
	name      string
	radiusKm  int
	basePrice decimal.Decimal
}

// NewZone creates a zone. The radius must be positive and the base price
// non-negative.
func NewZone(id uuid.UUID, name string, radiusKm int, basePrice decimal.Decimal) (*Zone, error) {
	if id == uuid.Nil {
		return nil, errs.NewValueIsRequiredError("zoneId")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if radiusKm <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("radiusKm",
			errors.New("radius must be greater than 0"))
	}
	if basePrice.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("basePrice",
			errors.New("base price must not be negative"))
	}

	return &Zone{id: id, name: name, radiusKm: radiusKm, basePrice: basePrice}, nil
}

func (z *Zone) ID() uuid.UUID              { return z.id }
func (z *Zone) Name() string               { return z.name }
func (z *Zone) RadiusKm() int              { return z.radiusKm }
func (z *Zone) BasePrice() decimal.Decimal { return z.basePrice }
