package order

import (
	"fmt"

	"courierhub/internal/pkg/errs"
)

// Type classifies an order for pricing and assignment purposes.
type Type string

const (
	// TypeNormal is a regular delivery priced at the zone base price.
	TypeNormal Type = "normal"
	// TypeSpecial is priced at base plus a zone addon; the price is shown to
	// the assigned courier and the order is eligible for automatic assignment.
	TypeSpecial Type = "special"
	// TypeRushHour is a delivery outside working hours with a surcharge.
	TypeRushHour Type = "rush_hour"
	// TypeLongDistance is a delivery beyond the zone radius with a surcharge.
	TypeLongDistance Type = "long_distance"
	// TypeImportant is fully priced by the shop; the zone base does not apply.
	TypeImportant Type = "important"
)

var validTypes = map[Type]struct{}{
	TypeNormal:       {},
	TypeSpecial:      {},
	TypeRushHour:     {},
	TypeLongDistance: {},
	TypeImportant:    {},
}

// Validate checks that the type is one of the defined order types.
func (t Type) Validate() error {
	if _, ok := validTypes[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("orderType",
			fmt.Errorf("%q is not a valid order type", string(t)))
	}
	return nil
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// SupportsAutoAssignment reports whether the automatic assignment engine may
// pick a courier for orders of this type. Only special orders qualify.
func (t Type) SupportsAutoAssignment() bool {
	return t == TypeSpecial
}
