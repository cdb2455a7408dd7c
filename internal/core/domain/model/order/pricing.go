package order

import "github.com/shopspring/decimal"

// Default surcharges applied when the shop did not supply its own addon.
// Monetary values are decimals, never floats, to avoid rounding drift when
// addons are summed.
var (
	defaultRushHourAddon     = decimal.NewFromInt(1000)
	defaultLongDistanceAddon = decimal.NewFromInt(500)
)

// Pricing is the frozen price breakdown of an order. It is computed exactly
// once at creation and never recalculated afterwards.
type Pricing struct {
	Base          decimal.Decimal
	ZoneAddon     decimal.Decimal
	RushHourAddon decimal.Decimal
	Total         decimal.Decimal
}

// CalculatePricing applies the per-type pricing rule and returns the frozen
// breakdown.
//
// Rules:
//   - normal: total is the zone base price.
//   - special: base plus the zone addon supplied by the shop.
//   - rush_hour: a default surcharge of 1000 is applied when the shop sent a
//     zero rush-hour addon.
//   - long_distance: a default surcharge of 500 is applied when the shop sent
//     a zero zone addon.
//   - important: the base component is forced to zero; the shop prices the
//     order entirely through addons.
//
// The total is always base + zone addon + rush-hour addon.
func CalculatePricing(orderType Type, zoneBasePrice, zoneAddon, rushHourAddon decimal.Decimal) Pricing {
	base := zoneBasePrice

	switch orderType {
	case TypeRushHour:
		if rushHourAddon.IsZero() {
			rushHourAddon = defaultRushHourAddon
		}
	case TypeLongDistance:
		if zoneAddon.IsZero() {
			zoneAddon = defaultLongDistanceAddon
		}
	case TypeImportant:
		base = decimal.Zero
	case TypeNormal, TypeSpecial:
		// Base price straight from the zone; the special addon, if any,
		// already arrived in zoneAddon.
	}

	return Pricing{
		Base:          base,
		ZoneAddon:     zoneAddon,
		RushHourAddon: rushHourAddon,
		Total:         base.Add(zoneAddon).Add(rushHourAddon),
	}
}
