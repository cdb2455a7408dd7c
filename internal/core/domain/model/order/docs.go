// Package order contains the Order aggregate and its supporting value
// objects: the lifecycle Status state machine, the order Type classification,
// and the frozen Pricing breakdown.
//
// An order is created by a shop, assigned to a courier manually or (for
// special orders) automatically, driven through pickup and delivery by the
// courier, and closed either by the shop's confirmation or by the
// auto-confirm sweep. The aggregate enforces transition legality, timestamp
// stamping, price immutability and the single-write courier rating; the
// storage layer adds the matching conditional updates so the same rules hold
// under concurrent writers.
package order
