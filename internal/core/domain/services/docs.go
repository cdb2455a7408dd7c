// Package services provides domain services that orchestrate business
// operations across multiple aggregates.
//
// The package includes:
//   - CourierDispatcher: selects the least-loaded available courier for a
//     special order during automatic assignment
package services
