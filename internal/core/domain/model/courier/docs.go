// Package courier contains the Courier aggregate: the registry entry that
// tracks whether a courier is on shift and how many orders they currently
// carry against their capacity ceiling.
package courier
