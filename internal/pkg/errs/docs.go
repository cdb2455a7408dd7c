// Package errs provides standardized error types for the delivery-coordination
// backend. It implements a consistent pattern for error creation, formatting,
// and unwrapping that is used throughout the application.
//
// The package covers both generic validation failures and the domain error
// taxonomy of the order lifecycle engine:
//   - ObjectNotFoundError: a referenced order/courier/zone does not exist
//   - InvalidStateError: an operation attempted in a forbidden lifecycle state
//   - CapacityExceededError: a courier is at maximum load
//   - CourierUnavailableError: a courier is off shift
//   - OperationNotSupportedError: the operation is undefined for the target
//   - ValueIsInvalidError / ValueIsRequiredError / ValueIsOutOfRangeError:
//     malformed, missing, or out-of-bounds input
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrInvalidState)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Callers classify errors exclusively with errors.Is against the sentinels;
// message text is for humans and logs only.
package errs
