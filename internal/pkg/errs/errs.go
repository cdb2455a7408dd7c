package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used for classification with errors.Is. Every typed error in
// this package unwraps to exactly one of these, which is what the HTTP layer
// relies on to choose a status code without parsing message text.
var (
	// ErrObjectNotFound indicates a referenced entity does not exist.
	ErrObjectNotFound = errors.New("object not found")
	// ErrValueIsInvalid indicates a malformed input value.
	ErrValueIsInvalid = errors.New("value is invalid")
	// ErrValueIsRequired indicates a missing required value.
	ErrValueIsRequired = errors.New("value is required")
	// ErrValueIsOutOfRange indicates a value outside its allowed bounds.
	ErrValueIsOutOfRange = errors.New("value is out of range")
	// ErrInvalidState indicates an operation attempted in a state that forbids it.
	ErrInvalidState = errors.New("invalid state")
	// ErrCapacityExceeded indicates a courier is already at maximum load.
	ErrCapacityExceeded = errors.New("capacity exceeded")
	// ErrCourierUnavailable indicates a courier is not on shift.
	ErrCourierUnavailable = errors.New("courier unavailable")
	// ErrOperationNotSupported indicates an operation that is not defined for
	// the entity it was invoked on (e.g. automatic assignment of a normal order).
	ErrOperationNotSupported = errors.New("operation not supported")
)

// sanitize strips newlines from values interpolated into error messages so a
// single log line cannot be split by attacker-controlled input.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// ObjectNotFoundError is returned when an entity lookup by identifier fails.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given
// parameter name and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping the
// underlying cause, typically a storage-layer error.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError is returned when an input value fails validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping the
// validation failure that caused it.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError is returned when a required value is absent.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsOutOfRangeError is returned when a numeric value violates its bounds,
// e.g. a courier rating outside [1, 5].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError with the observed
// value and the inclusive bounds it violated.
func NewValueIsOutOfRangeError(paramName string, value, minimum, maximum any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minimum, Max: maximum}
}

func (e *ValueIsOutOfRangeError) Error() string {
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsOutOfRange, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// InvalidStateError is returned when the current lifecycle state of an entity
// forbids the requested operation. The message describes the violated rule.
type InvalidStateError struct {
	Message string
	Cause   error
}

// NewInvalidStateError creates an InvalidStateError with a description of the
// violated lifecycle rule.
func NewInvalidStateError(message string) *InvalidStateError {
	return &InvalidStateError{Message: message}
}

// NewInvalidStateErrorWithCause creates an InvalidStateError wrapping an
// underlying error.
func NewInvalidStateErrorWithCause(message string, cause error) *InvalidStateError {
	return &InvalidStateError{Message: message, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrInvalidState, e.Message, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrInvalidState, e.Message))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// CapacityExceededError is returned when a courier already carries the maximum
// number of concurrent orders.
type CapacityExceededError struct {
	CourierID any
}

// NewCapacityExceededError creates a CapacityExceededError for the courier.
func NewCapacityExceededError(courierID any) *CapacityExceededError {
	return &CapacityExceededError{CourierID: courierID}
}

func (e *CapacityExceededError) Error() string {
	return sanitize(fmt.Sprintf("%s: courier %v has no free slots", ErrCapacityExceeded, e.CourierID))
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

// CourierUnavailableError is returned when a courier exists but is not active.
type CourierUnavailableError struct {
	CourierID any
}

// NewCourierUnavailableError creates a CourierUnavailableError for the courier.
func NewCourierUnavailableError(courierID any) *CourierUnavailableError {
	return &CourierUnavailableError{CourierID: courierID}
}

func (e *CourierUnavailableError) Error() string {
	return sanitize(fmt.Sprintf("%s: courier %v is not active", ErrCourierUnavailable, e.CourierID))
}

func (e *CourierUnavailableError) Unwrap() error {
	return ErrCourierUnavailable
}

// OperationNotSupportedError is returned when the requested operation is not
// defined for the target entity.
type OperationNotSupportedError struct {
	Operation string
	Reason    string
}

// NewOperationNotSupportedError creates an OperationNotSupportedError naming
// the operation and the reason it does not apply.
func NewOperationNotSupportedError(operation, reason string) *OperationNotSupportedError {
	return &OperationNotSupportedError{Operation: operation, Reason: reason}
}

func (e *OperationNotSupportedError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s: %s", ErrOperationNotSupported, e.Operation, e.Reason))
}

func (e *OperationNotSupportedError) Unwrap() error {
	return ErrOperationNotSupported
}
