package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is the sentinel for order status transitions
	// attempted from a state that does not allow them.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrForbidden is the sentinel for operations the acting role is not
	// permitted to perform.
	ErrForbidden = errors.New("action is forbidden")

	// ErrAlreadyComplete is the sentinel for increments against a line whose
	// prepared count already meets its ordered quantity. It marks a benign
	// rejection: the caller's work is done, nothing was mutated.
	ErrAlreadyComplete = errors.New("already complete")

	// ErrConflict is the sentinel for uniqueness or concurrency constraint
	// violations. Operations failing with it may be retried as a whole a
	// bounded number of times.
	ErrConflict = errors.New("conflict")
)

// InvalidTransitionError reports a status transition attempted from a state
// lacking the required precondition. Current and Expected carry the exact
// status names so callers can surface them.
type InvalidTransitionError struct {
	Action   string
	Current  string
	Expected string
	Cause    error
}

// NewInvalidTransitionError creates an error for a disallowed transition.
func NewInvalidTransitionError(action, current, expected string) *InvalidTransitionError {
	return &InvalidTransitionError{Action: action, Current: current, Expected: expected}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: cannot %s, current status is: %s, expected is: %s (cause: %s)",
			ErrInvalidTransition, e.Action, e.Current, e.Expected, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: cannot %s, current status is: %s, expected is: %s",
		ErrInvalidTransition, e.Action, e.Current, e.Expected))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ForbiddenError reports an operation rejected by the access policy.
type ForbiddenError struct {
	Action string
	Role   string
	Cause  error
}

// NewForbiddenError creates an error for an operation the role may not perform.
func NewForbiddenError(action, role string) *ForbiddenError {
	return &ForbiddenError{Action: action, Role: role}
}

func (e *ForbiddenError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s is not allowed for role %s (cause: %s)",
			ErrForbidden, e.Action, e.Role, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s is not allowed for role %s", ErrForbidden, e.Action, e.Role))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// AlreadyCompleteError reports an increment against a fully prepared line.
type AlreadyCompleteError struct {
	ParamName string
	Cause     error
}

// NewAlreadyCompleteError creates an error for a line whose prepared count
// already meets its ordered quantity.
func NewAlreadyCompleteError(paramName string) *AlreadyCompleteError {
	return &AlreadyCompleteError{ParamName: paramName}
}

func (e *AlreadyCompleteError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrAlreadyComplete, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrAlreadyComplete, e.ParamName))
}

func (e *AlreadyCompleteError) Unwrap() error {
	return ErrAlreadyComplete
}

// ConflictError reports a storage-level uniqueness or concurrency violation.
type ConflictError struct {
	ParamName string
	Cause     error
}

// NewConflictError creates an error for a constraint violation.
func NewConflictError(paramName string) *ConflictError {
	return &ConflictError{ParamName: paramName}
}

// NewConflictErrorWithCause creates an error for a constraint violation
// carrying the underlying cause.
func NewConflictErrorWithCause(paramName string, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrConflict, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrConflict, e.ParamName))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
