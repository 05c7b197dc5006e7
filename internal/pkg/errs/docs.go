// Package errs provides standardized error types for the kitchen ordering
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package defines one error type per failure class:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or out of contract
//   - ValueIsOutOfRangeError: a numeric value is outside its allowed bounds
//   - ObjectNotFoundError: a referenced order, line, or product is absent
//   - InvalidTransitionError: an order status transition is not allowed
//     from the current status
//   - ForbiddenError: the acting role lacks permission for the operation
//   - AlreadyCompleteError: a line's prepared count already meets its
//     ordered quantity (benign rejection, not a server failure)
//   - ConflictError: a uniqueness or concurrency constraint fired; callers
//     may retry the whole operation a bounded number of times
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// The sentinels are the contract between layers: command handlers and the
// HTTP adapter classify failures with errors.Is against them, which is how
// "retry is useless" (not found, forbidden, invalid transition) is told
// apart from "retry may help" (conflict).
package errs
