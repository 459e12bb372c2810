// Package errs provides standardized error types for the resource sharing
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes error types for the scenarios the core distinguishes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is invalid
//   - ValueIsOutOfRangeError: a value is outside its allowed bounds
//   - ObjectNotFoundError: an object cannot be found
//   - NotAuthorizedError: the caller may not perform an operation
//   - StateConflictError: a lifecycle transition is invalid from the current state
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrStateConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// Boundary layers (HTTP, jobs) classify errors exclusively via errors.Is on
// the sentinels, which keeps status-code mapping in one place.
package errs
