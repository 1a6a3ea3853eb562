// Package errs provides standardized error types for the kitchenpos order services.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package groups errors into the three kinds callers need to tell apart:
//   - Validation errors (ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError):
//     malformed or inconsistent input. All of them match ErrValidation with errors.Is.
//   - State conflict errors (StateIsInvalidError): a well-formed request that is not
//     applicable to the current state of an entity.
//   - Not found errors (ObjectNotFoundError): a referenced entity does not exist.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
package errs
