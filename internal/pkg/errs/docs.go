// Package errs provides the typed errors shared by every layer of retailops.
//
// Each kind follows the same shape:
//   - a sentinel error variable (e.g., ErrObjectNotFound) used with errors.Is
//   - a struct type carrying the offending field, identifier or status pair
//   - constructor functions with and without cause where a cause makes sense
//   - Error() for the rendered message and Unwrap() for classification
//
// Kinds used by the core:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input,
//     all of which also match ErrValidation
//   - InvalidTransitionError: a status move the state machine forbids
//   - AuthorizationError: a role that may not invoke an operation
//   - ObjectNotFoundError: an identifier that does not exist
//   - PersistenceError: a failed storage read or write
//
// None of these are fatal; the transport layer maps them to responses.
package errs
