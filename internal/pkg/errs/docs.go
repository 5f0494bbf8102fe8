// Package errs provides the typed errors shared by the domain, application
// and adapter layers.
//
// Every error kind follows the same shape:
//   - a sentinel variable (ErrValueIsRequired, ErrObjectNotFound, ...) for errors.Is
//   - a struct carrying the details (parameter name, offending value)
//   - a New... constructor; kinds that wrap an underlying failure
//     (ValueIsInvalidError, CopyFailedError) take the cause
//   - Error() for the message and Unwrap() exposing the sentinel
//
// CopyFailedError additionally unwraps to its cause, so callers can match
// both the sentinel and the underlying reason. A copy failure means an
// object could not be duplicated at all; it is never retried.
package errs
