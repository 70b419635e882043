// Package errs provides the error taxonomy shared by the domain, application
// and adapter layers of the relocation service.
//
// Every error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct type with the details of the failure
//   - constructor functions, with and without a cause
//   - Unwrap returning the sentinel, so callers branch with errors.Is
//
// The sentinels map onto the externally visible categories:
//   - ErrValueIsInvalid, ErrValueIsRequired, ErrValueIsOutOfRange: validation errors
//   - ErrInvalidTransition: a state machine precondition was not met
//   - ErrObjectNotFound: a referenced entity does not exist
//   - ErrForbidden: the record lies outside the caller's access scope
//   - ErrConflict: a uniqueness constraint would be violated
//   - ErrUnauthenticated: credentials or tokens were rejected
package errs
