// Package errs holds the error types of the orderflow service.
//
// There are two families:
//   - Validation errors (ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError,
//     ObjectNotFoundError) raised by constructors and repositories
//   - Workflow errors (InvalidTransitionError, InvalidStateError, UnauthorizedError,
//     AgentUnavailableError, ConcurrentModificationError, ErrOtpMismatch, ErrRequestExpired)
//     raised by the order state machine, the delivery coordinator and guarded writes
//
// Every struct type unwraps to its sentinel, so callers classify with errors.Is.
//
// Retryable tells the edge whether the caller may simply submit again.
package errs
