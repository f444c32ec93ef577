package errs

import (
	"errors"
	"fmt"
)

// Workflow errors raised by the order state machine and the delivery coordinator.
var (
	ErrInvalidTransition      = errors.New("invalid transition")
	ErrInvalidState           = errors.New("invalid state")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrAgentUnavailable       = errors.New("agent unavailable")
	ErrOtpMismatch            = errors.New("confirmation code mismatch")
	ErrConcurrentModification = errors.New("concurrent modification")
	ErrRequestExpired         = errors.New("delivery request expired")
)

// InvalidTransitionError means the requested edge does not exist in the status graph.
type InvalidTransitionError struct {
	From string
	To   string
}

func NewInvalidTransitionError(from, to fmt.Stringer) *InvalidTransitionError {
	return &InvalidTransitionError{From: from.String(), To: to.String()}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// InvalidStateError means the operation exists but the entity is not in a state that permits it.
type InvalidStateError struct {
	Operation string
	State     string
}

func NewInvalidStateError(operation string, state fmt.Stringer) *InvalidStateError {
	return &InvalidStateError{Operation: operation, State: state.String()}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: cannot %s while %s", ErrInvalidState, e.Operation, e.State)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// UnauthorizedError means the caller's role may not perform the action.
type UnauthorizedError struct {
	Role   string
	Action string
}

func NewUnauthorizedError(role fmt.Stringer, action string) *UnauthorizedError {
	return &UnauthorizedError{Role: role.String(), Action: action}
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("%s: %s may not %s", ErrUnauthorized, e.Role, e.Action)
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// AgentUnavailableError means the assignment target does not resolve or is not on the vendor's roster.
type AgentUnavailableError struct {
	AgentID string
	Cause   error
}

func NewAgentUnavailableError(agentID string) *AgentUnavailableError {
	return &AgentUnavailableError{AgentID: agentID}
}

func NewAgentUnavailableErrorWithCause(agentID string, cause error) *AgentUnavailableError {
	return &AgentUnavailableError{AgentID: agentID, Cause: cause}
}

func (e *AgentUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrAgentUnavailable, e.AgentID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrAgentUnavailable, e.AgentID)
}

func (e *AgentUnavailableError) Unwrap() error {
	return ErrAgentUnavailable
}

// ConcurrentModificationError means a guarded write lost a race.
type ConcurrentModificationError struct {
	Entity string
	ID     string
}

func NewConcurrentModificationError(entity, id string) *ConcurrentModificationError {
	return &ConcurrentModificationError{Entity: entity, ID: id}
}

func (e *ConcurrentModificationError) Error() string {
	return fmt.Sprintf("%s: %s %s was changed by another writer", ErrConcurrentModification, e.Entity, e.ID)
}

func (e *ConcurrentModificationError) Unwrap() error {
	return ErrConcurrentModification
}

// Retryable reports whether the caller may repeat the operation with a fresh submission.
func Retryable(err error) bool {
	return errors.Is(err, ErrOtpMismatch) ||
		errors.Is(err, ErrConcurrentModification) ||
		errors.Is(err, ErrRequestExpired)
}
