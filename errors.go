package fsm

import "fmt"

// InvalidTransitionError reports a malformed state path passed to
// NewTransition. It always signals a configuration mistake on the caller's
// side and is returned before the transition reaches any builder.
type InvalidTransitionError struct {
	Reason string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: %s", e.Reason)
}

// NewInvalidTransitionError creates a new invalid transition error
func NewInvalidTransitionError(reason string) *InvalidTransitionError {
	return &InvalidTransitionError{Reason: reason}
}

// BuilderValidationError reports a configuration-level mistake detected by
// the Builder: a duplicate transition identity at AddTransition time, or a
// missing/unusable initial state and an empty transition table at Build
// time.
type BuilderValidationError struct {
	Reason string
}

func (e *BuilderValidationError) Error() string {
	return fmt.Sprintf("builder validation failed: %s", e.Reason)
}

// NewBuilderValidationError creates a new builder validation error
func NewBuilderValidationError(reason string) *BuilderValidationError {
	return &BuilderValidationError{Reason: reason}
}

// TransitionInProgressError reports that ConsumeEvent was invoked while a
// previous multi-hop transition on the same machine had not finished its
// walk. This is a broken-invariant condition, not a recoverable runtime
// state: the machine delivers it by panicking so the violation propagates
// through the outer ConsumeEvent call instead of being swallowed.
//
// Event and State hold the offending event and the state the machine was in
// when the overlap was detected.
type TransitionInProgressError struct {
	Event any
	State any
}

func (e *TransitionInProgressError) Error() string {
	return fmt.Sprintf("transition already in progress: event '%v' rejected in state '%v'", e.Event, e.State)
}

// NewTransitionInProgressError creates a new transition in progress error
func NewTransitionInProgressError(event, state any) *TransitionInProgressError {
	return &TransitionInProgressError{Event: event, State: state}
}

// IsInvalidTransitionError checks if an error is an InvalidTransitionError
func IsInvalidTransitionError(err error) bool {
	_, ok := err.(*InvalidTransitionError)
	return ok
}

// IsBuilderValidationError checks if an error is a BuilderValidationError
func IsBuilderValidationError(err error) bool {
	_, ok := err.(*BuilderValidationError)
	return ok
}

// IsTransitionInProgressError checks if an error is a TransitionInProgressError
func IsTransitionInProgressError(err error) bool {
	_, ok := err.(*TransitionInProgressError)
	return ok
}
