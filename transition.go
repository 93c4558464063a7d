package fsm

import "fmt"

// Transition is an immutable rule describing how a machine reacts to one
// event: when event arrives while the machine is in the path's first state,
// the machine walks the remaining states of the path in order. A transition
// is identified by the pair (event, start state); within one machine no two
// transitions may share that identity.
type Transition[E comparable, S comparable] struct {
	event     E
	statePath []S
}

// NewTransition creates a validated transition for the given event and
// state path. The path must contain at least two states and must not
// contain the same state twice in a row; non-adjacent repeats are allowed,
// so cyclic paths like A->B->A are valid. The transition stores its own
// copy of the path, so later mutation of the caller's slice has no effect.
func NewTransition[E comparable, S comparable](event E, statePath ...S) (Transition[E, S], error) {
	if len(statePath) < 2 {
		return Transition[E, S]{}, NewInvalidTransitionError(
			fmt.Sprintf("state path must contain at least 2 states, got %d", len(statePath)))
	}
	for i := 1; i < len(statePath); i++ {
		if statePath[i] == statePath[i-1] {
			return Transition[E, S]{}, NewInvalidTransitionError(
				fmt.Sprintf("state path contains adjacent duplicate state '%v' at index %d", statePath[i], i))
		}
	}

	path := make([]S, len(statePath))
	copy(path, statePath)

	return Transition[E, S]{event: event, statePath: path}, nil
}

// Event returns the event that triggers this transition.
func (t Transition[E, S]) Event() E {
	return t.event
}

// Start returns the state the machine must be in for the event to match.
func (t Transition[E, S]) Start() S {
	return t.statePath[0]
}

// StatePath returns a copy of the full state path, start state included.
func (t Transition[E, S]) StatePath() []S {
	path := make([]S, len(t.statePath))
	copy(path, t.statePath)
	return path
}

func (t Transition[E, S]) String() string {
	return fmt.Sprintf("transition on '%v' along %v", t.event, t.statePath)
}
