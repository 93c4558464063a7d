package fsm

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// transitionKey identifies a transition inside a machine: the event plus
// the state the machine must be in when the event arrives.
type transitionKey[E comparable, S comparable] struct {
	event E
	state S
}

// Builder accumulates transitions and produces immutable machines. It is a
// short-lived, single-owner construction object and is not safe for
// concurrent use. A builder may be reused: every Build call hands out a
// machine with its own copy of the transition table, so transitions added
// afterwards never reach machines built earlier.
type Builder[E comparable, S comparable, P any] struct {
	table      map[transitionKey[E, S]][]S
	initial    S
	hasInitial bool
	logger     *slog.Logger
	id         string
}

// NewBuilder creates an empty builder.
func NewBuilder[E comparable, S comparable, P any]() *Builder[E, S, P] {
	return &Builder[E, S, P]{
		table: make(map[transitionKey[E, S]][]S),
	}
}

// AddTransition registers a transition. No two transitions may share both
// the event and the start state: the first one added wins, and adding a
// second with the same identity fails with a *BuilderValidationError.
// Returns the builder for chaining.
func (b *Builder[E, S, P]) AddTransition(t Transition[E, S]) (*Builder[E, S, P], error) {
	if len(t.statePath) == 0 {
		return b, NewBuilderValidationError("uninitialized transition, use NewTransition")
	}

	key := transitionKey[E, S]{event: t.event, state: t.statePath[0]}
	if _, exists := b.table[key]; exists {
		return b, NewBuilderValidationError(
			fmt.Sprintf("duplicate transition: event '%v' in state '%v' is already defined", key.event, key.state))
	}

	rest := make([]S, len(t.statePath)-1)
	copy(rest, t.statePath[1:])
	b.table[key] = rest

	return b, nil
}

// SetInitialState records the state machines built by this builder start
// in. Returns the builder for chaining.
func (b *Builder[E, S, P]) SetInitialState(state S) *Builder[E, S, P] {
	b.initial = state
	b.hasInitial = true
	return b
}

// WithLogger sets the logger built machines report to. Without one,
// machines use slog.Default.
func (b *Builder[E, S, P]) WithLogger(logger *slog.Logger) *Builder[E, S, P] {
	b.logger = logger
	return b
}

// WithID sets the instance id of built machines. Without one, every built
// machine gets a generated UUID.
func (b *Builder[E, S, P]) WithID(id string) *Builder[E, S, P] {
	b.id = id
	return b
}

// Build validates the accumulated configuration and returns a new machine.
// It fails with a *BuilderValidationError when no initial state was set,
// when no transitions were added, or when no transition starts in the
// initial state (a machine that could never consume anything is treated as
// a configuration mistake). The machine receives a deep copy of the
// transition table, so the builder can keep being mutated afterwards
// without affecting it.
func (b *Builder[E, S, P]) Build() (*Machine[E, S, P], error) {
	if !b.hasInitial {
		return nil, NewBuilderValidationError("initial state is not defined")
	}
	if len(b.table) == 0 {
		return nil, NewBuilderValidationError("no transitions defined")
	}
	startable := false
	for key := range b.table {
		if key.state == b.initial {
			startable = true
			break
		}
	}
	if !startable {
		return nil, NewBuilderValidationError("no transition defined with start state matching the initial state")
	}

	table := make(map[transitionKey[E, S]][]S, len(b.table))
	for key, path := range b.table {
		entry := make([]S, len(path))
		copy(entry, path)
		table[key] = entry
	}

	logger := b.logger
	if logger == nil {
		logger = slog.Default()
	}

	id := b.id
	if id == "" {
		id = uuid.New().String()
	}

	return &Machine[E, S, P]{
		table:   table,
		current: b.initial,
		id:      id,
		logger:  logger,
	}, nil
}
