package fsm

import (
	"fmt"
	"log/slog"
	"sync"
)

// Machine is a finite-state machine over caller-defined event and state
// types. It is built by a Builder, holds an immutable transition table and
// a current state, and drives state progression synchronously: ConsumeEvent
// does all of its work on the calling goroutine and notifies the registered
// listeners after every individual state change.
//
// All methods are safe for concurrent use. The machine serializes access to
// its state with an internal lock, but the lock is never held while
// listener callbacks run; it is the in-transition flag that protects a
// multi-hop walk. A ConsumeEvent call that matches a transition while a
// previous walk on the same machine is still mid-path, whether re-entered
// from a listener callback or issued by another goroutine, panics with a
// *TransitionInProgressError. A listener invoked on the final hop of a walk
// observes the flag already cleared and may legally call ConsumeEvent to
// chain transitions.
type Machine[E comparable, S comparable, P any] struct {
	table        map[transitionKey[E, S]][]S
	current      S
	listeners    []Listener[S, P]
	inTransition bool
	mutex        sync.RWMutex
	id           string
	logger       *slog.Logger
}

// ConsumeEvent feeds one event to the machine. When no transition is
// defined for (event, current state) the call is a no-op and returns false:
// events outside the configuration and events arriving in the wrong state
// are silently ignored, not errors. When a transition matches, the machine
// walks its state path hop by hop; each hop updates the current state and
// then notifies every registered listener, in registration order, over a
// snapshot of the listener set taken at that hop. Listeners may add and
// remove listeners during a callback; the change is invisible to the hop
// being delivered and takes effect from the next hop on. Returns true after
// the walk completes.
//
// The optional payload is handed to every listener notified during this
// call and is not retained; when omitted, listeners receive the zero value
// of P. Only the first payload argument is used.
//
// ConsumeEvent panics with a *TransitionInProgressError when it matches a
// transition while another walk on this machine is still in progress. State
// changes already applied by the interrupted walk stay applied; there is no
// rollback.
func (m *Machine[E, S, P]) ConsumeEvent(event E, payload ...P) bool {
	var p P
	if len(payload) > 0 {
		p = payload[0]
	}

	m.mutex.Lock()

	path, ok := m.table[transitionKey[E, S]{event: event, state: m.current}]
	if !ok {
		state := m.current
		m.mutex.Unlock()
		m.logger.Debug("event ignored", "machine", m.id, "event", event, "state", state)
		return false
	}

	if m.inTransition {
		state := m.current
		m.mutex.Unlock()
		panic(NewTransitionInProgressError(event, state))
	}

	// Clear the flag when a listener panic aborts the walk, so a caller
	// that recovers still holds a consistent machine.
	walked := false
	defer func() {
		if !walked {
			m.mutex.Lock()
			m.inTransition = false
			m.mutex.Unlock()
		}
	}()

	// The lock is held entering each iteration and released before the
	// listener callbacks. On the final hop it stays released: a nested
	// ConsumeEvent from the last callback must be able to take it, and the
	// state it mutates must not be touched here afterwards.
	for i, next := range path {
		m.inTransition = i < len(path)-1
		old := m.current
		m.current = next

		snapshot := make([]Listener[S, P], len(m.listeners))
		copy(snapshot, m.listeners)
		m.mutex.Unlock()

		m.logger.Debug("state changed",
			"machine", m.id, "event", event, "from", old, "to", next, "remaining", len(path)-1-i)

		for _, listener := range snapshot {
			listener.OnStateChanged(old, next, p)
		}

		if i < len(path)-1 {
			m.mutex.Lock()
		}
	}

	walked = true
	return true
}

// CurrentState returns the current state.
func (m *Machine[E, S, P]) CurrentState() S {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.current
}

// CanConsume reports whether a transition is defined for the given event in
// the current state. It never changes state and never notifies listeners.
func (m *Machine[E, S, P]) CanConsume(event E) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	_, ok := m.table[transitionKey[E, S]{event: event, state: m.current}]
	return ok
}

// AddListener registers a listener. Adding a listener that is already
// registered is a no-op; notification order follows registration order.
// Safe to call from within a listener callback.
func (m *Machine[E, S, P]) AddListener(listener Listener[S, P]) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, l := range m.listeners {
		if l == listener {
			return
		}
	}
	m.listeners = append(m.listeners, listener)
}

// RemoveListener removes the listener with the same identity, if
// registered. Safe to call from within a listener callback.
func (m *Machine[E, S, P]) RemoveListener(listener Listener[S, P]) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for i, l := range m.listeners {
		if l == listener {
			m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
			break
		}
	}
}

// RemoveAllListeners empties the listener set. Safe to call from within a
// listener callback.
func (m *Machine[E, S, P]) RemoveAllListeners() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.listeners = nil
}

// ID returns the machine's instance identifier.
func (m *Machine[E, S, P]) ID() string {
	return m.id
}

// Transitions reconstructs the configured transitions as caller-owned
// values, each with its full state path. The order is not specified.
func (m *Machine[E, S, P]) Transitions() []Transition[E, S] {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	transitions := make([]Transition[E, S], 0, len(m.table))
	for key, rest := range m.table {
		path := make([]S, 0, len(rest)+1)
		path = append(path, key.state)
		path = append(path, rest...)
		transitions = append(transitions, Transition[E, S]{event: key.event, statePath: path})
	}
	return transitions
}

func (m *Machine[E, S, P]) String() string {
	return fmt.Sprintf("machine %s in state '%v'", m.id, m.CurrentState())
}
