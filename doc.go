// Package fsm provides a generic, embeddable finite-state-machine
// primitive: a validating builder turns a set of declared transitions
// (event plus ordered state path) and an initial state into an immutable
// machine that drives deterministic state progression and notifies
// listeners after every individual state change.
//
// Events and states are opaque caller-defined identifiers; the machine is
// parameterized over an event type E, a state type S (both comparable, a
// small string- or int-based enumeration is the expected shape) and an
// optional payload type P forwarded to listeners per ConsumeEvent call.
// The machine performs no I/O, starts no goroutines and owns no resources;
// it is meant to be embedded in a larger application to model things like
// session lifecycle, connection state or download progress.
//
// # Usage
//
//	type State string
//	type Event string
//
//	const (
//	    Inactive  State = "INACTIVE"
//	    Active    State = "ACTIVE"
//	    Login     Event = "LOGIN"
//	    Logout    Event = "LOGOUT"
//	)
//
//	login, _ := fsm.NewTransition(Login, Inactive, Active)
//	logout, _ := fsm.NewTransition(Logout, Active, Inactive)
//
//	builder := fsm.NewBuilder[Event, State, any]()
//	builder.AddTransition(login)
//	builder.AddTransition(logout)
//	machine, err := builder.SetInitialState(Inactive).Build()
//	if err != nil {
//	    // configuration mistake, fix before shipping
//	}
//
//	machine.AddListener(fsm.ListenerFunc(func(from, to State, _ any) {
//	    fmt.Printf("%s -> %s\n", from, to)
//	}))
//	machine.ConsumeEvent(Login) // true, one notification
//	machine.ConsumeEvent(Login) // false, ignored: no LOGIN from ACTIVE
//
// A transition's state path may span more than two states; consuming its
// event walks the whole path and notifies listeners once per hop. Events
// with no transition defined for the current state are silently ignored:
// ConsumeEvent returns false and nothing else happens.
//
// # Error Handling
//
// Configuration mistakes surface eagerly as typed errors:
// *InvalidTransitionError from NewTransition for malformed paths, and
// *BuilderValidationError from AddTransition (duplicate identity) and
// Build (missing or unreachable initial state, empty table). Helper
// predicates (IsInvalidTransitionError, IsBuilderValidationError,
// IsTransitionInProgressError) classify errors without type assertions at
// the call site.
//
// # Concurrency and Reentrancy
//
// Machine methods are safe for concurrent use. ConsumeEvent runs entirely
// on the calling goroutine; listener callbacks are invoked with no
// internal lock held. One walk at a time is enforced by the machine's
// in-transition flag: a ConsumeEvent call that matches a transition while
// a multi-hop walk is still in progress panics with a
// *TransitionInProgressError, whether it was re-entered from a listener
// callback or raced in from another goroutine. The flag clears before the
// final hop's notifications go out, so a listener reacting to the last
// state change may call ConsumeEvent again to chain transitions.
package fsm
