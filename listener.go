package fsm

// Listener receives a callback after every individual state change applied
// by a machine. oldState is the state the machine left, newState the state
// it entered, and payload is whatever the caller attached to the
// ConsumeEvent call (the zero value of P when nothing was attached). For a
// multi-hop transition the listener is called once per hop, in path order.
//
// Membership in a machine's listener set is identity-based: listeners are
// compared with ==, adding the same listener twice is a no-op, and removal
// only matches the identical value. Listener implementations must therefore
// be comparable; pointer receivers are the expected shape. To register a
// plain function, wrap it with ListenerFunc.
type Listener[S comparable, P any] interface {
	OnStateChanged(oldState S, newState S, payload P)
}

// listenerFunc adapts a function to the Listener interface. The pointer
// gives each wrapped function a distinct, comparable identity.
type listenerFunc[S comparable, P any] struct {
	fn func(oldState S, newState S, payload P)
}

// ListenerFunc wraps fn in a Listener. Every call returns a listener with
// its own identity, so keep the returned value if the listener needs to be
// removed later.
func ListenerFunc[S comparable, P any](fn func(oldState S, newState S, payload P)) Listener[S, P] {
	return &listenerFunc[S, P]{fn: fn}
}

func (l *listenerFunc[S, P]) OnStateChanged(oldState S, newState S, payload P) {
	l.fn(oldState, newState, payload)
}
