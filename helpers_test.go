package fsm_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	fsm "github.com/vitkhudenko/state-machine"
)

type State string
type Event string

const (
	Active    State = "ACTIVE"
	Inactive  State = "INACTIVE"
	Forgotten State = "FORGOTTEN"

	Login           Event = "LOGIN"
	Logout          Event = "LOGOUT"
	LogoutAndForget Event = "LOGOUT_AND_FORGET"

	// Generic states and events for path-walk tests.
	C State = "C"
	D State = "D"
	E State = "E"
	F State = "F"

	Event1 Event = "EVENT_1"
	Event3 Event = "EVENT_3"
	Event4 Event = "EVENT_4"

	On     State = "ON"
	Off    State = "OFF"
	Toggle Event = "TOGGLE"
)

// change is one recorded listener notification.
type change struct {
	From    State
	To      State
	Payload string
}

// recordingListener captures every notification it receives, in order.
type recordingListener struct {
	mutex   sync.Mutex
	changes []change
}

func (r *recordingListener) OnStateChanged(from, to State, payload string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.changes = append(r.changes, change{From: from, To: to, Payload: payload})
}

func (r *recordingListener) Changes() []change {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return append([]change(nil), r.changes...)
}

func (r *recordingListener) Count() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return len(r.changes)
}

func mustTransition(t *testing.T, event Event, path ...State) fsm.Transition[Event, State] {
	t.Helper()
	transition, err := fsm.NewTransition(event, path...)
	require.NoError(t, err)
	return transition
}

func buildMachine(t *testing.T, initial State, transitions ...fsm.Transition[Event, State]) *fsm.Machine[Event, State, string] {
	t.Helper()
	builder := fsm.NewBuilder[Event, State, string]()
	for _, transition := range transitions {
		_, err := builder.AddTransition(transition)
		require.NoError(t, err)
	}
	machine, err := builder.SetInitialState(initial).Build()
	require.NoError(t, err)
	return machine
}

// newSessionMachine builds the session lifecycle machine: LOGIN brings an
// inactive session back, LOGOUT deactivates it, LOGOUT_AND_FORGET ends it
// for good (FORGOTTEN has no outgoing transitions).
func newSessionMachine(t *testing.T) *fsm.Machine[Event, State, string] {
	t.Helper()
	return buildMachine(t, Active,
		mustTransition(t, Login, Inactive, Active),
		mustTransition(t, Logout, Active, Inactive),
		mustTransition(t, LogoutAndForget, Active, Forgotten),
	)
}

// newToggleMachine builds a two-state machine where TOGGLE flips between ON
// and OFF from either side.
func newToggleMachine(t *testing.T) *fsm.Machine[Event, State, string] {
	t.Helper()
	return buildMachine(t, On,
		mustTransition(t, Toggle, On, Off),
		mustTransition(t, Toggle, Off, On),
	)
}
