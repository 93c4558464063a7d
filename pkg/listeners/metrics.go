package listeners

import (
	"fmt"
	"sync"

	fsm "github.com/vitkhudenko/state-machine"
)

// Metrics counts machine activity: how often each state was entered, how
// often each edge was walked, and the total number of notifications seen.
// Safe for concurrent use; one Metrics value may watch several machines.
type Metrics[S comparable, P any] struct {
	stateEntries map[S]int
	edgeCounts   map[string]int
	total        int
	mutex        sync.RWMutex
}

var _ fsm.Listener[string, any] = (*Metrics[string, any])(nil)

// NewMetrics creates an empty metrics listener.
func NewMetrics[S comparable, P any]() *Metrics[S, P] {
	return &Metrics[S, P]{
		stateEntries: make(map[S]int),
		edgeCounts:   make(map[string]int),
	}
}

// OnStateChanged implements fsm.Listener.
func (m *Metrics[S, P]) OnStateChanged(oldState S, newState S, payload P) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.stateEntries[newState]++
	m.edgeCounts[edgeKey(oldState, newState)]++
	m.total++
}

// StateEntries returns a copy of the per-state entry counts.
func (m *Metrics[S, P]) StateEntries() map[S]int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	result := make(map[S]int, len(m.stateEntries))
	for state, count := range m.stateEntries {
		result[state] = count
	}
	return result
}

// EdgeCounts returns a copy of the per-edge counts, keyed "from->to".
func (m *Metrics[S, P]) EdgeCounts() map[string]int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	result := make(map[string]int, len(m.edgeCounts))
	for edge, count := range m.edgeCounts {
		result[edge] = count
	}
	return result
}

// Total returns the total number of notifications seen.
func (m *Metrics[S, P]) Total() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.total
}

// Reset clears all counters.
func (m *Metrics[S, P]) Reset() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.stateEntries = make(map[S]int)
	m.edgeCounts = make(map[string]int)
	m.total = 0
}

func edgeKey[S comparable](from, to S) string {
	return fmt.Sprintf("%v->%v", from, to)
}
