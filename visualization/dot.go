// Package visualization renders the transition graph of a state machine in
// Graphviz DOT format. Output is plain text returned to the caller; nothing
// is written anywhere.
package visualization

import (
	"fmt"
	"sort"
	"strings"

	fsm "github.com/vitkhudenko/state-machine"
)

// DOTGenerator generates Graphviz DOT representations of a machine's
// transition graph.
type DOTGenerator[E comparable, S comparable, P any] struct {
	machine *fsm.Machine[E, S, P]
	options DOTOptions
}

// DOTOptions configures the DOT generation
type DOTOptions struct {
	RankDirection    string // "TB", "LR", "BT", "RL"
	NodeShape        string
	HighlightCurrent bool
	HighlightColor   string
}

// DefaultDOTOptions returns sensible default options for DOT generation
func DefaultDOTOptions() DOTOptions {
	return DOTOptions{
		RankDirection:    "LR",
		NodeShape:        "box",
		HighlightCurrent: true,
		HighlightColor:   "lightgreen",
	}
}

// NewDOTGenerator creates a new DOT generator for the given machine
func NewDOTGenerator[E comparable, S comparable, P any](machine *fsm.Machine[E, S, P], options ...DOTOptions) *DOTGenerator[E, S, P] {
	opts := DefaultDOTOptions()
	if len(options) > 0 {
		opts = options[0]
	}

	return &DOTGenerator[E, S, P]{
		machine: machine,
		options: opts,
	}
}

// Generate creates a DOT representation of the machine's transition graph.
// States and edges are emitted in sorted order, so the output for a given
// machine state is deterministic. Each transition contributes one edge per
// hop of its state path, labeled with the event; hops after the first are
// drawn dashed to mark them as continuations of the same transition.
func (g *DOTGenerator[E, S, P]) Generate() string {
	current := fmt.Sprint(g.machine.CurrentState())

	stateSet := make(map[string]bool)
	edgeSet := make(map[string]bool)
	for _, t := range g.machine.Transitions() {
		event := fmt.Sprint(t.Event())
		path := t.StatePath()
		for i := 0; i < len(path)-1; i++ {
			from := fmt.Sprint(path[i])
			to := fmt.Sprint(path[i+1])
			stateSet[from] = true
			stateSet[to] = true

			style := ""
			if i > 0 {
				style = " style=dashed"
			}
			edgeSet[fmt.Sprintf("  %q -> %q [label=%q%s];\n", from, to, event, style)] = true
		}
	}

	states := make([]string, 0, len(stateSet))
	for state := range stateSet {
		states = append(states, state)
	}
	sort.Strings(states)

	edges := make([]string, 0, len(edgeSet))
	for edge := range edgeSet {
		edges = append(edges, edge)
	}
	sort.Strings(edges)

	var dot strings.Builder
	dot.WriteString("digraph StateMachine {\n")
	dot.WriteString(fmt.Sprintf("  rankdir=%s;\n", g.options.RankDirection))
	dot.WriteString(fmt.Sprintf("  node [shape=%s];\n", g.options.NodeShape))
	dot.WriteString("  edge [fontsize=10];\n\n")

	dot.WriteString("  // States\n")
	for _, state := range states {
		if g.options.HighlightCurrent && state == current {
			dot.WriteString(fmt.Sprintf("  %q [style=filled fillcolor=%s];\n", state, g.options.HighlightColor))
		} else {
			dot.WriteString(fmt.Sprintf("  %q;\n", state))
		}
	}

	dot.WriteString("\n  // Transitions\n")
	for _, edge := range edges {
		dot.WriteString(edge)
	}

	dot.WriteString("}\n")
	return dot.String()
}
