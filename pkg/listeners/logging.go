// Package listeners provides ready-made listeners for machines built with
// the root fsm package: structured logging of state changes and in-memory
// activity counters.
package listeners

import (
	"context"
	"log/slog"

	fsm "github.com/vitkhudenko/state-machine"
)

// Logging mirrors every state change into a slog.Logger.
type Logging[S comparable, P any] struct {
	logger *slog.Logger
	level  slog.Level
}

var _ fsm.Listener[string, any] = (*Logging[string, any])(nil)

// NewLogging creates a listener that records state changes to logger at
// the given level. A nil logger falls back to slog.Default.
func NewLogging[S comparable, P any](logger *slog.Logger, level slog.Level) *Logging[S, P] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Logging[S, P]{logger: logger, level: level}
}

// OnStateChanged implements fsm.Listener.
func (l *Logging[S, P]) OnStateChanged(oldState S, newState S, payload P) {
	l.logger.Log(context.Background(), l.level, "state changed", "from", oldState, "to", newState)
}
