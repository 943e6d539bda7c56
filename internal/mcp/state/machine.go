// Package state models the MCP connection lifecycle as an explicit state
// machine. The session has exactly one piece of mutable state: whether the
// initialize handshake has happened. Modeling it as an FSM keeps the
// transition single-shot and observable instead of a write-only boolean.
package state

// file: internal/mcp/state/machine.go

import (
	"context"

	"github.com/cockroachdb/errors"
	lfsm "github.com/looplab/fsm"
	"github.com/simplemcp/simplemcp/internal/logging"
)

// Connection lifecycle states.
const (
	// StateUninitialized is the starting state: stream open, no handshake yet.
	StateUninitialized = "uninitialized"
	// StateInitialized means the initialize request has been handled.
	StateInitialized = "initialized"
	// StateShutdown is the terminal state entered when the input stream ends.
	StateShutdown = "shutdown"
)

// Lifecycle events.
const (
	// EventInitialize fires when an initialize request is handled successfully.
	// A repeated initialize is accepted and leaves the state unchanged.
	EventInitialize = "initialize"
	// EventShutdown fires when the input stream terminates.
	EventShutdown = "shutdown"
)

// Machine tracks the lifecycle of a single MCP connection.
// The serve loop is single-threaded, so there is never concurrent access,
// but looplab/fsm is internally synchronized regardless.
type Machine struct {
	fsm    *lfsm.FSM
	logger logging.Logger
}

// NewMachine creates a lifecycle machine in the uninitialized state.
func NewMachine(logger logging.Logger) *Machine {
	if logger == nil {
		logger = logging.GetNoopLogger()
	}
	log := logger.WithField("component", "lifecycle_machine")

	machine := lfsm.NewFSM(
		StateUninitialized,
		lfsm.Events{
			{Name: EventInitialize, Src: []string{StateUninitialized, StateInitialized}, Dst: StateInitialized},
			{Name: EventShutdown, Src: []string{StateUninitialized, StateInitialized}, Dst: StateShutdown},
		},
		lfsm.Callbacks{},
	)

	return &Machine{fsm: machine, logger: log}
}

// Current returns the current lifecycle state.
func (m *Machine) Current() string {
	return m.fsm.Current()
}

// Initialized reports whether the initialize handshake has completed.
func (m *Machine) Initialized() bool {
	return m.fsm.Current() == StateInitialized
}

// MarkInitialized records a successfully handled initialize request.
func (m *Machine) MarkInitialized(ctx context.Context) error {
	prev := m.fsm.Current()
	if err := m.fsm.Event(ctx, EventInitialize); err != nil {
		var noTransition lfsm.NoTransitionError
		if errors.As(err, &noTransition) {
			// Re-initialize while already initialized: state unchanged, not an error.
			return nil
		}
		return errors.Wrap(err, "lifecycle transition on initialize failed")
	}
	m.logger.Debug("Lifecycle transition.", "from", prev, "to", m.fsm.Current())
	return nil
}

// MarkShutdown records the end of the connection. Safe to call more than once.
func (m *Machine) MarkShutdown(ctx context.Context) error {
	if m.fsm.Current() == StateShutdown {
		return nil
	}
	prev := m.fsm.Current()
	if err := m.fsm.Event(ctx, EventShutdown); err != nil {
		return errors.Wrap(err, "lifecycle transition on shutdown failed")
	}
	m.logger.Debug("Lifecycle transition.", "from", prev, "to", m.fsm.Current())
	return nil
}
