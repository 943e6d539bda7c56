// file: internal/mcp/state/machine_test.go
package state

import (
	"context"
	"testing"

	"github.com/simplemcp/simplemcp/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestMachine(t *testing.T) *Machine {
	t.Helper()
	m := NewMachine(logging.GetNoopLogger())
	require.NotNil(t, m, "NewMachine should return a non-nil instance.")
	return m
}

// TestMachine_NewMachine_StartsUninitialized checks creation and initial state.
func TestMachine_NewMachine_StartsUninitialized(t *testing.T) {
	m := setupTestMachine(t)
	assert.Equal(t, StateUninitialized, m.Current(), "Initial state should be uninitialized.")
	assert.False(t, m.Initialized())
}

// TestMachine_MarkInitialized_TransitionsOnce verifies the single-shot transition.
func TestMachine_MarkInitialized_TransitionsOnce(t *testing.T) {
	m := setupTestMachine(t)
	ctx := context.Background()

	require.NoError(t, m.MarkInitialized(ctx))
	assert.Equal(t, StateInitialized, m.Current())
	assert.True(t, m.Initialized())
}

// TestMachine_MarkInitialized_RepeatIsIdempotent verifies a second initialize
// leaves the state unchanged without error, matching the permissive contract.
func TestMachine_MarkInitialized_RepeatIsIdempotent(t *testing.T) {
	m := setupTestMachine(t)
	ctx := context.Background()

	require.NoError(t, m.MarkInitialized(ctx))
	require.NoError(t, m.MarkInitialized(ctx), "Re-initialize should not error.")
	assert.Equal(t, StateInitialized, m.Current())
}

// TestMachine_MarkShutdown_FromEitherState verifies the terminal transition.
func TestMachine_MarkShutdown_FromEitherState(t *testing.T) {
	ctx := context.Background()

	fresh := setupTestMachine(t)
	require.NoError(t, fresh.MarkShutdown(ctx))
	assert.Equal(t, StateShutdown, fresh.Current(), "Shutdown should be reachable before initialize.")

	initialized := setupTestMachine(t)
	require.NoError(t, initialized.MarkInitialized(ctx))
	require.NoError(t, initialized.MarkShutdown(ctx))
	assert.Equal(t, StateShutdown, initialized.Current())

	require.NoError(t, initialized.MarkShutdown(ctx), "Repeated shutdown should be a no-op.")
	assert.Equal(t, StateShutdown, initialized.Current())
}
