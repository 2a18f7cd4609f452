package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStateCommit(t *testing.T) {
	state := NewDashboardState()
	require.Nil(t, state.Current(1))

	gen := state.Begin(1)
	result := &DashboardResult{Range: DateRange{Start: "2024-03-01", End: "2024-03-07"}}
	assert.True(t, state.Commit(1, gen, result))
	assert.Same(t, result, state.Current(1))
}

func TestDashboardStateStaleRefreshCannotOverwrite(t *testing.T) {
	state := NewDashboardState()

	slow := state.Begin(1)
	fast := state.Begin(1) // second refresh starts before the first resolves

	fresh := &DashboardResult{Range: DateRange{Start: "2024-03-01", End: "2024-03-07"}}
	require.True(t, state.Commit(1, fast, fresh))

	stale := &DashboardResult{Range: DateRange{Start: "2024-01-01", End: "2024-01-31"}}
	assert.False(t, state.Commit(1, slow, stale))
	assert.Same(t, fresh, state.Current(1))
}

func TestDashboardStateFailedRefreshKeepsPrevious(t *testing.T) {
	state := NewDashboardState()

	gen := state.Begin(1)
	committed := &DashboardResult{Range: DateRange{Start: "2024-03-01", End: "2024-03-07"}}
	require.True(t, state.Commit(1, gen, committed))

	// a refresh that errors out never commits; displayed state is untouched
	_ = state.Begin(1)
	assert.Same(t, committed, state.Current(1))
}

func TestDashboardStatePerUserIsolation(t *testing.T) {
	state := NewDashboardState()

	genA := state.Begin(1)
	genB := state.Begin(2)

	a := &DashboardResult{Range: DateRange{Start: "2024-03-01", End: "2024-03-07"}}
	b := &DashboardResult{Range: DateRange{Start: "2024-02-01", End: "2024-02-07"}}
	require.True(t, state.Commit(1, genA, a))
	require.True(t, state.Commit(2, genB, b))

	assert.Same(t, a, state.Current(1))
	assert.Same(t, b, state.Current(2))
}
