package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessions_SetGetClear(t *testing.T) {
	reg := NewRegistry(0)

	_, ok := reg.GetActiveRoom(alice)
	assert.False(t, ok)

	reg.SetActiveRoom(alice, "general")
	active, ok := reg.GetActiveRoom(alice)
	require.True(t, ok)
	assert.EqualValues(t, "general", active)

	// A user is active in at most one room; the last set wins.
	reg.SetActiveRoom(alice, "other")
	active, ok = reg.GetActiveRoom(alice)
	require.True(t, ok)
	assert.EqualValues(t, "other", active)

	reg.ClearActiveRoom(alice)
	_, ok = reg.GetActiveRoom(alice)
	assert.False(t, ok)

	// Clearing again is a no-op.
	reg.ClearActiveRoom(alice)
	_, ok = reg.GetActiveRoom(alice)
	assert.False(t, ok)
}
