package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridplay/tictactoe-engine/internal/engine"
)

func TestNewSession(t *testing.T) {
	// When: create a new session
	session := NewSession("abc123")

	// Then: it should hold a fresh game under the given id
	require.Equal(t, "abc123", session.ID)
	require.Equal(t, engine.NewBoard(), session.State.Board)
	require.Equal(t, engine.MarkA, session.State.CurrentPlayer)
	assert.False(t, session.State.IsOver)
}
