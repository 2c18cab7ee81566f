package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWinningLine(t *testing.T) {
	t.Run("Finds a column win", func(t *testing.T) {
		// Given: a board where MarkB holds the left column
		board := Board{MarkB, MarkA, MarkA, MarkB, MarkA, Empty, MarkB, Empty, Empty}

		// When: scanning for a winning line
		winner, line, ok := WinningLine(board)

		// Then: MarkB wins on the left column
		require.True(t, ok)
		require.Equal(t, MarkB, winner)
		require.Equal(t, Line{0, 3, 6}, line)
	})

	t.Run("No line on an empty board", func(t *testing.T) {
		// When: scanning an empty board
		_, _, ok := WinningLine(NewBoard())

		// Then: no line is found
		assert.False(t, ok)
	})

	t.Run("First line in scan order wins", func(t *testing.T) {
		// Given: a board where MarkA holds the first and second rows
		board := Board{MarkA, MarkA, MarkA, MarkA, MarkA, MarkA, Empty, Empty, Empty}

		// When: scanning for a winning line
		winner, line, ok := WinningLine(board)

		// Then: the first row is reported
		require.True(t, ok)
		require.Equal(t, MarkA, winner)
		assert.Equal(t, Line{0, 1, 2}, line)
	})

	t.Run("Main diagonal before anti-diagonal", func(t *testing.T) {
		// Given: a board where MarkA holds both diagonals
		board := Board{MarkA, Empty, MarkA, Empty, MarkA, Empty, MarkA, Empty, MarkA}

		// When: scanning for a winning line
		_, line, ok := WinningLine(board)

		// Then: the main diagonal is reported
		require.True(t, ok)
		assert.Equal(t, Line{0, 4, 8}, line)
	})
}

func TestIsFull(t *testing.T) {
	t.Run("False while a cell is empty", func(t *testing.T) {
		// Given: a board with a single empty cell
		board := Board{MarkA, MarkB, MarkA, MarkA, MarkB, MarkB, MarkB, MarkA, Empty}

		// Then: the board is not full
		assert.False(t, IsFull(board))
	})

	t.Run("True when every cell is taken", func(t *testing.T) {
		// Given: a fully occupied board
		board := Board{MarkA, MarkB, MarkA, MarkA, MarkB, MarkB, MarkB, MarkA, MarkA}

		// Then: the board is full
		assert.True(t, IsFull(board))
	})
}

func TestEvaluate(t *testing.T) {
	t.Run("Win", func(t *testing.T) {
		// Given: a board where MarkA holds the first column
		board := Board{MarkA, MarkB, Empty, MarkA, MarkB, Empty, MarkA, Empty, Empty}

		// When: evaluating the board
		status, winner, line := Evaluate(board)

		// Then: the outcome is a win for MarkA
		require.Equal(t, StatusWon, status)
		require.Equal(t, MarkA, winner)
		require.Equal(t, Line{0, 3, 6}, line)
	})

	t.Run("Draw", func(t *testing.T) {
		// Given: a full board with no line
		board := Board{MarkA, MarkB, MarkA, MarkA, MarkB, MarkB, MarkB, MarkA, MarkA}

		// When: evaluating the board
		status, winner, _ := Evaluate(board)

		// Then: the outcome is a draw with no winner
		require.Equal(t, StatusDrawn, status)
		assert.Equal(t, Empty, winner)
	})

	t.Run("In progress", func(t *testing.T) {
		// Given: a partially filled board
		board := Board{MarkA, MarkB, MarkA, Empty, MarkB, Empty, MarkA, Empty, Empty}

		// When: evaluating the board
		status, _, _ := Evaluate(board)

		// Then: the game is still in progress
		assert.Equal(t, StatusInProgress, status)
	})

	t.Run("Never both win and draw", func(t *testing.T) {
		// Given: a full board that also holds a winning line
		board := Board{MarkA, MarkA, MarkA, MarkB, MarkB, MarkA, MarkA, MarkB, MarkB}

		// When: evaluating the board
		status, winner, _ := Evaluate(board)

		// Then: the win takes precedence over the full board
		require.Equal(t, StatusWon, status)
		assert.Equal(t, MarkA, winner)
	})
}
