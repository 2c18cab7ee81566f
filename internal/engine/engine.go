package engine

import (
	"errors"
	"fmt"
)

const (
	StatusInProgress = "in_progress"
	StatusWon        = "won"
	StatusDrawn      = "drawn"
)

var (
	ErrInvalidIndex = errors.New("cell index is out of range")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrGameOver     = errors.New("game is already over")
	ErrInvalidState = errors.New("invalid serialized state")
)

// MoveResult reports the effect of one accepted move. Cell is the index that
// was just written, so a renderer can update a single cell instead of
// re-scanning the whole board.
type MoveResult struct {
	Cell       int    `json:"cell"`
	Status     string `json:"status"`
	NextPlayer Mark   `json:"next_player,omitempty"`
	Winner     Mark   `json:"winner,omitempty"`
	Line       Line   `json:"line"`
}

// Snapshot is the serialized engine state handed across a suspend/resume
// boundary. The outcome is not part of it: it is always re-derived from the
// board on restore.
type Snapshot struct {
	Board         Board `json:"board"`
	CurrentPlayer Mark  `json:"current_player"`
	IsOver        bool  `json:"is_over"`
}

// Engine owns the state of one game. All mutation goes through ApplyMove,
// Reset and Restore. There is no internal locking: callers serialize access.
type Engine struct {
	board   Board
	current Mark
	status  string
	winner  Mark
	line    Line
}

func New() *Engine {
	eng := &Engine{}
	eng.Reset()

	return eng
}

// ApplyMove places the current player's mark at cell and advances the game.
// Every precondition is checked before any write, so a failed call leaves
// the state untouched.
func (that *Engine) ApplyMove(cell int) (MoveResult, error) {
	if that.status != StatusInProgress {
		return MoveResult{}, ErrGameOver
	}

	if cell < 0 || cell >= len(that.board) {
		return MoveResult{}, fmt.Errorf("%w: cell %d", ErrInvalidIndex, cell)
	}

	if that.board[cell] != Empty {
		return MoveResult{}, fmt.Errorf("%w: cell %d", ErrCellOccupied, cell)
	}

	that.board[cell] = that.current

	if winner, line, ok := WinningLine(that.board); ok {
		// the turn is left on the winner, so the last mover is still known
		// after a snapshot/restore cycle
		that.status = StatusWon
		that.winner = winner
		that.line = line

		return MoveResult{Cell: cell, Status: StatusWon, Winner: winner, Line: line}, nil
	}

	if IsFull(that.board) {
		that.status = StatusDrawn

		return MoveResult{Cell: cell, Status: StatusDrawn}, nil
	}

	that.current = toggleMark(that.current)

	return MoveResult{Cell: cell, Status: StatusInProgress, NextPlayer: that.current}, nil
}

// Reset replaces the whole state with a fresh game: empty board, MarkA to
// move.
func (that *Engine) Reset() {
	that.board = NewBoard()
	that.current = MarkA
	that.status = StatusInProgress
	that.winner = Empty
	that.line = Line{}
}

// Snapshot returns a copy of the serializable state. Pure read.
func (that *Engine) Snapshot() Snapshot {
	return Snapshot{
		Board:         that.board,
		CurrentPlayer: that.current,
		IsOver:        that.status != StatusInProgress,
	}
}

// Restore replaces the engine state with the snapshot. The outcome is
// re-derived from the board and never trusted from the snapshot, so a
// tampered is_over flag cannot contradict the cells. On a malformed snapshot
// the engine is left reset to a fresh game.
func (that *Engine) Restore(s Snapshot) error {
	if err := validateSnapshot(s); err != nil {
		that.Reset()

		return err
	}

	that.board = s.Board
	that.current = s.CurrentPlayer

	that.status, that.winner, that.line = Evaluate(s.Board)

	return nil
}

// Outcome reports the cached terminal result: the status plus, for a won
// game, the winner and the winning line.
func (that *Engine) Outcome() (string, Mark, Line) {
	return that.status, that.winner, that.line
}

func validateSnapshot(s Snapshot) error {
	for i, cell := range s.Board {
		if !isCellValue(cell) {
			return fmt.Errorf("%w: cell %d holds %q", ErrInvalidState, i, cell)
		}
	}

	if !isPlayerMark(s.CurrentPlayer) {
		return fmt.Errorf("%w: current player %q", ErrInvalidState, s.CurrentPlayer)
	}

	return nil
}
