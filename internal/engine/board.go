package engine

// Mark is the value held by a single board cell. The serialized form uses
// "_" for an empty cell, so the zero value of Mark is deliberately not a
// legal cell value and a truncated snapshot fails validation.
type Mark string

const (
	Empty Mark = "_"
	MarkA Mark = "A"
	MarkB Mark = "B"
)

// Board is the 9-cell grid in row-major order: index = row*3 + col.
type Board [9]Mark

// Line is one of the eight fixed winning triplets.
type Line [3]int

// winningLines is ordered rows top-to-bottom, then columns left-to-right,
// then main diagonal before anti-diagonal. The scan order is part of the
// contract: the first matching line wins.
var winningLines = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func NewBoard() Board {
	return Board{Empty, Empty, Empty, Empty, Empty, Empty, Empty, Empty, Empty}
}

// WinningLine reports the first triplet fully held by one player.
func WinningLine(board Board) (Mark, Line, bool) {
	for _, line := range winningLines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != Empty && a == b && b == c {
			return a, line, true
		}
	}

	return Empty, Line{}, false
}

// IsFull reports whether no empty cell remains.
func IsFull(board Board) bool {
	for _, cell := range board {
		if cell == Empty {
			return false
		}
	}

	return true
}

// Evaluate derives the outcome of a board from its cells alone.
func Evaluate(board Board) (string, Mark, Line) {
	if winner, line, ok := WinningLine(board); ok {
		return StatusWon, winner, line
	}

	if IsFull(board) {
		return StatusDrawn, Empty, Line{}
	}

	return StatusInProgress, Empty, Line{}
}

func toggleMark(current Mark) Mark {
	if current == MarkA {
		return MarkB
	}

	return MarkA
}

func isPlayerMark(mark Mark) bool {
	return mark == MarkA || mark == MarkB
}

func isCellValue(mark Mark) bool {
	return mark == Empty || mark == MarkA || mark == MarkB
}
